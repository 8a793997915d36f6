package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/topica/internal/logger"
)

// watchDebounce collapses the burst of events an editor save produces.
const watchDebounce = 300 * time.Millisecond

// watchFiles calls rerun after any of paths changes, until ctx is done.
// Parent directories are watched so files replaced by rename are still seen.
func watchFiles(ctx context.Context, paths []string, rerun func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	wanted := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p, err)
		}
		wanted[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	return watchLoop(ctx, w.Events, w.Errors, wanted, watchDebounce, rerun)
}

// watchLoop debounces relevant events into rerun calls.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	wanted map[string]bool,
	delay time.Duration,
	rerun func(),
) error {
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !relevantEvent(ev, wanted) {
				continue
			}
			logger.Debug("watch: %s %s", ev.Op, ev.Name)
			fire = time.After(delay)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch: %v", err)
		case <-fire:
			fire = nil
			rerun()
		}
	}
}

// relevantEvent reports whether ev changes the content of a watched file.
func relevantEvent(ev fsnotify.Event, wanted map[string]bool) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return wanted[abs]
}
