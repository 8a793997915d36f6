package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driving"
	"github.com/custodia-labs/topica/internal/logger"
)

// runFlags are the per-run overrides shared by model and tui.
// A flag only overrides the stored settings when it was set explicitly.
type runFlags struct {
	topics     int
	topWords   int
	estimator  string
	seed       uint64
	iterations int
	column     int
	stopwords  string
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	defaults := domain.DefaultSettings()
	fs.IntVarP(&f.topics, "topics", "k", defaults.Model.NumTopics, "number of topics")
	fs.IntVarP(&f.topWords, "top-words", "n", defaults.Model.TopWords, "words reported per topic")
	fs.StringVarP(&f.estimator, "estimator", "e", defaults.Model.Estimator.String(), "fitting algorithm (variational, gibbs)")
	fs.Uint64Var(&f.seed, "seed", defaults.Model.Seed, "random seed")
	fs.IntVar(&f.iterations, "iterations", defaults.Model.Iterations, "fitting passes")
	fs.IntVar(&f.column, "column", defaults.Ingest.TextColumn, "zero-based spreadsheet text column")
	fs.StringVar(&f.stopwords, "stopwords", "", "stopword list file, one term per line")
}

// apply overlays explicitly set flags on st.
func (f *runFlags) apply(fs *pflag.FlagSet, st *domain.Settings) {
	if fs.Changed("topics") {
		st.Model.NumTopics = f.topics
	}
	if fs.Changed("top-words") {
		st.Model.TopWords = f.topWords
	}
	if fs.Changed("estimator") {
		st.Model.Estimator = domain.Estimator(strings.ToLower(f.estimator))
	}
	if fs.Changed("seed") {
		st.Model.Seed = f.seed
	}
	if fs.Changed("iterations") {
		st.Model.Iterations = f.iterations
	}
	if fs.Changed("column") {
		st.Ingest.TextColumn = f.column
	}
	if fs.Changed("stopwords") {
		st.Cleaning.StopwordsFile = f.stopwords
	}
}

// resolveSettings returns the stored settings with flag overrides applied.
func (f *runFlags) resolveSettings(fs *pflag.FlagSet) (domain.Settings, error) {
	st := domain.DefaultSettings()
	if settingsService != nil {
		stored, err := settingsService.Get()
		if err != nil {
			return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
		}
		st = *stored
	}
	f.apply(fs, &st)
	if err := st.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return st, nil
}

// buildRequest reads and ingests paths into a run request.
func buildRequest(ctx context.Context, paths []string, st domain.Settings) (domain.RunRequest, error) {
	if ingestService == nil {
		return domain.RunRequest{}, fmt.Errorf("ingest service not configured")
	}

	files := make([]domain.RawDocument, 0, len(paths))
	for _, p := range paths {
		raw, err := readRaw(p)
		if err != nil {
			return domain.RunRequest{}, err
		}
		files = append(files, raw)
	}

	docs, err := ingestService.Ingest(ctx, files, driving.IngestOptions{TextColumn: st.Ingest.TextColumn})
	if err != nil {
		return domain.RunRequest{}, fmt.Errorf("ingesting files: %w", err)
	}
	logger.Debug("cli: ingested %d documents from %d files", len(docs), len(files))

	var list *domain.RawDocument
	if st.Cleaning.StopwordsFile != "" {
		raw, err := readRaw(st.Cleaning.StopwordsFile)
		if err != nil {
			return domain.RunRequest{}, err
		}
		list = &raw
	}
	stopwords, err := ingestService.Stopwords(ctx, list)
	if err != nil {
		return domain.RunRequest{}, fmt.Errorf("loading stopwords: %w", err)
	}

	return domain.RunRequest{
		Documents: docs,
		Stopwords: stopwords,
		Estimator: st.Model.Estimator,
		Model:     st.ModelOptions(),
		TopWords:  st.Model.TopWords,
	}, nil
}

func readRaw(path string) (domain.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return domain.RawDocument{URI: path, Content: content}, nil
}
