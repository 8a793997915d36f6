package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/topica/internal/adapters/driving/tui"
)

var tuiRun runFlags

var tuiCmd = &cobra.Command{
	Use:   "tui FILE...",
	Short: "Explore topics in the interactive terminal UI",
	Long: `Ingest the given files and open an interactive view of their topics.

The model is refitted every time a control changes.

Controls:
  ←/h, →/l - Fewer / more topics (2 to 10)
  -, +     - Fewer / more words per topic
  r        - Refit with a new seed
  t        - Show cleaned texts
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiRun.register(tuiCmd.Flags())
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd, args)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp ingests args and builds the app without starting it.
func newTUIApp(cmd *cobra.Command, args []string) (*tui.App, error) {
	st, err := tuiRun.resolveSettings(cmd.Flags())
	if err != nil {
		return nil, err
	}

	req, err := buildRequest(cmd.Context(), args, st)
	if err != nil {
		return nil, err
	}

	app, err := tui.NewApp(tui.NewPorts(topicService), tui.Corpus{
		Documents: req.Documents,
		Stopwords: req.Stopwords,
		Estimator: req.Estimator,
		Model:     req.Model,
		TopWords:  req.TopWords,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.WithContext(cmd.Context()), nil
}
