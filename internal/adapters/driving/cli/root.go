// Package cli provides the cobra command tree for topica.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/topica/internal/core/ports/driving"
	"github.com/custodia-labs/topica/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

// Services wired by the entry point.
var (
	topicService    driving.TopicService
	ingestService   driving.IngestService
	settingsService driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "topica",
	Short: "Topic modelling for text and spreadsheet files",
	Long: `topica cleans the text of the files you give it and fits an LDA topic
model over the resulting corpus. It reports the top words of every topic and
the corpus-average topic distribution as a bar chart.

Text files become one document each; CSV and XLSX spreadsheets become one
document per row of the text column.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages to stderr")
}

// Services groups the driving ports the commands use.
type Services struct {
	Topics   driving.TopicService
	Ingest   driving.IngestService
	Settings driving.SettingsService
}

// SetServices configures the services used by every command.
func SetServices(s Services) {
	topicService = s.Topics
	ingestService = s.Ingest
	settingsService = s.Settings
}

// SetVersion sets the version reported by "topica version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
