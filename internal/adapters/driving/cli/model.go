package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/topica/internal/charts/echarts"
	"github.com/custodia-labs/topica/internal/charts/terminal"
	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/logger"
)

// previewLength is the number of cleaned characters printed per document.
const previewLength = 200

var (
	modelRun       runFlags
	modelJSON      bool
	modelChartPath string
	modelShowTexts bool
	modelWatch     bool
)

var modelCmd = &cobra.Command{
	Use:   "model FILE...",
	Short: "Fit a topic model over files",
	Long: `Clean the given files, fit an LDA topic model and report the top words of
every topic with a bar chart of the average topic distribution.

Text, Markdown and HTML files become one document each. CSV, TSV and XLSX
files become one document per row of the text column (--column).

Flags override the stored settings for this run only.

Examples:
  topica model notes/*.txt --topics 3
  topica model survey.xlsx --column 2 --top-words 8 --chart topics.html
  topica model corpus.csv --json
  topica model drafts/*.md --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runModel,
}

func init() {
	modelRun.register(modelCmd.Flags())
	modelCmd.Flags().BoolVar(&modelJSON, "json", false, "print the result as JSON")
	modelCmd.Flags().StringVar(&modelChartPath, "chart", "", "write an HTML bar chart to this file")
	modelCmd.Flags().BoolVar(&modelShowTexts, "show-texts", false, "print cleaned text previews")
	modelCmd.Flags().BoolVarP(&modelWatch, "watch", "w", false, "rerun whenever an input file changes")
	rootCmd.AddCommand(modelCmd)
}

func runModel(cmd *cobra.Command, args []string) error {
	if topicService == nil {
		return fmt.Errorf("topic service not configured")
	}

	st, err := modelRun.resolveSettings(cmd.Flags())
	if err != nil {
		return err
	}

	once := func() error {
		return modelOnce(cmd.Context(), cmd.OutOrStdout(), args, st)
	}

	if !modelWatch {
		return once()
	}

	if err := once(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d file(s), press Ctrl+C to stop\n", len(args))
	return watchFiles(cmd.Context(), args, func() {
		if err := once(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	})
}

func modelOnce(ctx context.Context, out io.Writer, paths []string, st domain.Settings) error {
	req, err := buildRequest(ctx, paths, st)
	if err != nil {
		return err
	}

	res, err := topicService.Run(ctx, req)
	if err != nil {
		return err
	}

	if modelChartPath != "" {
		if err := writeChart(modelChartPath, st, &res.Report); err != nil {
			return err
		}
		logger.Info("cli: chart written to %s", modelChartPath)
	}

	if modelJSON {
		return printJSON(out, res, modelShowTexts)
	}
	return printResult(out, res, modelShowTexts, isTerminal(out))
}

func writeChart(path string, st domain.Settings, report *domain.TopicReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	chart := echarts.New(echarts.WithSize(st.Server.ChartWidth, st.Server.ChartHeight))
	if err := chart.Render(f, report); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return f.Close()
}

// printResult writes the human-readable report.
func printResult(w io.Writer, res *domain.RunResult, showTexts, styled bool) error {
	fmt.Fprintf(w, "Modelled %d documents (%d terms) with %s in %s\n",
		len(res.Documents), vocabularySize(res), res.Estimator, res.Elapsed.Round(time.Millisecond))

	if showTexts {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Texts:")
		for i := range res.Documents {
			doc := &res.Documents[i]
			fmt.Fprintf(w, "  [%d] %s\n", i+1, doc.Title)
			fmt.Fprintf(w, "      %s\n", doc.Preview(previewLength))
		}
	}

	fmt.Fprintln(w)
	for _, t := range res.Report.Topics {
		fmt.Fprintf(w, "%s: %s\n", t.Label, strings.Join(t.Words, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Average topic distribution:")
	chart := terminal.New(terminal.WithPlain(!styled))
	return chart.Render(w, &res.Report)
}

// jsonTopic is one topic in JSON output.
type jsonTopic struct {
	Label             string    `json:"label"`
	Words             []string  `json:"words"`
	Weights           []float64 `json:"weights"`
	DominantDocuments int       `json:"dominant_documents"`
}

// jsonPreview is a cleaned document preview in JSON output.
type jsonPreview struct {
	Title   string `json:"title"`
	Cleaned string `json:"cleaned"`
}

// jsonResult is the --json output.
type jsonResult struct {
	RunID               string        `json:"run_id"`
	Estimator           string        `json:"estimator"`
	Documents           int           `json:"documents"`
	Vocabulary          int           `json:"vocabulary"`
	Topics              []jsonTopic   `json:"topics"`
	AverageDistribution []float64     `json:"average_distribution"`
	ElapsedMS           int64         `json:"elapsed_ms"`
	Previews            []jsonPreview `json:"previews,omitempty"`
}

func printJSON(w io.Writer, res *domain.RunResult, showTexts bool) error {
	out := jsonResult{
		RunID:               res.ID,
		Estimator:           res.Estimator.String(),
		Documents:           len(res.Documents),
		Vocabulary:          vocabularySize(res),
		Topics:              make([]jsonTopic, len(res.Report.Topics)),
		AverageDistribution: res.Report.AverageDistribution,
		ElapsedMS:           res.Elapsed.Milliseconds(),
	}
	for i, t := range res.Report.Topics {
		out.Topics[i] = jsonTopic{
			Label:             t.Label,
			Words:             t.Words,
			Weights:           t.Weights,
			DominantDocuments: t.DominantDocuments,
		}
	}
	if showTexts {
		for i := range res.Documents {
			doc := &res.Documents[i]
			out.Previews = append(out.Previews, jsonPreview{Title: doc.Title, Cleaned: doc.Preview(previewLength)})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func vocabularySize(res *domain.RunResult) int {
	if res.Vocabulary == nil {
		return 0
	}
	return res.Vocabulary.Size()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
