package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/topica/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driving"
	"github.com/custodia-labs/topica/internal/core/services"
)

// mockTopicService records requests and returns a canned result.
type mockTopicService struct {
	result   *domain.RunResult
	err      error
	requests []domain.RunRequest
}

func (m *mockTopicService) Run(_ context.Context, req domain.RunRequest) (*domain.RunResult, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockTopicService) Estimators() []domain.Estimator {
	return []domain.Estimator{domain.EstimatorGibbs, domain.EstimatorVariational}
}

// mockIngestService turns every file into one document of its content.
type mockIngestService struct {
	opts      driving.IngestOptions
	files     []domain.RawDocument
	stopwords *domain.RawDocument
	err       error
}

func (m *mockIngestService) Ingest(_ context.Context, files []domain.RawDocument, opts driving.IngestOptions) ([]domain.Document, error) {
	m.files = files
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	docs := make([]domain.Document, len(files))
	for i, f := range files {
		docs[i] = domain.Document{URI: f.URI, Title: f.URI, Raw: string(f.Content)}
	}
	return docs, nil
}

func (m *mockIngestService) Stopwords(_ context.Context, raw *domain.RawDocument) (domain.StopwordSet, error) {
	m.stopwords = raw
	if raw == nil {
		return domain.NewStopwordSet("the"), nil
	}
	return domain.NewStopwordSet(strings.Fields(string(raw.Content))...), nil
}

func (m *mockIngestService) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

type testServices struct {
	topics   *mockTopicService
	ingest   *mockIngestService
	settings *services.SettingsService
}

// setupTestServices installs mocks plus an in-memory settings service.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	ts := &testServices{
		topics:   &mockTopicService{result: sampleResult()},
		ingest:   &mockIngestService{},
		settings: services.NewSettingsService(memory.NewConfigStore()),
	}
	SetServices(Services{Topics: ts.topics, Ingest: ts.ingest, Settings: ts.settings})

	t.Cleanup(func() {
		SetServices(Services{})
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return ts
}

// resetFlags restores every flag in the tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func sampleResult() *domain.RunResult {
	return &domain.RunResult{
		ID: "run-1",
		Documents: []domain.Document{
			{Title: "a.txt", Raw: "The cat sat", Cleaned: "cat sat"},
			{Title: "b.txt", Raw: "The dog ran", Cleaned: "dog ran"},
		},
		Vocabulary: domain.NewVocabulary([]string{"cat", "sat", "dog", "ran"}),
		Report: domain.TopicReport{
			Topics: []domain.Topic{
				{Index: 0, Label: "Topic 1", Words: []string{"cat", "sat"}, Weights: []float64{0.6, 0.4}, DominantDocuments: 1},
				{Index: 1, Label: "Topic 2", Words: []string{"dog", "ran"}, Weights: []float64{0.5, 0.5}, DominantDocuments: 1},
			},
			AverageDistribution: []float64{0.25, 0.75},
		},
		Estimator: domain.EstimatorVariational,
		Elapsed:   12 * time.Millisecond,
	}
}
