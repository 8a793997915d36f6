package web

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driving"
)

// mockTopicService records the last request and returns a fixed result.
type mockTopicService struct {
	result  *domain.RunResult
	err     error
	lastReq domain.RunRequest
}

func (m *mockTopicService) Run(_ context.Context, req domain.RunRequest) (*domain.RunResult, error) {
	m.lastReq = req
	return m.result, m.err
}

func (m *mockTopicService) Estimators() []domain.Estimator {
	return []domain.Estimator{domain.EstimatorGibbs, domain.EstimatorVariational}
}

// mockIngestService turns every file into one document per line.
type mockIngestService struct {
	err       error
	stopErr   error
	lastFiles []domain.RawDocument
	lastOpts  driving.IngestOptions
	lastStop  *domain.RawDocument
}

func (m *mockIngestService) Ingest(_ context.Context, files []domain.RawDocument, opts driving.IngestOptions) ([]domain.Document, error) {
	m.lastFiles = files
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	var docs []domain.Document
	for _, f := range files {
		for _, line := range strings.Split(strings.TrimSpace(string(f.Content)), "\n") {
			docs = append(docs, domain.Document{URI: f.URI, Title: f.URI, Raw: line})
		}
	}
	return docs, nil
}

func (m *mockIngestService) Stopwords(_ context.Context, raw *domain.RawDocument) (domain.StopwordSet, error) {
	m.lastStop = raw
	if m.stopErr != nil {
		return nil, m.stopErr
	}
	return domain.NewStopwordSet(strings.Fields(string(raw.Content))...), nil
}

func (m *mockIngestService) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// mockSettingsService returns fixed settings.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Lookup(string) (string, error) {
	return "", m.err
}

func (m *mockSettingsService) Set(string, string) error {
	return m.err
}

func (m *mockSettingsService) Reset(string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func sampleResult() *domain.RunResult {
	return &domain.RunResult{
		ID: "run-1",
		Documents: []domain.Document{
			{Title: "a.txt", Raw: "The cat sat", Cleaned: "cat sat"},
			{Title: "a.txt", Raw: "Dogs ran", Cleaned: "dogs ran"},
		},
		Vocabulary: domain.NewVocabulary([]string{"cat", "sat", "dogs", "ran"}),
		Report: domain.TopicReport{
			Topics: []domain.Topic{
				{Index: 0, Label: "Topic 1", Words: []string{"cat", "sat"}, Weights: []float64{0.6, 0.4}, DominantDocuments: 1},
				{Index: 1, Label: "Topic 2", Words: []string{"dogs", "ran"}, Weights: []float64{0.5, 0.5}, DominantDocuments: 1},
			},
			AverageDistribution: []float64{0.4, 0.6},
		},
		Estimator: domain.EstimatorVariational,
	}
}

type part struct {
	field    string
	filename string
	content  string
}

// multipartRequest builds a POST request with the given file parts and fields.
func multipartRequest(t *testing.T, path string, parts []part, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
