package mcp

import (
	"context"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// mockTopicService is a mock implementation of driving.TopicService.
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

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Lookup(_ string) (string, error) {
	return "", m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Reset(_ string) error {
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
		ID:         "run-1",
		Documents:  []domain.Document{{Raw: "cat sat"}, {Raw: "dog ran"}},
		Vocabulary: domain.NewVocabulary([]string{"cat", "sat", "dog", "ran"}),
		Report: domain.TopicReport{
			Topics: []domain.Topic{
				{Index: 0, Label: "Topic 1", Words: []string{"cat", "sat"}, Weights: []float64{0.6, 0.4}, DominantDocuments: 1},
				{Index: 1, Label: "Topic 2", Words: []string{"dog", "ran"}, Weights: []float64{0.5, 0.5}, DominantDocuments: 1},
			},
			AverageDistribution: []float64{0.5, 0.5},
		},
		Estimator: domain.EstimatorGibbs,
	}
}
