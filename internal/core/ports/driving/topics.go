package driving

import (
	"context"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// TopicService runs the clean → vectorise → fit → report pipeline.
type TopicService interface {
	// Run executes one independent pipeline run.
	// Stage failures are returned as *domain.StageError wrapping a domain sentinel.
	Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, error)

	// Estimators returns the estimators that can be requested.
	Estimators() []domain.Estimator
}
