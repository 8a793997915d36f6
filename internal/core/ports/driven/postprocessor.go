package driven

import (
	"context"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// PostProcessor reshapes ingested documents before modelling
// (e.g., splitting long texts into word windows).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process receives documents and returns the documents to keep.
	Process(ctx context.Context, docs []domain.Document) ([]domain.Document, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs docs through all processors in order.
	Process(ctx context.Context, docs []domain.Document) ([]domain.Document, error)
}
