package driven

import (
	"context"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// TopicModel fits an LDA-style model to a document-term matrix.
type TopicModel interface {
	// Name returns the estimator name.
	Name() domain.Estimator

	// Fit estimates opts.NumTopics topics from m.
	// Returns domain.ErrInvalidTopicCount if K < 1 or K > number of terms,
	// domain.ErrDegenerateInput if m has no tokens, and
	// domain.ErrNumericInstability if the weights contain NaN or Inf.
	Fit(ctx context.Context, m *domain.DocumentTermMatrix, opts domain.ModelOptions) (FittedModel, error)
}

// FittedModel is the state of a fitted topic model.
type FittedModel interface {
	// NumTopics returns K.
	NumTopics() int

	// NumTerms returns the vocabulary size the model was fitted on.
	NumTerms() int

	// TopicWords returns the word weights of topic k (length NumTerms).
	TopicWords(k int) []float64

	// Transform infers a topic distribution for every row of m.
	// Each row sums to 1; all-zero rows get the uniform distribution.
	Transform(ctx context.Context, m *domain.DocumentTermMatrix) (*domain.DocumentTopicMatrix, error)
}

// TopicModelRegistry selects a TopicModel by estimator name.
type TopicModelRegistry interface {
	// Get returns the model for name, or domain.ErrUnsupportedType.
	Get(name domain.Estimator) (TopicModel, error)

	// Names returns the registered estimators.
	Names() []domain.Estimator
}
