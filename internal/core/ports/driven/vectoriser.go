package driven

import "github.com/custodia-labs/topica/internal/core/domain"

// CorpusVectoriser turns cleaned documents into term counts.
type CorpusVectoriser interface {
	// Fit builds a vocabulary from docs (first-occurrence order) and
	// counts every term per document.
	// Returns domain.ErrEmptyCorpus if there are no documents or no terms.
	Fit(docs []string) (*domain.Vocabulary, *domain.DocumentTermMatrix, error)
}
