// Package count builds document-term count matrices with nlp.CountVectoriser.
package count

import (
	"fmt"
	"strings"

	"github.com/e-gun/nlp"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/logger"
)

// Ensure Vectoriser implements the interface.
var _ driven.CorpusVectoriser = (*Vectoriser)(nil)

// Vectoriser counts whitespace-separated tokens.
// Cleaned text has already lost its punctuation, so no further
// tokenisation rules apply; digits and underscores survive as term characters.
type Vectoriser struct{}

// New creates a count vectoriser.
func New() *Vectoriser {
	return &Vectoriser{}
}

// Fit builds the vocabulary in first-occurrence order and counts every term.
func (v *Vectoriser) Fit(docs []string) (*domain.Vocabulary, *domain.DocumentTermMatrix, error) {
	if len(docs) == 0 {
		return nil, nil, domain.ErrEmptyCorpus
	}

	vocab := domain.NewVocabulary(firstOccurrence(docs))
	if vocab.Size() == 0 {
		return nil, nil, domain.ErrEmptyCorpus
	}

	cv := nlp.NewCountVectoriser()
	cv.Tokeniser = whitespaceTokeniser{}
	counts, err := cv.FitTransform(docs...)
	if err != nil {
		return nil, nil, fmt.Errorf("count terms: %w", err)
	}
	if len(cv.Vocabulary) != vocab.Size() {
		return nil, nil, fmt.Errorf("count terms: vocabulary size %d, expected %d", len(cv.Vocabulary), vocab.Size())
	}

	// counts is terms x documents, indexed by the vectoriser's own vocabulary.
	m := domain.NewDocumentTermMatrix(len(docs), vocab.Size())
	for term, row := range cv.Vocabulary {
		col, ok := vocab.Index(term)
		if !ok {
			return nil, nil, fmt.Errorf("count terms: unexpected term %q", term)
		}
		for d := range docs {
			if n := counts.At(row, d); n != 0 {
				m.Set(d, col, n)
			}
		}
	}

	logger.Debug("vectorise: %d documents, %d terms, %.0f tokens", len(docs), vocab.Size(), m.Total())
	return vocab, m, nil
}

// firstOccurrence lists distinct tokens in the order they first appear.
func firstOccurrence(docs []string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, doc := range docs {
		for _, tok := range strings.Fields(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			terms = append(terms, tok)
		}
	}
	return terms
}

// whitespaceTokeniser implements nlp.Tokeniser by splitting on whitespace.
type whitespaceTokeniser struct{}

func (whitespaceTokeniser) ForEachIn(input string, process func(token string)) {
	for _, tok := range strings.Fields(input) {
		process(tok)
	}
}

func (whitespaceTokeniser) Tokenise(input string) []string {
	return strings.Fields(input)
}
