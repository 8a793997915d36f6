// Package minwords drops documents too short to say anything about topics,
// such as blank spreadsheet rows or one-word labels.
package minwords

import (
	"context"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/logger"
)

// Name is the registry name of the processor.
const Name = "minwords"

// DefaultMinWords keeps every document with at least one word.
const DefaultMinWords = 1

// Processor filters out documents with fewer than a minimum number of words.
// It implements the PostProcessor interface.
type Processor struct {
	min int
}

// New creates a filter keeping documents with at least min words.
// Values below 1 mean DefaultMinWords.
func New(min int) *Processor {
	if min < 1 {
		min = DefaultMinWords
	}
	return &Processor{min: min}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process returns the documents that have enough words, in order.
func (p *Processor) Process(ctx context.Context, docs []domain.Document) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		if len(strings.Fields(doc.Raw)) >= p.min {
			out = append(out, doc)
		}
	}
	if dropped := len(docs) - len(out); dropped > 0 {
		logger.Debug("minwords: dropped %d of %d documents under %d words", dropped, len(docs), p.min)
	}
	return out, nil
}
