// Package splitter breaks long documents into fixed-size word windows so
// that a single long file contributes several documents to a run.
package splitter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// Name is the registry name of the processor.
const Name = "splitter"

// DefaultWindowSize is the default number of words per piece.
const DefaultWindowSize = 200

// Metadata keys set on pieces.
const (
	MetaParentID = "parent_id"
	MetaPart     = "part"
)

// Processor splits document text into windows of words.
// It implements the PostProcessor interface.
type Processor struct {
	windowSize int
	overlap    int
}

// Option configures the splitter.
type Option func(*Processor)

// WithWindowSize sets the number of words per piece.
func WithWindowSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.windowSize = size
		}
	}
}

// WithOverlap sets how many words consecutive pieces share.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{windowSize: DefaultWindowSize}
	for _, opt := range opts {
		opt(p)
	}
	if p.overlap >= p.windowSize {
		p.overlap = p.windowSize / 4
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process replaces every document longer than the window with its pieces.
// Shorter documents pass through unchanged. Order is preserved.
func (p *Processor) Process(ctx context.Context, docs []domain.Document) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(docs))
	for i := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		words := strings.Fields(docs[i].Raw)
		if len(words) <= p.windowSize {
			out = append(out, docs[i])
			continue
		}
		out = append(out, p.split(&docs[i], words)...)
	}
	return out, nil
}

func (p *Processor) split(doc *domain.Document, words []string) []domain.Document {
	step := p.windowSize - p.overlap
	pieces := make([]domain.Document, 0, len(words)/step+1)

	for start, part := 0, 1; start < len(words); start, part = start+step, part+1 {
		end := start + p.windowSize
		if end > len(words) {
			end = len(words)
		}

		meta := make(map[string]any, len(doc.Metadata)+2)
		for k, v := range doc.Metadata {
			meta[k] = v
		}
		meta[MetaParentID] = doc.ID
		meta[MetaPart] = part

		pieces = append(pieces, domain.Document{
			ID:       uuid.New().String(),
			URI:      doc.URI,
			Title:    fmt.Sprintf("%s (part %d)", doc.Title, part),
			Raw:      strings.Join(words[start:end], " "),
			Metadata: meta,
		})

		if end == len(words) {
			break
		}
	}
	return pieces
}
