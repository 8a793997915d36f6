// Package plaintext decodes UTF-8 text files into a single document.
package plaintext

import (
	"context"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/normalisers/docutil"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text files.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise returns the whole file as one document. Invalid UTF-8 fails
// with domain.ErrInvalidEncoding.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument, _ driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := docutil.RequireUTF8(raw); err != nil {
		return nil, err
	}

	text := docutil.TrimBOM(string(raw.Content))
	doc := docutil.NewDocument(raw, docutil.Title(raw), text, "plaintext")

	return &driven.NormaliseResult{
		Documents: []domain.Document{doc},
	}, nil
}
