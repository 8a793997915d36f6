package driven

import (
	"context"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// Normaliser decodes an uploaded file into documents.
// Each normaliser handles specific MIME types (e.g., CSV, XLSX).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise decodes raw into zero or more documents.
	Normalise(ctx context.Context, raw *domain.RawDocument, opts NormaliseOptions) (*NormaliseResult, error)
}

// NormaliseOptions tunes decoding.
type NormaliseOptions struct {
	// TextColumn is the zero-based spreadsheet column holding text.
	TextColumn int
}

// NormaliseResult contains the output of normalisation.
// Plain text files produce one document; spreadsheets produce one per row.
type NormaliseResult struct {
	Documents []domain.Document
}
