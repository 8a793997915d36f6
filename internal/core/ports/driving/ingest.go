package driving

import (
	"context"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// IngestOptions controls how uploaded files become documents.
type IngestOptions struct {
	// TextColumn is the zero-based spreadsheet column holding text.
	TextColumn int
}

// IngestService turns uploaded files into documents and stopword sets.
type IngestService interface {
	// Ingest decodes every file, in order, into documents.
	Ingest(ctx context.Context, files []domain.RawDocument, opts IngestOptions) ([]domain.Document, error)

	// Stopwords parses an uploaded list, or returns the default list when raw is nil.
	Stopwords(ctx context.Context, raw *domain.RawDocument) (domain.StopwordSet, error)

	// SupportedMIMETypes returns the MIME types that can be ingested.
	SupportedMIMETypes() []string
}
