package spreadsheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/normalisers/docutil"
)

// Ensure CSV implements the interface.
var _ driven.Normaliser = (*CSV)(nil)

// CSV handles comma-separated files.
type CSV struct {
	comma rune
}

// CSVOption configures a CSV normaliser.
type CSVOption func(*CSV)

// WithComma sets the field delimiter. The default is ','.
func WithComma(r rune) CSVOption {
	return func(c *CSV) {
		c.comma = r
	}
}

// NewCSV creates a CSV normaliser.
func NewCSV(opts ...CSVOption) *CSV {
	c := &CSV{comma: ','}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (c *CSV) SupportedMIMETypes() []string {
	if c.comma == '\t' {
		return []string{"text/tab-separated-values"}
	}
	return []string{"text/csv", "application/csv"}
}

// Priority returns the selection priority.
func (c *CSV) Priority() int {
	return 60
}

// Normalise reads every record and keeps the text column. Records may have
// differing field counts.
func (c *CSV) Normalise(_ context.Context, raw *domain.RawDocument, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := docutil.RequireUTF8(raw); err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(docutil.TrimBOM(string(raw.Content))))
	r.Comma = c.comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, raw.URI, err)
	}

	docs, err := recordsToDocuments(raw, numbered(rows), opts.TextColumn, "csv")
	if err != nil {
		return nil, err
	}
	return &driven.NormaliseResult{Documents: docs}, nil
}
