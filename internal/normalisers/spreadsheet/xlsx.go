package spreadsheet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Ensure XLSX implements the interface.
var _ driven.Normaliser = (*XLSX)(nil)

// XLSX handles Excel workbooks. Only the first sheet is read.
type XLSX struct{}

// NewXLSX creates an XLSX normaliser.
func NewXLSX() *XLSX {
	return &XLSX{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (x *XLSX) SupportedMIMETypes() []string {
	return []string{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}
}

// Priority returns the selection priority.
func (x *XLSX) Priority() int {
	return 60
}

// Normalise reads the first sheet in workbook order and keeps the text column.
func (x *XLSX) Normalise(_ context.Context, raw *domain.RawDocument, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	book, err := excelize.OpenReader(bytes.NewReader(raw.Content))
	if err != nil {
		if book != nil {
			_ = book.Close()
		}
		return nil, fmt.Errorf("%w: %s is not an xlsx workbook: %v", domain.ErrInvalidInput, raw.URI, err)
	}
	defer func() { _ = book.Close() }()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", domain.ErrInvalidInput, raw.URI)
	}

	// GetRows keeps blank rows between filled ones, so positions are row numbers.
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", domain.ErrInvalidInput, sheets[0], err)
	}

	docs, err := recordsToDocuments(raw, numbered(rows), opts.TextColumn, "xlsx")
	if err != nil {
		return nil, err
	}
	return &driven.NormaliseResult{Documents: docs}, nil
}
