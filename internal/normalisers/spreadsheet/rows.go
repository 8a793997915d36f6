package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/normalisers/docutil"
)

// MetaColumn records which column a row document was read from.
const MetaColumn = "column"

// record is one spreadsheet row with its 1-based row number.
type record struct {
	row   int
	cells []string
}

// numbered wraps CSV records or sheet rows, numbering them from 1.
func numbered(rows [][]string) []record {
	out := make([]record, len(rows))
	for i, cells := range rows {
		out[i] = record{row: i + 1, cells: cells}
	}
	return out
}

// recordsToDocuments builds one document per record whose column cell has
// text. A column that no record reaches is an input error; an empty sheet
// is not.
func recordsToDocuments(raw *domain.RawDocument, records []record, column int, format string) ([]domain.Document, error) {
	if column < 0 {
		return nil, fmt.Errorf("%w: text column %d", domain.ErrInvalidInput, column)
	}

	base := docutil.Title(raw)
	var (
		docs    []domain.Document
		reached bool
	)
	for _, rec := range records {
		if column >= len(rec.cells) {
			continue
		}
		reached = true

		text := strings.TrimSpace(rec.cells[column])
		if text == "" {
			continue
		}
		doc := docutil.NewDocument(raw, fmt.Sprintf("%s row %d", base, rec.row), text, format)
		doc.Metadata[docutil.MetaRow] = rec.row
		doc.Metadata[MetaColumn] = column
		docs = append(docs, doc)
	}

	if len(records) > 0 && !reached {
		return nil, fmt.Errorf("%w: text column %d is beyond every row of %s", domain.ErrInvalidInput, column, raw.URI)
	}
	return docs, nil
}
