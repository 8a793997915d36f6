package spreadsheet

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

type cell struct {
	ref   string
	value any
}

// workbook builds an xlsx whose sheets appear in the given order.
func workbook(t *testing.T, names []string, cells map[string][]cell) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	require.NoError(t, f.SetSheetName("Sheet1", names[0]))
	for _, name := range names[1:] {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}
	for name, values := range cells {
		for _, c := range values {
			require.NoError(t, f.SetCellValue(name, c.ref, c.value))
		}
	}
	// The active sheet must not decide which sheet is read.
	f.SetActiveSheet(len(names) - 1)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestXLSX_SupportedMIMETypes(t *testing.T) {
	assert.Equal(t,
		[]string{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		NewXLSX().SupportedMIMETypes())
	assert.Equal(t, 60, NewXLSX().Priority())
}

func TestXLSX_Normalise_FirstSheetInWorkbookOrder(t *testing.T) {
	content := workbook(t, []string{"Notes", "Other"}, map[string][]cell{
		"Notes": {
			{"A1", "comment"}, {"B1", "score"},
			{"A2", "The harvest was late"}, {"B2", 4},
			{"A5", "Rain delayed planting"},
			{"B6", 1},
		},
		"Other": {{"A1", "wrong sheet"}},
	})
	raw := &domain.RawDocument{URI: "field.xlsx", Content: content}

	result, err := NewXLSX().Normalise(context.Background(), raw, driven.NormaliseOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"comment", "The harvest was late", "Rain delayed planting"}, domain.Texts(result.Documents))
	assert.Equal(t, 5, result.Documents[2].Metadata["row"])
	assert.Equal(t, "field row 5", result.Documents[2].Title)
	assert.Equal(t, "xlsx", result.Documents[0].Metadata["format"])
	assert.Equal(t, 0, result.Documents[0].Metadata[MetaColumn])
}

func TestXLSX_Normalise_SecondColumn(t *testing.T) {
	content := workbook(t, []string{"Data"}, map[string][]cell{
		"Data": {{"B1", "only b"}, {"A2", "The harvest was late"}},
	})

	result, err := NewXLSX().Normalise(context.Background(), &domain.RawDocument{URI: "x.xlsx", Content: content}, driven.NormaliseOptions{TextColumn: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"only b"}, domain.Texts(result.Documents))
	assert.Equal(t, 1, result.Documents[0].Metadata[MetaColumn])
}

func TestXLSX_Normalise_NumbersAsText(t *testing.T) {
	content := workbook(t, []string{"Sheet1"}, map[string][]cell{
		"Sheet1": {{"A1", "alpha"}, {"A2", 42}},
	})

	result, err := NewXLSX().Normalise(context.Background(), &domain.RawDocument{URI: "x.xlsx", Content: content}, driven.NormaliseOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "42"}, domain.Texts(result.Documents))
	assert.Equal(t, 2, result.Documents[1].Metadata["row"])
}

func TestXLSX_Normalise_EmptySheet(t *testing.T) {
	content := workbook(t, []string{"Empty"}, nil)

	result, err := NewXLSX().Normalise(context.Background(), &domain.RawDocument{URI: "x.xlsx", Content: content}, driven.NormaliseOptions{TextColumn: 3})

	require.NoError(t, err)
	assert.Empty(t, result.Documents)
}

func bareZip(t *testing.T) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	part, err := w.Create("xl/other.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestXLSX_Normalise_Errors(t *testing.T) {
	narrow := workbook(t, []string{"Sheet1"}, map[string][]cell{"Sheet1": {{"A1", "one"}}})

	tests := []struct {
		name   string
		raw    *domain.RawDocument
		column int
	}{
		{"nil document", nil, 0},
		{"not a zip", &domain.RawDocument{URI: "x.xlsx", Content: []byte("a,b,c")}, 0},
		{"zip without workbook", &domain.RawDocument{URI: "x.xlsx", Content: bareZip(t)}, 0},
		{"column beyond every row", &domain.RawDocument{URI: "x.xlsx", Content: narrow}, 4},
		{"negative column", &domain.RawDocument{URI: "x.xlsx", Content: narrow}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewXLSX().Normalise(context.Background(), tt.raw, driven.NormaliseOptions{TextColumn: tt.column})

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, result)
		})
	}
}
