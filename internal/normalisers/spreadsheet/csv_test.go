package spreadsheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

func TestCSV_SupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{"text/csv", "application/csv"}, NewCSV().SupportedMIMETypes())
	assert.Equal(t, []string{"text/tab-separated-values"}, NewCSV(WithComma('\t')).SupportedMIMETypes())
	assert.Equal(t, 60, NewCSV().Priority())
}

func TestCSV_Normalise(t *testing.T) {
	content := "review,stars\n" +
		"\"Great coffee, friendly staff\",5\n" +
		",3\n" +
		"Slow service,2\n"
	raw := &domain.RawDocument{URI: "reviews.csv", MIMEType: "text/csv", Content: []byte(content)}

	tests := []struct {
		name   string
		column int
		want   []string
		rows   []int
	}{
		{"first column", 0, []string{"review", "Great coffee, friendly staff", "Slow service"}, []int{1, 2, 4}},
		{"second column", 1, []string{"stars", "5", "3", "2"}, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewCSV().Normalise(context.Background(), raw, driven.NormaliseOptions{TextColumn: tt.column})

			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.Texts(result.Documents))
			for i, doc := range result.Documents {
				assert.Equal(t, tt.rows[i], doc.Metadata["row"])
				assert.Equal(t, tt.column, doc.Metadata[MetaColumn])
				assert.Equal(t, "csv", doc.Metadata["format"])
			}
		})
	}
}

func TestCSV_Normalise_RaggedRows(t *testing.T) {
	raw := &domain.RawDocument{URI: "ragged.csv", Content: []byte("a\nb,c\nd,e,f\n")}

	result, err := NewCSV().Normalise(context.Background(), raw, driven.NormaliseOptions{TextColumn: 1})

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "e"}, domain.Texts(result.Documents))
	assert.Equal(t, "ragged row 2", result.Documents[0].Title)
}

func TestCSV_Normalise_TabSeparated(t *testing.T) {
	raw := &domain.RawDocument{URI: "x.tsv", Content: []byte("one, two\tthree\n")}

	result, err := NewCSV(WithComma('\t')).Normalise(context.Background(), raw, driven.NormaliseOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"one, two"}, domain.Texts(result.Documents))
}

func TestCSV_Normalise_EmptyFile(t *testing.T) {
	result, err := NewCSV().Normalise(context.Background(), &domain.RawDocument{URI: "e.csv"}, driven.NormaliseOptions{})

	require.NoError(t, err)
	assert.Empty(t, result.Documents)
}

func TestCSV_Normalise_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     *domain.RawDocument
		column  int
		wantErr error
	}{
		{"nil document", nil, 0, domain.ErrInvalidInput},
		{"invalid utf8", &domain.RawDocument{URI: "x.csv", Content: []byte{0xff, ','}}, 0, domain.ErrInvalidEncoding},
		{"column out of range", &domain.RawDocument{URI: "x.csv", Content: []byte("a,b\nc,d\n")}, 5, domain.ErrInvalidInput},
		{"negative column", &domain.RawDocument{URI: "x.csv", Content: []byte("a\n")}, -1, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewCSV().Normalise(context.Background(), tt.raw, driven.NormaliseOptions{TextColumn: tt.column})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestCSV_Normalise_InvalidDelimiter(t *testing.T) {
	raw := &domain.RawDocument{URI: "x.csv", Content: []byte("a\n")}

	_, err := NewCSV(WithComma('"')).Normalise(context.Background(), raw, driven.NormaliseOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
