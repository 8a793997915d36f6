package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// stubNormaliser tags its output with its name.
type stubNormaliser struct {
	name     string
	types    []string
	priority int
}

func (s *stubNormaliser) SupportedMIMETypes() []string { return s.types }
func (s *stubNormaliser) Priority() int                { return s.priority }

func (s *stubNormaliser) Normalise(_ context.Context, raw *domain.RawDocument, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	return &driven.NormaliseResult{Documents: []domain.Document{{
		Raw:      s.name,
		Metadata: map[string]any{"mime": raw.MIMEType, "column": opts.TextColumn},
	}}}, nil
}

func TestRegistry_PriorityWins(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{name: "fallback", types: []string{"text/plain"}, priority: 5})
	r.Register(&stubNormaliser{name: "special", types: []string{"text/plain"}, priority: 50})
	r.Register(&stubNormaliser{name: "late", types: []string{"text/plain"}, priority: 50})

	result, err := r.Normalise(context.Background(), &domain.RawDocument{MIMEType: "text/plain"}, driven.NormaliseOptions{TextColumn: 3})

	require.NoError(t, err)
	assert.Equal(t, "special", result.Documents[0].Raw)
	assert.Equal(t, 3, result.Documents[0].Metadata["column"])
}

func TestRegistry_DetectsAndStripsMIMEType(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{name: "csv", types: []string{MIMECSV}, priority: 60})
	r.Register(&stubNormaliser{name: "text", types: []string{MIMEPlainText}, priority: 5})

	tests := []struct {
		name string
		raw  domain.RawDocument
		want string
	}{
		{"from extension", domain.RawDocument{URI: "data/REVIEWS.CSV"}, "csv"},
		{"parameters stripped", domain.RawDocument{URI: "x", MIMEType: "text/plain; charset=utf-8"}, "text"},
		{"explicit type beats extension", domain.RawDocument{URI: "x.csv", MIMEType: "text/plain"}, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw

			result, err := r.Normalise(context.Background(), &raw, driven.NormaliseOptions{})

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Documents[0].Raw)
			assert.Equal(t, tt.raw.MIMEType, raw.MIMEType, "caller's document is not modified")
		})
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{name: "text", types: []string{MIMEPlainText}, priority: 5})

	_, err := r.Normalise(context.Background(), &domain.RawDocument{URI: "photo.png"}, driven.NormaliseOptions{})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = r.Normalise(context.Background(), nil, driven.NormaliseOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_SupportedMIMETypes(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{types: []string{"b/b", "a/a"}})
	r.Register(&stubNormaliser{types: []string{"a/a", "c/c"}})

	assert.Equal(t, []string{"a/a", "b/b", "c/c"}, r.SupportedMIMETypes())
}

func TestNewDefaultRegistry(t *testing.T) {
	types := NewDefaultRegistry().SupportedMIMETypes()

	for _, want := range []string{MIMEPlainText, MIMEMarkdown, MIMEHTML, MIMECSV, MIMETSV, MIMEXLSX, MIMEDOCX, MIMEEmail, MIMEMbox} {
		assert.Contains(t, types, want)
	}
}

func TestNewDefaultRegistry_EndToEnd(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name    string
		raw     domain.RawDocument
		opts    driven.NormaliseOptions
		want    []string
		wantErr error
	}{
		{"plain text", domain.RawDocument{URI: "a.txt", Content: []byte("the cat sat")}, driven.NormaliseOptions{}, []string{"the cat sat"}, nil},
		{"csv rows", domain.RawDocument{URI: "a.csv", Content: []byte("x,one\ny,two\n")}, driven.NormaliseOptions{TextColumn: 1}, []string{"one", "two"}, nil},
		{"tsv rows", domain.RawDocument{URI: "a.tsv", Content: []byte("x\tone\n")}, driven.NormaliseOptions{TextColumn: 1}, []string{"one"}, nil},
		{"markdown", domain.RawDocument{URI: "a.md", Content: []byte("# T\n\n**bold** text")}, driven.NormaliseOptions{}, []string{"T\n\nbold text"}, nil},
		{"invalid utf8", domain.RawDocument{URI: "a.txt", Content: []byte{0xff}}, driven.NormaliseOptions{}, nil, domain.ErrInvalidEncoding},
		{"unknown", domain.RawDocument{URI: "a.bin"}, driven.NormaliseOptions{}, nil, domain.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.Normalise(context.Background(), &tt.raw, tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.Texts(result.Documents))
		})
	}
}

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"notes.txt", MIMEPlainText},
		{"README", MIMEPlainText},
		{"sheet.XLSX", MIMEXLSX},
		{"page.htm", MIMEHTML},
		{"archive.mbox", MIMEMbox},
		{"image.png", MIMEUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMIMEType(tt.name))
		})
	}
}
