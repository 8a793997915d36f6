package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// createTestDOCX builds a minimal DOCX archive from the given parts.
func createTestDOCX(t *testing.T, parts map[string]string) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for name, content := range parts {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func body(inner string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><w:document ` + wordNS + `><w:body>` + inner + `</w:body></w:document>`
}

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t,
		[]string{"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		New().SupportedMIMETypes())
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 50, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	content := createTestDOCX(t, map[string]string{
		"word/document.xml": body(
			`<w:p><w:r><w:t>Quarterly</w:t></w:r><w:r><w:t xml:space="preserve"> report</w:t></w:r></w:p>` +
				`<w:p></w:p>` +
				`<w:p><w:r><w:t>Revenue</w:t><w:tab/><w:t>grew</w:t></w:r></w:p>`),
		"docProps/core.xml": `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>Q3 Report</dc:title></cp:coreProperties>`,
	})
	raw := &domain.RawDocument{URI: "q3.docx", Content: content}

	result, err := New().Normalise(context.Background(), raw, driven.NormaliseOptions{})

	require.NoError(t, err)
	require.Len(t, result.Documents, 1)
	doc := result.Documents[0]
	assert.Equal(t, "Q3 Report", doc.Title)
	assert.Equal(t, "Quarterly report\nRevenue grew", doc.Raw)
	assert.Equal(t, "docx", doc.Metadata["format"])
}

func TestNormalise_TableParagraphs(t *testing.T) {
	content := createTestDOCX(t, map[string]string{
		"word/document.xml": body(
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell one</w:t></w:r></w:p></w:tc>` +
				`<w:tc><w:p><w:r><w:t>cell two</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`),
	})

	result, err := New().Normalise(context.Background(), &domain.RawDocument{URI: "t.docx", Content: content}, driven.NormaliseOptions{})

	require.NoError(t, err)
	assert.Equal(t, "cell one\ncell two", result.Documents[0].Raw)
}

func TestNormalise_TitleFallbackToFilename(t *testing.T) {
	content := createTestDOCX(t, map[string]string{
		"word/document.xml": body(`<w:p><w:r><w:t>x</w:t></w:r></w:p>`),
	})

	result, err := New().Normalise(context.Background(), &domain.RawDocument{URI: "/docs/board_minutes.docx", Content: content}, driven.NormaliseOptions{})

	require.NoError(t, err)
	assert.Equal(t, "board minutes", result.Documents[0].Title)
}

func TestNormalise_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  *domain.RawDocument
	}{
		{"nil document", nil},
		{"not a zip", &domain.RawDocument{URI: "x.docx", Content: []byte("plain text")}},
		{"missing body", &domain.RawDocument{URI: "x.docx", Content: createTestDOCX(t, map[string]string{"docProps/core.xml": "<x/>"})}},
		{"malformed xml", &domain.RawDocument{URI: "x.docx", Content: createTestDOCX(t, map[string]string{"word/document.xml": "<w:document><w:body>"})}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Normalise(context.Background(), tt.raw, driven.NormaliseOptions{})

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, result)
		})
	}
}
