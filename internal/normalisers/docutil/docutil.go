// Package docutil holds helpers shared by the normalisers: titles,
// metadata and document construction.
package docutil

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// Metadata keys set on every normalised document.
const (
	MetaMIMEType = "mime_type"
	MetaFormat   = "format"
	MetaRow      = "row"
)

// NewDocument builds a document from raw with a fresh ID.
func NewDocument(raw *domain.RawDocument, title, text, format string) domain.Document {
	meta := copyMetadata(raw.Metadata)
	meta[MetaMIMEType] = raw.MIMEType
	meta[MetaFormat] = format

	return domain.Document{
		ID:       uuid.New().String(),
		URI:      raw.URI,
		Title:    title,
		Raw:      text,
		Metadata: meta,
	}
}

// Title returns the "title" metadata entry when present, otherwise a
// title derived from the URI.
func Title(raw *domain.RawDocument) string {
	if raw.Metadata != nil {
		if title, ok := raw.Metadata["title"].(string); ok && title != "" {
			return title
		}
	}
	return TitleFromURI(raw.URI)
}

// TitleFromURI turns "notes/q3_field-report.txt" into "q3 field report".
func TitleFromURI(uri string) string {
	filename := filepath.Base(uri)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	return strings.NewReplacer("_", " ", "-", " ").Replace(filename)
}

// RequireUTF8 returns ErrInvalidEncoding unless content is valid UTF-8.
func RequireUTF8(raw *domain.RawDocument) error {
	if !utf8.Valid(raw.Content) {
		return fmt.Errorf("%s: %w", raw.URI, domain.ErrInvalidEncoding)
	}
	return nil
}

// TrimBOM drops a leading UTF-8 byte order mark.
func TrimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

// ReadZipFile returns the contents of name inside an OOXML package.
// The boolean is false when the entry does not exist.
func ReadZipFile(reader *zip.Reader, name string) ([]byte, bool, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, true, fmt.Errorf("%w: open %s: %v", domain.ErrInvalidInput, name, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, true, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, name, err)
		}
		return content, true, nil
	}
	return nil, false, nil
}

func copyMetadata(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
