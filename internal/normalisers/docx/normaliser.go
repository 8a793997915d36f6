// Package docx extracts the body text of Word (OOXML) documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/normalisers/docutil"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const (
	documentPart = "word/document.xml"
	corePart     = "docProps/core.xml"
)

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise returns the document body as one document, one paragraph per
// line. Paragraphs inside tables are included.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument, _ driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a docx archive: %v", domain.ErrInvalidInput, err)
	}

	body, ok, err := docutil.ReadZipFile(reader, documentPart)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, documentPart)
	}

	text, err := paragraphs(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, documentPart, err)
	}

	title := coreTitle(reader)
	if title == "" {
		title = docutil.Title(raw)
	}

	doc := docutil.NewDocument(raw, title, text, "docx")
	return &driven.NormaliseResult{
		Documents: []domain.Document{doc},
	}, nil
}

// paragraphs streams document.xml, joining <w:t> runs within a paragraph
// and separating paragraphs with newlines. Tabs and breaks become spaces.
func paragraphs(body []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))

	var (
		out    []string
		cur    strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab", "br", "cr":
				cur.WriteByte(' ')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if line := strings.TrimSpace(cur.String()); line != "" {
					out = append(out, line)
				}
				cur.Reset()
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return strings.Join(out, "\n"), nil
}

// coreTitle returns dc:title from docProps/core.xml, or "".
func coreTitle(reader *zip.Reader) string {
	content, ok, err := docutil.ReadZipFile(reader, corePart)
	if err != nil || !ok {
		return ""
	}

	var core struct {
		Title string `xml:"title"`
	}
	if err := xml.Unmarshal(content, &core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}
