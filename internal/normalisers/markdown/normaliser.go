// Package markdown decodes Markdown files into a single plain-text document.
package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/normalisers/docutil"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise returns the prose of the file as one document. Front matter
// and code are dropped since they are not part of the text.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument, _ driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := docutil.RequireUTF8(raw); err != nil {
		return nil, err
	}

	content := docutil.TrimBOM(string(raw.Content))
	content = frontMatter.ReplaceAllString(content, "")

	title := firstHeading(content)
	if title == "" {
		title = docutil.Title(raw)
	}

	doc := docutil.NewDocument(raw, title, Strip(content), "markdown")
	return &driven.NormaliseResult{
		Documents: []domain.Document{doc},
	}, nil
}

var (
	frontMatter   = regexp.MustCompile(`(?s)\A---\r?\n.*?\n---\r?\n`)
	h1            = regexp.MustCompile(`(?m)^#\s+(.+?)\s*#*\s*$`)
	fencedCode    = regexp.MustCompile("(?s)(```|~~~).*?(```|~~~)")
	inlineCode    = regexp.MustCompile("`[^`\n]+`")
	images        = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	links         = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	headings      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquotes   = regexp.MustCompile(`(?m)^\s*>\s?`)
	rules         = regexp.MustCompile(`(?m)^\s*([-*_]\s*){3,}$`)
	bullets       = regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+`)
	emphasis      = regexp.MustCompile(`(\*{1,3}|_{2,3})([^*_\n]+)(\*{1,3}|_{2,3})`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// firstHeading returns the text of the first level-one heading.
func firstHeading(content string) string {
	m := h1.FindStringSubmatch(content)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// Strip removes Markdown syntax and returns the remaining text.
func Strip(content string) string {
	content = fencedCode.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")
	content = blockquotes.ReplaceAllString(content, "")
	content = rules.ReplaceAllString(content, "")
	content = bullets.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "$2")
	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
