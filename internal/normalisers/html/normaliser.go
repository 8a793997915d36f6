package html

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/normalisers/docutil"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise returns the visible text of the page as one document.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument, _ driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := docutil.RequireUTF8(raw); err != nil {
		return nil, err
	}

	page := docutil.TrimBOM(string(raw.Content))
	title := pageTitle(page)
	if title == "" {
		title = docutil.Title(raw)
	}

	doc := docutil.NewDocument(raw, title, Strip(page), "html")
	return &driven.NormaliseResult{
		Documents: []domain.Document{doc},
	}, nil
}

var (
	titleTag = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

	// Elements whose content is never visible text.
	invisible = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
		regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`),
		regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`),
		regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`),
		regexp.MustCompile(`(?s)<!--.*?-->`),
	}

	blockBoundary = regexp.MustCompile(`(?i)</?(p|div|h[1-6]|li|tr|td|th|blockquote|pre|table|section|article)(\s[^>]*)?>|<(br|hr)\s*/?>`)
	anyTag        = regexp.MustCompile(`<[^>]+>`)
	spaceRun      = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// pageTitle returns the decoded <title>, or "" when there is none.
func pageTitle(page string) string {
	m := titleTag.FindStringSubmatch(page)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}

// Strip removes markup from an HTML fragment and returns its text, one
// block element per line.
func Strip(page string) string {
	for _, re := range invisible {
		page = re.ReplaceAllString(page, "")
	}
	page = blockBoundary.ReplaceAllString(page, "\n")
	page = anyTag.ReplaceAllString(page, "")
	page = html.UnescapeString(page)
	page = spaceRun.ReplaceAllString(page, " ")

	var lines []string
	for _, line := range strings.Split(page, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
