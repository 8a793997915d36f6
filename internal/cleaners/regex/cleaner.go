// Package regex provides a TextCleaner built on a non-word regular expression.
package regex

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Ensure Cleaner implements the interface.
var _ driven.TextCleaner = (*Cleaner)(nil)

// nonWord matches runs of characters other than ASCII letters, digits and underscore.
var nonWord = regexp.MustCompile(`\W+`)

// Cleaner normalises raw text into lowercase, stopword-free tokens.
type Cleaner struct {
	foldAccents bool
}

// Option configures the cleaner.
type Option func(*Cleaner)

// WithAccentFolding strips diacritics before cleaning so "café" keeps its "e".
func WithAccentFolding(on bool) Option {
	return func(c *Cleaner) {
		c.foldAccents = on
	}
}

// New creates a cleaner with the given options.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean replaces every non-word run with a space, lowercases, and drops
// tokens found in stopwords. Survivors are joined by single spaces.
func (c *Cleaner) Clean(raw string, stopwords domain.StopwordSet) string {
	if raw == "" {
		return ""
	}
	if c.foldAccents {
		raw = foldAccents(raw)
	}

	text := strings.ToLower(nonWord.ReplaceAllString(raw, " "))

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if !stopwords.Contains(tok) {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// CleanAll cleans texts in order.
func (c *Cleaner) CleanAll(texts []string, stopwords domain.StopwordSet) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = c.Clean(t, stopwords)
	}
	return out
}

// foldAccents decomposes s and removes combining marks.
// A transform.Transformer is stateful, so one is built per call.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
