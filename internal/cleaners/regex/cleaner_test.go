package regex

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/topica/internal/core/domain"
)

func TestClean(t *testing.T) {
	stop := domain.NewStopwordSet("the", "on", "and", "are", "a")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"drops stopwords", "the cat sat on the mat", "cat sat mat"},
		{"lowercases before matching", "The Cat SAT", "cat sat"},
		{"collapses punctuation", "dogs, cats... and -- pets!", "dogs cats pets"},
		{"keeps digits and underscore", "route_66 is 2 lanes", "route_66 is 2 lanes"},
		{"only stopwords", "the a and", ""},
		{"only punctuation", "?!... ---", ""},
		{"non ascii letters split words", "café au lait", "caf au lait"},
		{"newlines and tabs", "cat\n\tdog", "cat dog"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Clean(tt.input, stop))
		})
	}
}

func TestClean_NilStopwords(t *testing.T) {
	assert.Equal(t, "the cat", New().Clean("The cat.", nil))
}

func TestClean_CaseSensitiveStopwords(t *testing.T) {
	stop := domain.NewStopwordSet("The")
	assert.Equal(t, "the cat", New().Clean("The cat", stop))
}

func TestClean_AccentFolding(t *testing.T) {
	c := New(WithAccentFolding(true))

	assert.Equal(t, "cafe au lait", c.Clean("Café au lait", nil))
	assert.Equal(t, "naive resume", c.Clean("naïve résumé", nil))
}

func TestClean_OutputAlphabet(t *testing.T) {
	stop := domain.NewStopwordSet("is", "the")
	allowed := regexp.MustCompile(`^[a-z0-9_]*( [a-z0-9_]+)*$`)

	inputs := []string{
		"Hello, World! This is THE test.",
		"Ünïcödé ünd ßtrange çhars",
		"tabs\tand\nnewlines\r\n",
		"   leading and trailing   ",
		"emoji 🎉 party",
		"MiXeD_case_123",
	}

	for _, c := range []*Cleaner{New(), New(WithAccentFolding(true))} {
		for _, in := range inputs {
			out := c.Clean(in, stop)
			assert.Regexp(t, allowed, out, "input %q", in)
			assert.Equal(t, strings.ToLower(out), out)
			for _, tok := range strings.Fields(out) {
				assert.False(t, stop.Contains(tok), "stopword %q in %q", tok, out)
			}
		}
	}
}

func TestCleanAll(t *testing.T) {
	stop := domain.NewStopwordSet("the", "on", "and", "are")

	out := New().CleanAll([]string{"the cat sat on the mat", "dogs and cats are pets"}, stop)

	assert.Equal(t, []string{"cat sat mat", "dogs cats pets"}, out)
}
