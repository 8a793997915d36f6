package driven

import "github.com/custodia-labs/topica/internal/core/domain"

// TextCleaner normalises raw text into a whitespace-separated token stream.
// Implementations must be pure: the same input always yields the same output.
type TextCleaner interface {
	// Clean replaces non-word runs with spaces, lowercases, and drops stopwords.
	Clean(raw string, stopwords domain.StopwordSet) string
}
