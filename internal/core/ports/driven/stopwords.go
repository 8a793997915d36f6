package driven

import (
	"io"

	"github.com/custodia-labs/topica/internal/core/domain"
)

// StopwordSource provides stopword sets.
type StopwordSource interface {
	// Default returns the built-in set. The result is shared and must not be modified.
	Default() domain.StopwordSet

	// Parse reads one term per line; blank lines and # comments are skipped.
	Parse(r io.Reader) (domain.StopwordSet, error)
}
