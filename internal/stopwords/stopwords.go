// Package stopwords provides the built-in English stopword list and a
// parser for user-supplied lists.
package stopwords

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.StopwordSource = Source{}

//go:embed english.txt
var english string

// defaultSet is parsed at most once per process and never mutated.
var defaultSet = sync.OnceValue(func() domain.StopwordSet {
	set, err := Parse(strings.NewReader(english))
	if err != nil {
		panic(fmt.Sprintf("stopwords: embedded list: %v", err))
	}
	return set
})

// Default returns the built-in English stopword set.
// The set is shared; callers must not modify it.
func Default() domain.StopwordSet {
	return defaultSet()
}

// Parse reads one term per line. Terms are trimmed and lowercased;
// blank lines and lines starting with # are skipped.
func Parse(r io.Reader) (domain.StopwordSet, error) {
	set := make(domain.StopwordSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return set, nil
}

// Source adapts the package functions to driven.StopwordSource.
type Source struct{}

// Default returns the built-in English stopword set.
func (Source) Default() domain.StopwordSet {
	return Default()
}

// Parse reads a user-supplied list.
func (Source) Parse(r io.Reader) (domain.StopwordSet, error) {
	return Parse(r)
}
