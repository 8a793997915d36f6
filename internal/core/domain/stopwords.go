package domain

import "sort"

// StopwordSet is a set of lowercase words excluded during cleaning.
// A custom set fully replaces the default; sets are never merged.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a set from the given words, stored as-is.
func NewStopwordSet(words ...string) StopwordSet {
	s := make(StopwordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether w is a stopword. Matching is case-sensitive.
func (s StopwordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words in the set.
func (s StopwordSet) Len() int {
	return len(s)
}

// Words returns the words in sorted order.
func (s StopwordSet) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
