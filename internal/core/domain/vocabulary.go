package domain

// Vocabulary is the ordered set of unique terms seen in a corpus.
// Each term has a stable column index in the DocumentTermMatrix.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// NewVocabulary builds a vocabulary from terms in index order.
// Repeated terms keep their first index.
func NewVocabulary(terms []string) *Vocabulary {
	v := &Vocabulary{
		terms: make([]string, 0, len(terms)),
		index: make(map[string]int, len(terms)),
	}
	for _, t := range terms {
		if _, ok := v.index[t]; ok {
			continue
		}
		v.index[t] = len(v.terms)
		v.terms = append(v.terms, t)
	}
	return v
}

// Size returns the number of terms.
func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Term returns the term at column i.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Index returns the column of term and whether it is known.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Terms returns a copy of the terms in index order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}
