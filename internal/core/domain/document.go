package domain

// Document is one unit of text in a modelling run.
// Raw is supplied by a collaborator; Cleaned is derived by the TextCleaner
// and is never modified afterwards.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the file the document came from, if any.
	URI string

	// Title is the human-readable title.
	Title string

	// Raw is the text as supplied.
	Raw string

	// Cleaned is the normalised token stream joined by single spaces.
	Cleaned string

	// Metadata contains normaliser-specific key-value pairs (row number, sheet).
	Metadata map[string]any
}

// Preview returns the first n characters of the cleaned text.
func (d *Document) Preview(n int) string {
	runes := []rune(d.Cleaned)
	if n < 0 || len(runes) <= n {
		return d.Cleaned
	}
	return string(runes[:n])
}

// Texts returns the raw text of every document, in order.
func Texts(docs []Document) []string {
	out := make([]string, len(docs))
	for i := range docs {
		out[i] = docs[i].Raw
	}
	return out
}

// CleanedTexts returns the cleaned text of every document, in order.
func CleanedTexts(docs []Document) []string {
	out := make([]string, len(docs))
	for i := range docs {
		out[i] = docs[i].Cleaned
	}
	return out
}
