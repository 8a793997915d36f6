package domain

import "fmt"

// dense is a row-major float64 matrix.
type dense struct {
	rows, cols int
	data       []float64
}

func newDense(rows, cols int) dense {
	return dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

func (m *dense) offset(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range %dx%d", r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

// Dims returns the number of rows and columns.
func (m *dense) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the value at row r, column c.
func (m *dense) At(r, c int) float64 {
	return m.data[m.offset(r, c)]
}

// Set stores v at row r, column c.
func (m *dense) Set(r, c int, v float64) {
	m.data[m.offset(r, c)] = v
}

// RawRow returns row r without copying. Writes go through to the matrix.
func (m *dense) RawRow(r int) []float64 {
	start := m.offset(r, 0)
	return m.data[start : start+m.cols : start+m.cols]
}

// Row returns a copy of row r.
func (m *dense) Row(r int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.RawRow(r))
	return out
}

// RawData returns the backing row-major slice.
func (m *dense) RawData() []float64 {
	return m.data
}

// DocumentTermMatrix holds raw term counts.
// Rows are documents, columns are vocabulary terms.
type DocumentTermMatrix struct {
	dense
}

// NewDocumentTermMatrix creates a zeroed docs x terms matrix.
func NewDocumentTermMatrix(docs, terms int) *DocumentTermMatrix {
	return &DocumentTermMatrix{dense: newDense(docs, terms)}
}

// Add increments the count of term t in document d.
func (m *DocumentTermMatrix) Add(d, t int, n float64) {
	m.data[m.offset(d, t)] += n
}

// RowTotal returns the number of tokens in document d.
func (m *DocumentTermMatrix) RowTotal(d int) float64 {
	var sum float64
	for _, v := range m.RawRow(d) {
		sum += v
	}
	return sum
}

// Total returns the number of tokens in the corpus.
func (m *DocumentTermMatrix) Total() float64 {
	var sum float64
	for _, v := range m.data {
		sum += v
	}
	return sum
}

// DocumentTopicMatrix holds per-document topic distributions.
// Rows are documents, columns are topics; each row sums to 1.
type DocumentTopicMatrix struct {
	dense
}

// NewDocumentTopicMatrix creates a zeroed docs x topics matrix.
func NewDocumentTopicMatrix(docs, topics int) *DocumentTopicMatrix {
	return &DocumentTopicMatrix{dense: newDense(docs, topics)}
}

// Rows returns a copy of every row, for serialisation.
func (m *DocumentTopicMatrix) Rows() [][]float64 {
	out := make([][]float64, m.rows)
	for r := range out {
		out[r] = m.Row(r)
	}
	return out
}
