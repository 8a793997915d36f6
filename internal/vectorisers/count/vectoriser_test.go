package count

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
)

func TestFit_CountsTerms(t *testing.T) {
	vocab, m, err := New().Fit([]string{"cat dog", "dog dog"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"cat", "dog"}, vocab.Terms())

	cat, ok := vocab.Index("cat")
	require.True(t, ok)
	dog, ok := vocab.Index("dog")
	require.True(t, ok)

	docs, terms := m.Dims()
	assert.Equal(t, 2, docs)
	assert.Equal(t, 2, terms)

	assert.Equal(t, 1.0, m.At(0, cat))
	assert.Equal(t, 1.0, m.At(0, dog))
	assert.Equal(t, 0.0, m.At(1, cat))
	assert.Equal(t, 2.0, m.At(1, dog))
}

func TestFit_FirstOccurrenceOrder(t *testing.T) {
	vocab, m, err := New().Fit([]string{"cat sat mat", "dogs cats pets cat"})
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "sat", "mat", "dogs", "cats", "pets"}, vocab.Terms())
	assert.Equal(t, []float64{1, 0, 0, 1, 1, 1}, m.Row(1))
}

func TestFit_KeepsDigitsAndUnderscores(t *testing.T) {
	vocab, _, err := New().Fit([]string{"route_66 2024"})
	require.NoError(t, err)

	assert.Equal(t, []string{"route_66", "2024"}, vocab.Terms())
}

func TestFit_EmptyDocumentsBecomeZeroRows(t *testing.T) {
	_, m, err := New().Fit([]string{"", "cat", ""})
	require.NoError(t, err)

	docs, _ := m.Dims()
	assert.Equal(t, 3, docs)
	assert.Equal(t, 0.0, m.RowTotal(0))
	assert.Equal(t, 1.0, m.RowTotal(1))
	assert.Equal(t, 0.0, m.RowTotal(2))
}

func TestFit_EmptyCorpus(t *testing.T) {
	tests := []struct {
		name string
		docs []string
	}{
		{"no documents", nil},
		{"only empty documents", []string{"", "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := New().Fit(tt.docs)
			assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
		})
	}
}

func TestFit_Stable(t *testing.T) {
	docs := []string{"b a c", "c c a"}

	v1, m1, err := New().Fit(docs)
	require.NoError(t, err)
	v2, m2, err := New().Fit(docs)
	require.NoError(t, err)

	assert.Equal(t, v1.Terms(), v2.Terms())
	assert.Equal(t, m1.RawData(), m2.RawData())
}
