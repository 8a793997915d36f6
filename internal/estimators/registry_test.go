package estimators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

type stubModel struct {
	name domain.Estimator
}

func (s stubModel) Name() domain.Estimator { return s.name }

func (s stubModel) Fit(context.Context, *domain.DocumentTermMatrix, domain.ModelOptions) (driven.FittedModel, error) {
	return nil, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(stubModel{name: "stub"})

	model, err := r.Get("stub")
	require.NoError(t, err)
	assert.Equal(t, domain.Estimator("stub"), model.Name())
	assert.True(t, r.Has("stub"))
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("nmf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.ErrorContains(t, err, "nmf")
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	r.Register(stubModel{name: "b"})
	r.Register(stubModel{name: "a"})

	assert.Equal(t, []domain.Estimator{"a", "b"}, r.Names())
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, []domain.Estimator{domain.EstimatorGibbs, domain.EstimatorVariational}, r.Names())
	for _, name := range r.Names() {
		model, err := r.Get(name)
		require.NoError(t, err)
		assert.Equal(t, name, model.Name())
	}
}
