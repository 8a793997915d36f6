package estimators

import (
	"github.com/custodia-labs/topica/internal/estimators/gibbs"
	"github.com/custodia-labs/topica/internal/estimators/variational"
)

// RegisterDefaults registers all built-in estimators with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(variational.New())
	r.Register(gibbs.New())
}

// NewDefaultRegistry returns a registry with the built-in estimators.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
