package estimators

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.TopicModelRegistry = (*Registry)(nil)

// Registry maps estimator names to topic models.
type Registry struct {
	mu     sync.RWMutex
	models map[domain.Estimator]driven.TopicModel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[domain.Estimator]driven.TopicModel),
	}
}

// Register adds a model under its own name, replacing any previous one.
func (r *Registry) Register(model driven.TopicModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[model.Name()] = model
}

// Get returns the model registered for name.
func (r *Registry) Get(name domain.Estimator) (driven.TopicModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	model, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: estimator %q", domain.ErrUnsupportedType, name)
	}
	return model, nil
}

// Has returns true if an estimator with the given name is registered.
func (r *Registry) Has(name domain.Estimator) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.models[name]
	return ok
}

// Names returns all registered estimator names in sorted order.
func (r *Registry) Names() []domain.Estimator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]domain.Estimator, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
