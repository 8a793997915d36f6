package postprocessors

import (
	"fmt"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Builder creates a processor from the ingest settings.
// It returns a nil processor when the settings leave the stage disabled.
type Builder func(s domain.IngestSettings) (driven.PostProcessor, error)

// Registry holds processor builders in the order their stages run.
type Registry struct {
	order    []string
	builders map[string]Builder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register appends a stage. Registering a known name replaces its
// builder and keeps its position.
func (r *Registry) Register(name string, b Builder) {
	if _, ok := r.builders[name]; !ok {
		r.order = append(r.order, name)
	}
	r.builders[name] = b
}

// Build creates the named stage for s.
func (r *Registry) Build(name string, s domain.IngestSettings) (driven.PostProcessor, error) {
	b, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: processor %q", domain.ErrUnsupportedType, name)
	}
	return b(s)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns the stage names in run order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
