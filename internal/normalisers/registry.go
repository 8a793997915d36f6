package normalisers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry selects a normaliser by MIME type. When several normalisers
// handle a type, the highest priority wins; equal priorities keep
// registration order.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a normaliser to the registry.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.normalisers = append(r.normalisers, n)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise decodes raw with the best matching normaliser. An empty
// MIMEType is detected from the URI.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	doc := *raw
	if doc.MIMEType == "" {
		doc.MIMEType = DetectMIMEType(doc.URI)
	}
	doc.MIMEType = baseType(doc.MIMEType)

	n := r.find(doc.MIMEType)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, doc.MIMEType)
	}
	return n.Normalise(ctx, &doc, opts)
}

// SupportedMIMETypes returns every handled MIME type, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

func (r *Registry) find(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if t == mimeType {
				return n
			}
		}
	}
	return nil
}
