package postprocessors

import (
	"fmt"

	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/ports/driven"
	"github.com/custodia-labs/topica/internal/postprocessors/minwords"
	"github.com/custodia-labs/topica/internal/postprocessors/splitter"
)

// RegisterDefaults registers the built-in stages: splitting long
// documents, then dropping short ones.
func RegisterDefaults(r *Registry) {
	r.Register(splitter.Name, buildSplitter)
	r.Register(minwords.Name, buildMinWords)
}

// FromSettings builds the ingest pipeline from every registered stage
// the settings enable, in registration order.
func FromSettings(r *Registry, s domain.IngestSettings) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range r.Names() {
		proc, err := r.Build(name, s)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", name, err)
		}
		if proc != nil {
			p.Add(proc)
		}
	}
	return p, nil
}

// buildSplitter is enabled by a positive SplitWords.
func buildSplitter(s domain.IngestSettings) (driven.PostProcessor, error) {
	if s.SplitWords < 0 {
		return nil, fmt.Errorf("%w: split words %d", domain.ErrInvalidInput, s.SplitWords)
	}
	if s.SplitWords == 0 {
		return nil, nil
	}
	return splitter.New(splitter.WithWindowSize(s.SplitWords)), nil
}

// buildMinWords always runs so blank documents never reach the model.
func buildMinWords(s domain.IngestSettings) (driven.PostProcessor, error) {
	if s.MinWords < 0 {
		return nil, fmt.Errorf("%w: min words %d", domain.ErrInvalidInput, s.MinWords)
	}
	return minwords.New(s.MinWords), nil
}
