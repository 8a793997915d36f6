package normalisers

import (
	"github.com/custodia-labs/topica/internal/normalisers/docx"
	"github.com/custodia-labs/topica/internal/normalisers/eml"
	"github.com/custodia-labs/topica/internal/normalisers/html"
	"github.com/custodia-labs/topica/internal/normalisers/markdown"
	"github.com/custodia-labs/topica/internal/normalisers/plaintext"
	"github.com/custodia-labs/topica/internal/normalisers/spreadsheet"
)

// RegisterDefaults registers all built-in normalisers with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(docx.New())
	r.Register(eml.New())
	r.Register(spreadsheet.NewCSV())
	r.Register(spreadsheet.NewCSV(spreadsheet.WithComma('\t')))
	r.Register(spreadsheet.NewXLSX())
}

// NewDefaultRegistry returns a registry with every built-in normaliser.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
