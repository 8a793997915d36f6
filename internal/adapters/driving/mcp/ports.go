package mcp

import (
	"github.com/custodia-labs/topica/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Topics runs the modelling pipeline.
	Topics driving.TopicService

	// Settings supplies defaults for omitted tool arguments. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Topics == nil {
		return ErrMissingTopicService
	}
	return nil
}
