// Package tui provides an interactive terminal user interface for topica.
// It shows the topics of a corpus with a bar chart of the average topic
// distribution and refits the model as the user changes the topic count.
package tui

import (
	"github.com/custodia-labs/topica/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Topics runs the modelling pipeline.
	Topics driving.TopicService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(topics driving.TopicService) *Ports {
	return &Ports{Topics: topics}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Topics == nil {
		return ErrMissingTopicService
	}
	return nil
}
