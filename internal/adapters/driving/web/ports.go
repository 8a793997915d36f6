package web

import "github.com/custodia-labs/topica/internal/core/ports/driving"

// Ports aggregates the driving ports used by the HTTP server.
type Ports struct {
	// Topics runs the modelling pipeline.
	Topics driving.TopicService

	// Ingest decodes uploaded files and stopword lists.
	Ingest driving.IngestService

	// Settings supplies defaults for omitted form fields. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Topics == nil {
		return ErrMissingTopicService
	}
	if p.Ingest == nil {
		return ErrMissingIngestService
	}
	return nil
}
