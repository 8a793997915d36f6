package driving

import "github.com/custodia-labs/topica/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults for unset keys.
	Get() (*domain.Settings, error)

	// Lookup returns the effective value of key, formatted for display.
	Lookup(key string) (string, error)

	// Set parses value for key and persists it.
	Set(key, value string) error

	// Reset removes a stored key so its default applies again.
	Reset(key string) error

	// Keys returns every settable key in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
