package driving

import "github.com/custodia-labs/cleanpaste/internal/core/domain"

// SettingsService manages persisted user preferences.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults per key.
	Get() (*domain.AppSettings, error)

	// Save persists all settings.
	Save(settings *domain.AppSettings) error

	// SaveTransform persists only the transform options.
	SaveTransform(cfg domain.TransformConfig) error

	// Set parses and stores a single setting by key.
	Set(key, value string) error

	// Keys returns every recognised settings key.
	Keys() []string

	// Reset restores all settings to their defaults.
	Reset() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
