package mcp

import (
	"github.com/custodia-labs/cleanpaste/internal/core/domain"
)

// mockNormaliserService is a mock implementation of driving.NormaliserService.
type mockNormaliserService struct {
	lastInput  string
	lastConfig domain.TransformConfig
	lastLevel  domain.SqueezeLevel
	result     domain.TransformResult
	tokens     int
}

func (m *mockNormaliserService) Normalise(input string, cfg domain.TransformConfig) domain.TransformResult {
	m.lastInput = input
	m.lastConfig = cfg
	return m.result
}

func (m *mockNormaliserService) Squeeze(input string, level domain.SqueezeLevel) domain.TransformResult {
	m.lastInput = input
	m.lastLevel = level
	return m.result
}

func (m *mockNormaliserService) EstimateTokens(_ string) int {
	return m.tokens
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) SaveTransform(_ domain.TransformConfig) error { return m.err }

func (m *mockSettingsService) Set(_, _ string) error { return m.err }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) Reset() error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
