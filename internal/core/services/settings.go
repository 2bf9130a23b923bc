package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/cleanpaste/internal/core/domain"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driven"
	"github.com/custodia-labs/cleanpaste/internal/core/ports/driving"
	"github.com/custodia-labs/cleanpaste/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyRemoveZeroWidth    = "transform.remove_zero_width"
	KeyFixLineBreaks      = "transform.fix_line_breaks"
	KeyRemoveEmojis       = "transform.remove_emojis"
	KeyCaseMode           = "transform.case_mode"
	KeyCollapseWhitespace = "transform.collapse_whitespace"
	KeyStripStopWords     = "transform.strip_stop_words"
	KeyCodeCompact        = "transform.code_compact"
	KeySqueezeLevel       = "squeeze.level"
	KeyTheme              = "ui.theme"
)

var boolKeys = []string{
	KeyRemoveZeroWidth,
	KeyFixLineBreaks,
	KeyRemoveEmojis,
	KeyCollapseWhitespace,
	KeyStripStopWords,
	KeyCodeCompact,
}

// SettingsService manages persisted preferences. Stored values are merged
// over defaults key by key, so a partial or hand-edited file still loads.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Transform: domain.TransformConfig{
			RemoveZeroWidth:    s.getBool(KeyRemoveZeroWidth, defaults.Transform.RemoveZeroWidth),
			FixLineBreaks:      s.getBool(KeyFixLineBreaks, defaults.Transform.FixLineBreaks),
			RemoveEmojis:       s.getBool(KeyRemoveEmojis, defaults.Transform.RemoveEmojis),
			CaseMode:           s.getCaseMode(defaults.Transform.CaseMode),
			CollapseWhitespace: s.getBool(KeyCollapseWhitespace, defaults.Transform.CollapseWhitespace),
			StripStopWords:     s.getBool(KeyStripStopWords, defaults.Transform.StripStopWords),
			CodeCompact:        s.getBool(KeyCodeCompact, defaults.Transform.CodeCompact),
		},
		Squeeze: domain.SqueezeSettings{
			Level: s.getSqueezeLevel(defaults.Squeeze.Level),
		},
		UI: domain.UISettings{
			Theme: s.getTheme(defaults.UI.Theme),
		},
	}

	return settings, nil
}

// Save persists all settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("save settings: %w", domain.ErrInvalidInput)
	}

	if err := s.SaveTransform(settings.Transform); err != nil {
		return err
	}
	if err := s.configStore.Set(KeySqueezeLevel, settings.Squeeze.Level.String()); err != nil {
		return fmt.Errorf("save squeeze level: %w", err)
	}
	if err := s.configStore.Set(KeyTheme, settings.UI.Theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	return nil
}

// SaveTransform persists only the transform options.
func (s *SettingsService) SaveTransform(cfg domain.TransformConfig) error {
	values := map[string]bool{
		KeyRemoveZeroWidth:    cfg.RemoveZeroWidth,
		KeyFixLineBreaks:      cfg.FixLineBreaks,
		KeyRemoveEmojis:       cfg.RemoveEmojis,
		KeyCollapseWhitespace: cfg.CollapseWhitespace,
		KeyStripStopWords:     cfg.StripStopWords,
		KeyCodeCompact:        cfg.CodeCompact,
	}
	for _, key := range boolKeys {
		if err := s.configStore.Set(key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	mode := cfg.CaseMode
	if mode == "" {
		mode = domain.CaseNone
	}
	if err := s.configStore.Set(KeyCaseMode, mode.String()); err != nil {
		return fmt.Errorf("save case mode: %w", err)
	}

	return nil
}

// Set parses value for key, validates it and stores it.
func (s *SettingsService) Set(key, value string) error {
	var stored any

	switch key {
	case KeyRemoveZeroWidth, KeyFixLineBreaks, KeyRemoveEmojis,
		KeyCollapseWhitespace, KeyStripStopWords, KeyCodeCompact:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", key, value, domain.ErrInvalidSetting)
		}
		stored = b
	case KeyCaseMode:
		if !domain.CaseMode(value).IsValid() {
			return fmt.Errorf("%s=%q: %w", key, value, domain.ErrInvalidSetting)
		}
		stored = value
	case KeySqueezeLevel:
		if !domain.SqueezeLevel(value).IsValid() {
			return fmt.Errorf("%s=%q: %w", key, value, domain.ErrInvalidSetting)
		}
		stored = value
	case KeyTheme:
		if !domain.Theme(value).IsValid() {
			return fmt.Errorf("%s=%q: %w", key, value, domain.ErrInvalidSetting)
		}
		stored = value
	default:
		return fmt.Errorf("%q: %w", key, domain.ErrUnknownSetting)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	logger.Info("set %s = %v", key, stored)

	return nil
}

// Keys returns every recognised settings key in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyRemoveZeroWidth,
		KeyFixLineBreaks,
		KeyRemoveEmojis,
		KeyCaseMode,
		KeyCollapseWhitespace,
		KeyStripStopWords,
		KeyCodeCompact,
		KeySqueezeLevel,
		KeyTheme,
	}
}

// Reset removes every stored key so that Get returns defaults.
func (s *SettingsService) Reset() error {
	for _, key := range s.Keys() {
		if err := s.configStore.Delete(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	logger.Info("settings reset to defaults")
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getCaseMode(defaultVal domain.CaseMode) domain.CaseMode {
	mode := domain.CaseMode(s.configStore.GetString(KeyCaseMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getSqueezeLevel(defaultVal domain.SqueezeLevel) domain.SqueezeLevel {
	level := domain.SqueezeLevel(s.configStore.GetString(KeySqueezeLevel))
	if !level.IsValid() {
		return defaultVal
	}
	return level
}

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	theme := domain.Theme(s.configStore.GetString(KeyTheme))
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}
