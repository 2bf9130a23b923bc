// Package config loads process-level configuration from the environment.
// User preferences (transform defaults, theme) live in the settings file
// instead; see internal/adapters/driven/config/file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds environment-driven process settings.
type Config struct {
	// ConfigDir overrides the settings directory (default ~/.cleanpaste).
	ConfigDir string `env:"CLEANPASTE_CONFIG_DIR" env-description:"settings directory (default ~/.cleanpaste)"`

	// Verbose enables debug logging without --verbose.
	Verbose bool `env:"CLEANPASTE_VERBOSE" env-default:"false" env-description:"enable debug logging"`

	// Clipboard disables all clipboard writes when false.
	Clipboard bool `env:"CLEANPASTE_CLIPBOARD" env-default:"true" env-description:"allow clipboard writes"`

	// MCPPort is the default port for `mcp serve --port`; 0 means stdio.
	MCPPort int `env:"CLEANPASTE_MCP_PORT" env-default:"0" env-description:"MCP HTTP port, 0 for stdio"`

	// WatchInterval is the minimum gap between two re-cleans of a watched file.
	WatchInterval time.Duration `env:"CLEANPASTE_WATCH_INTERVAL" env-default:"250ms" env-description:"minimum gap between watched re-cleans"`
}

// Load reads configuration from environment variables and defaults.
func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.MCPPort < 0 || c.MCPPort > 65535 {
		errs = append(errs, fmt.Errorf("CLEANPASTE_MCP_PORT %d out of range", c.MCPPort))
	}
	if c.WatchInterval < 0 {
		errs = append(errs, fmt.Errorf("CLEANPASTE_WATCH_INTERVAL %s is negative", c.WatchInterval))
	}

	return errors.Join(errs...)
}

// Usage returns a description of every supported environment variable.
func Usage() string {
	var cfg Config
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return desc
}
