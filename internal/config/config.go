// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Validate wraps ErrInvalidConfig; Load wraps ErrLoadConfig for unreadable sources.
package config

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Error kinds returned by Load and Validate; match them with errors.Is.
var (
	ErrInvalidConfig = errors.New("config: invalid value")
	ErrLoadConfig    = errors.New("config: source unreadable")
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath points at a YAML catalog. Empty serves the built-in dataset.
	CatalogPath string `koanf:"catalog_path"`

	// MaxSessions bounds the number of open listing sessions.
	MaxSessions int `koanf:"max_sessions"`

	// SessionTTLSeconds drops sessions idle for longer.
	SessionTTLSeconds int `koanf:"session_ttl_seconds"`

	// SweepIntervalSeconds is how often idle sessions are swept.
	SweepIntervalSeconds int `koanf:"sweep_interval_seconds"`

	// MaxTopLimit caps GET /top?limit.
	MaxTopLimit int `koanf:"max_top_limit"`
}

// New creates a Config with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		MaxSessions:          10_000,
		SessionTTLSeconds:    1800,
		SweepIntervalSeconds: 60,
		MaxTopLimit:          50,
	}
}

// SessionTTL returns SessionTTLSeconds as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// SweepInterval returns SweepIntervalSeconds as a duration.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case !slices.Contains([]string{"", "debug", "info", "warn", "warning", "error"}, strings.ToLower(c.LogLevel)):
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	case !slices.Contains([]string{"", "text", "json"}, strings.ToLower(c.LogFormat)):
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	case c.MaxSessions < 1:
		return fmt.Errorf("%w: max_sessions must be positive", ErrInvalidConfig)
	case c.SessionTTLSeconds < 1:
		return fmt.Errorf("%w: session_ttl_seconds must be positive", ErrInvalidConfig)
	case c.SweepIntervalSeconds < 1:
		return fmt.Errorf("%w: sweep_interval_seconds must be positive", ErrInvalidConfig)
	case c.MaxTopLimit < 1:
		return fmt.Errorf("%w: max_top_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
