// Package config provides configuration loading using koanf.
// Precedence: environment variables over compiled defaults.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/aelexs/temporal-query-service/internal/domain"
)

// Config holds all service configuration.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Service configuration
	Chrono ChronoConfig `koanf:"chrono"`

	// OpenTelemetry configuration
	OTEL OTELConfig `koanf:"otel"`
}

// ChronoConfig holds the temporal query service configuration.
type ChronoConfig struct {
	HTTPPort int `koanf:"http_port"`

	// DefaultTimezone applies when a request omits its timezone parameters.
	// Must be a resolvable IANA identifier.
	DefaultTimezone string `koanf:"default_timezone"`

	// DefaultLocale applies when a request omits the locale parameter.
	DefaultLocale string `koanf:"default_locale"`
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	Endpoint    string `koanf:"endpoint"` // Empty disables OTLP export
	ServiceName string `koanf:"service_name"`
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Environment: "local",
		LogLevel:    "info",
		LogFormat:   "json",

		Chrono: ChronoConfig{
			HTTPPort:        8080,
			DefaultTimezone: domain.DefaultTimezone,
			DefaultLocale:   domain.DefaultLocale,
		},

		OTEL: OTELConfig{
			ServiceName: "chrono",
		},
	}
}

// envKeys maps recognized environment variables to config paths.
var envKeys = map[string]string{
	"ENVIRONMENT":             "environment",
	"LOG_LEVEL":               "log_level",
	"LOG_FORMAT":              "log_format",
	"CHRONO_HTTP_PORT":        "chrono.http_port",
	"CHRONO_DEFAULT_TIMEZONE": "chrono.default_timezone",
	"CHRONO_DEFAULT_LOCALE":   "chrono.default_locale",
	"OTEL_ENDPOINT":           "otel.endpoint",
	"OTEL_SERVICE_NAME":       "otel.service_name",
}

// Load loads configuration following the precedence:
// 1. Environment variables (highest)
// 2. Compiled defaults (lowest)
//
// Required keys missing cause startup failure; optional keys fall back to
// defaults.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	// Start with compiled defaults
	cfg := defaults()

	// Load environment variables. Full names like CHRONO_HTTP_PORT are
	// mapped explicitly: a blanket underscore-to-dot rewrite cannot tell a
	// nesting separator from an underscore inside a key name.
	err := k.Load(env.Provider("", ".", func(s string) string {
		if key, ok := envKeys[s]; ok {
			return key
		}
		// Unrelated process env lands on keys no struct field matches.
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// Unmarshal into config struct
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Validate required fields
	if err := validateRequired(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateRequired checks that required configuration is present.
func validateRequired(cfg *Config) error {
	if cfg.Chrono.DefaultTimezone == "" {
		return fmt.Errorf("%w: chrono.default_timezone", domain.ErrConfigRequired)
	}
	if cfg.Chrono.HTTPPort < 0 || cfg.Chrono.HTTPPort > 65535 {
		return fmt.Errorf("%w: chrono.http_port out of range", domain.ErrConfigRequired)
	}
	return nil
}

// IsLocal returns true if running in local development environment.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// IsProd returns true if running in production environment.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
