// Package config defines the CLI configuration structure.
package config

import (
	"github.com/yndnr/tagoverride-go/internal/cli/output"
	"github.com/yndnr/tagoverride-go/internal/core/service"
	"github.com/yndnr/tagoverride-go/internal/telemetry/logger"
)

// CLIConfig is the configuration for tagoverride.
type CLIConfig struct {
	// SecretFile is the shared secret used when none is given on the
	// command line. "-" reads standard input.
	SecretFile string `koanf:"secret_file" yaml:"secret_file" json:"secret_file"`

	// ExpirationDays caps --ttl expiries. 0 disables the cap.
	ExpirationDays int `koanf:"expiration_days" yaml:"expiration_days" json:"expiration_days"`

	// DefaultToMaxExpiry makes requests without any expiry use the cap.
	DefaultToMaxExpiry bool `koanf:"default_to_max_expiry" yaml:"default_to_max_expiry" json:"default_to_max_expiry"`

	// Output is the result format: text, json or yaml.
	Output string `koanf:"output" yaml:"output" json:"output"`

	// BaseURL is the override endpoint the printed link is built on.
	BaseURL string `koanf:"base_url" yaml:"base_url,omitempty" json:"base_url,omitempty"`

	Log LogConfig `koanf:"log" yaml:"log" json:"log"`
}

// LogConfig configures diagnostics written to stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		ExpirationDays: service.DefaultExpirationDays,
		Output:         string(output.FormatText),
		Log: LogConfig{
			Level:  "warn",
			Format: logger.FormatText,
		},
	}
}

// defaultsMap mirrors Default for the config loader.
func defaultsMap() map[string]any {
	d := Default()
	return map[string]any{
		"secret_file":           d.SecretFile,
		"expiration_days":       d.ExpirationDays,
		"default_to_max_expiry": d.DefaultToMaxExpiry,
		"output":                d.Output,
		"base_url":              d.BaseURL,
		"log.level":             d.Log.Level,
		"log.format":            d.Log.Format,
	}
}

// ServiceConfig returns the OverrideService configuration.
func (c *CLIConfig) ServiceConfig() *service.OverrideServiceConfig {
	cfg := service.DefaultOverrideServiceConfig()
	cfg.ExpirationDays = c.ExpirationDays
	cfg.DefaultToMaxExpiry = c.DefaultToMaxExpiry
	return cfg
}

// LoggerConfig returns the logger configuration.
func (c *CLIConfig) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format
	return cfg
}
