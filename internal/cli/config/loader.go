// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/tagoverride-go/internal/cli/output"
	"github.com/yndnr/tagoverride-go/internal/core/domain"
	"github.com/yndnr/tagoverride-go/internal/core/service"
	"github.com/yndnr/tagoverride-go/internal/infra/confloader"
	"github.com/yndnr/tagoverride-go/internal/telemetry/logger"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tagoverride", "cli.yaml")
}

// Load loads CLI configuration. An empty path uses DefaultConfigPath and
// tolerates the file being absent; an explicit path must exist.
// overrides are flag values keyed like the config file ("log.level").
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	opts := []confloader.Option{
		confloader.WithDefaults(defaultsMap()),
		confloader.WithOverrides(overrides),
	}
	if path == "" {
		opts = append(opts, confloader.WithOptionalConfigFile(DefaultConfigPath()))
	} else {
		opts = append(opts, confloader.WithConfigFile(path))
	}

	cfg := &CLIConfig{}
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, domain.ErrConfigLoad.WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *CLIConfig) Validate() error {
	if c.ExpirationDays < 0 || c.ExpirationDays > service.MaxExpirationDays {
		return domain.ErrConfigInvalid.WithDetailsf("expiration_days must be between 0 and %d, got %d",
			service.MaxExpirationDays, c.ExpirationDays)
	}
	if !output.Format(c.Output).Valid() {
		return domain.ErrConfigInvalid.WithDetailsf("output must be text, json or yaml, got %q", c.Output)
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return domain.ErrConfigInvalid.WithDetailsf("base_url must be an absolute URL, got %q", c.BaseURL)
		}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return domain.ErrConfigInvalid.WithCause(err).WithDetailsf("log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case logger.FormatText, logger.FormatJSON:
	default:
		return domain.ErrConfigInvalid.WithDetailsf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Save writes the configuration as YAML with owner-only permissions.
// An existing file is left untouched unless overwrite is set.
func Save(cfg *CLIConfig, path string, overwrite bool) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
