package confloader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	SecretFile     string `koanf:"secret_file"`
	ExpirationDays int    `koanf:"expiration_days"`
	Log            struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeFile(t, "secret_file: /etc/override.key\nexpiration_days: 3\nlog:\n  level: debug\n")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SecretFile != "/etc/override.key" {
		t.Errorf("SecretFile = %q", cfg.SecretFile)
	}
	if cfg.ExpirationDays != 3 {
		t.Errorf("ExpirationDays = %d", cfg.ExpirationDays)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoader_Load_RequiredFileMissing(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))).Load(&cfg)
	if err == nil {
		t.Error("Load() should fail when a required config file is missing")
	}
}

func TestLoader_Load_OptionalFileMissing(t *testing.T) {
	var cfg testConfig
	l := NewLoader(
		WithOptionalConfigFile(filepath.Join(t.TempDir(), "missing.yaml")),
		WithDefaults(map[string]any{"expiration_days": 7}),
	)
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ExpirationDays != 7 {
		t.Errorf("ExpirationDays = %d, want default 7", cfg.ExpirationDays)
	}
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	path := writeFile(t, "secret_file: [unterminated\n")

	var cfg testConfig
	if err := NewLoader(WithOptionalConfigFile(path)).Load(&cfg); err == nil {
		t.Error("Load() should fail on invalid YAML even for an optional file")
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("TAGOVERRIDE_SECRET_FILE", "/run/secrets/override")
	t.Setenv("TAGOVERRIDE_LOG__LEVEL", "error")

	var cfg testConfig
	if err := NewLoader().Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SecretFile != "/run/secrets/override" {
		t.Errorf("SecretFile = %q", cfg.SecretFile)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TAGOVERRIDE_SECRET_FILE", "secret_file"},
		{"TAGOVERRIDE_EXPIRATION_DAYS", "expiration_days"},
		{"TAGOVERRIDE_LOG__LEVEL", "log.level"},
		{"TAGOVERRIDE_LOG__FORMAT", "log.format"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoader_LoadMap_Dotted(t *testing.T) {
	path := writeFile(t, "secret_file: from-file\nlog:\n  level: info\n")

	var cfg testConfig
	l := NewLoader(WithConfigFile(path), WithOverrides(map[string]any{"log.level": "warn"}))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.SecretFile != "from-file" {
		t.Errorf("dotted override should merge with file values, SecretFile = %q", cfg.SecretFile)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeFile(t, "secret_file: from-file\nexpiration_days: 3\nlog:\n  level: info\n")
	t.Setenv("TAGOVERRIDE_EXPIRATION_DAYS", "5")
	t.Setenv("TAGOVERRIDE_LOG__LEVEL", "warn")

	var cfg testConfig
	l := NewLoader(
		WithDefaults(map[string]any{"secret_file": "from-default", "expiration_days": 7}),
		WithConfigFile(path),
		WithOverrides(map[string]any{"log.level": "debug"}),
	)
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SecretFile != "from-file" {
		t.Errorf("file should override defaults, got %q", cfg.SecretFile)
	}
	if cfg.ExpirationDays != 5 {
		t.Errorf("env should override file, got %d", cfg.ExpirationDays)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("overrides should win, got %q", cfg.Log.Level)
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := (mapProvider{}).ReadBytes(); !errors.Is(err, ErrReadBytesNotSupported) {
		t.Errorf("ReadBytes() error = %v", err)
	}
}
