package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the workspace root.
const FileName = "cratepub.yaml"

// Config controls optional cratepub behavior.
type Config struct {
	Version        int    `yaml:"version"`
	Registry       string `yaml:"registry,omitempty"`
	DefaultPackage string `yaml:"default_package,omitempty"`
	AllowDirty     bool   `yaml:"allow_dirty,omitempty"`
	Log            Log    `yaml:"log,omitempty"`
}

// Log configures the invocation debug log. Logging stays off until File is
// set.
type Log struct {
	File       string `yaml:"file,omitempty"`
	Level      string `yaml:"level,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Version: 1, Log: Log{Level: "info"}}
}

// Load reads cratepub.yaml from root if present. A missing file yields the
// default configuration.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates cratepub.yaml content.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("config: unsupported version: %d (expected 1)", cfg.Version)
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q (must be debug, info, warn, or error)", cfg.Log.Level)
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 || cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("config: log rotation limits must not be negative")
	}
	return nil
}
