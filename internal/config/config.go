// Package config holds the engine's file-backed options: yaml on disk,
// SAJU_* environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full saju configuration.
type Config struct {
	// Local-time correction toggle; on by default.
	UseLocalTime bool `yaml:"use_local_time"`

	// DefaultLocation is the city assumed when a calculation names none.
	// Empty means no correction.
	DefaultLocation string `yaml:"default_location"`

	// PlacesFile optionally layers extra cities over the builtin table.
	PlacesFile string `yaml:"places_file"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the zap logger the CLI builds.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the shipped defaults.
func DefaultConfig() *Config {
	return &Config{
		UseLocalTime:    true,
		DefaultLocation: "",
		Logging:         LoggingConfig{Level: "warn"},
	}
}

// Load reads a config file and applies env overrides. A missing file is
// not an error: defaults plus env are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SAJU_DEFAULT_LOCATION"); v != "" {
		c.DefaultLocation = v
	}
	if v := os.Getenv("SAJU_PLACES_FILE"); v != "" {
		c.PlacesFile = v
	}
	if v := os.Getenv("SAJU_USE_LOCAL_TIME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UseLocalTime = b
		}
	}
	if v := os.Getenv("SAJU_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	return nil
}
