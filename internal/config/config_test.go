package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.UseLocalTime {
		t.Error("local time correction should default on")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("default log level = %s, want warn", cfg.Logging.Level)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("SAJU_DEFAULT_LOCATION", "")
	t.Setenv("SAJU_USE_LOCAL_TIME", "")
	t.Setenv("SAJU_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "saju.yaml")
	cfg := DefaultConfig()
	cfg.DefaultLocation = "Busan"
	cfg.UseLocalTime = false

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultLocation != "Busan" {
		t.Errorf("DefaultLocation = %s, want Busan", loaded.DefaultLocation)
	}
	if loaded.UseLocalTime {
		t.Error("UseLocalTime should round-trip false")
	}
}

func TestConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SAJU_DEFAULT_LOCATION", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file errored: %v", err)
	}
	if !cfg.UseLocalTime {
		t.Error("missing file should yield defaults")
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SAJU_DEFAULT_LOCATION", "Tokyo")
	t.Setenv("SAJU_USE_LOCAL_TIME", "false")
	t.Setenv("SAJU_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLocation != "Tokyo" {
		t.Errorf("DefaultLocation = %s, want Tokyo", cfg.DefaultLocation)
	}
	if cfg.UseLocalTime {
		t.Error("env should disable local time")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for bad log level")
	}
}
