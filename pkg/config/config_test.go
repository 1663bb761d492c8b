package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Engine != "libretranslate" {
		t.Errorf("Engine = %q, want libretranslate", cfg.Engine)
	}
	if cfg.BackendURL != "http://localhost:5000" {
		t.Errorf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout())
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oversett.yaml")
	data := "port: 9090\nengine: google\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.Engine != "google" {
		t.Errorf("Engine = %q, want google", cfg.Engine)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Fields absent from the file keep their defaults.
	if cfg.BackendURL != "http://localhost:5000" {
		t.Errorf("BackendURL = %q, want default", cfg.BackendURL)
	}
}

func TestLoad_MissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with missing file returned nil error")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oversett.yaml")
	if err := os.WriteFile(path, []byte("port: 9090\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OVERSETT_PORT", "7070")
	t.Setenv("OVERSETT_BACKEND_URL", "http://mt.internal:5000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("Port = %d, want env override 7070", cfg.Port)
	}
	if cfg.BackendURL != "http://mt.internal:5000" {
		t.Errorf("BackendURL = %q, want env override", cfg.BackendURL)
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("OVERSETT_PORT", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Error("Load with invalid OVERSETT_PORT returned nil error")
	}
}
