// Package config assembles server configuration from defaults, an optional
// YAML file and OVERSETT_* environment variables, in that order. Flags are
// applied last by the caller. The resulting value is immutable and passed
// explicitly to whatever needs it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all server settings.
type Config struct {
	// Port is the HTTP listen port.
	Port int `yaml:"port"`
	// Engine selects the translation backend: libretranslate or google.
	Engine string `yaml:"engine"`
	// BackendURL is the base URL of the translation backend.
	BackendURL string `yaml:"backend_url"`
	// TimeoutSeconds bounds each outbound backend request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// LogLevel is a logrus level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Port:           8080,
		Engine:         "libretranslate",
		BackendURL:     "http://localhost:5000",
		TimeoutSeconds: 30,
		LogLevel:       "info",
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped when
// path is empty; missing file is an error), then environment variables. A .env
// file in the working directory is honored if present.
func Load(path string) (Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overrides fields from OVERSETT_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("OVERSETT_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse OVERSETT_PORT: %w", err)
		}
		c.Port = port
	}
	if v := os.Getenv("OVERSETT_ENGINE"); v != "" {
		c.Engine = v
	}
	if v := os.Getenv("OVERSETT_BACKEND_URL"); v != "" {
		c.BackendURL = v
	}
	if v := os.Getenv("OVERSETT_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse OVERSETT_TIMEOUT_SECONDS: %w", err)
		}
		c.TimeoutSeconds = secs
	}
	if v := os.Getenv("OVERSETT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Timeout returns the outbound request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
