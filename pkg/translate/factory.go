package translate

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// EngineType represents the type of translation engine to use.
type EngineType string

const (
	// EngineLibreTranslate uses LibreTranslate as the backend.
	EngineLibreTranslate EngineType = "libretranslate"
	// EngineGoogle uses the public Google Translate endpoint as the backend.
	EngineGoogle EngineType = "google"
)

// Config holds configuration for creating a Translator instance.
type Config struct {
	// Engine specifies which translation engine to use.
	Engine EngineType
	// BaseURL is the base URL for the translation engine API.
	// Defaults to http://localhost:5000 if not specified. Ignored by the
	// google engine.
	BaseURL string
	// Timeout bounds each outbound request. Zero means the engine default.
	Timeout time.Duration
	// Languages is the language code list reported by engines without a
	// discovery endpoint (google).
	Languages []string
	// Logger is the logger instance to use. If nil, a default logger is created.
	Logger *logrus.Logger
}

// NewTranslator creates a new Translator instance based on the configuration.
// This factory function allows switching between different MT backends
// without changing the request handler.
func NewTranslator(cfg Config) (Translator, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	cfg.Logger.WithFields(logrus.Fields{
		"engine":   cfg.Engine,
		"base_url": cfg.BaseURL,
	}).Info("Creating translator instance")

	switch cfg.Engine {
	case EngineLibreTranslate:
		return NewLibreTranslateClient(cfg.BaseURL, cfg.Timeout, cfg.Logger), nil
	case EngineGoogle:
		return NewGoogleTranslateClient(cfg.Languages, cfg.Logger), nil
	default:
		cfg.Logger.WithFields(logrus.Fields{
			"engine": cfg.Engine,
		}).Error("Unknown translation engine")
		return nil, fmt.Errorf("unknown translation engine: %s", cfg.Engine)
	}
}

// ParseEngineType parses a string into an EngineType.
// Returns an error if the string is not a valid engine type.
func ParseEngineType(s string) (EngineType, error) {
	switch s {
	case "libretranslate", "LibreTranslate", "LIBRETRANSLATE":
		return EngineLibreTranslate, nil
	case "google", "Google", "GOOGLE":
		return EngineGoogle, nil
	default:
		return "", fmt.Errorf("unknown engine type: %s (supported: libretranslate, google)", s)
	}
}
