package translate

import (
	"context"
	"fmt"
)

// Translator defines the interface for machine translation backends.
// This abstraction allows swapping the MT engine (LibreTranslate, Google)
// without changing the request handler.
type Translator interface {
	// Translate translates text from source language to target language.
	// sourceLang and targetLang should be in ISO 639-1 format (e.g., "en", "fr").
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// CheckHealth verifies that the translation backend is ready and operational.
	CheckHealth(ctx context.Context) error

	// SupportedLanguages returns a list of language codes supported by this backend.
	// Returns ISO 639-1 codes (e.g., ["en", "fr", "es"]).
	SupportedLanguages(ctx context.Context) ([]string, error)
}

// StatusError is returned when the backend was reachable but answered with a
// non-success HTTP status. The raw response body is preserved for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// ErrMissingTranslation indicates a success response whose body did not carry
// a translatedText field.
type ErrMissingTranslation struct{}

func (ErrMissingTranslation) Error() string {
	return "unexpected API response format: missing translatedText"
}
