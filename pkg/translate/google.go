package translate

import (
	"context"
	"fmt"

	"github.com/bregydoc/gtranslate"
	"github.com/sirupsen/logrus"
)

// GoogleTranslateClient implements the Translator interface using the public
// Google Translate web endpoint via the gtranslate package. Useful as a
// fallback engine when no LibreTranslate server is available; no API key is
// required.
type GoogleTranslateClient struct {
	codes  []string
	logger *logrus.Logger
}

// NewGoogleTranslateClient creates a new Google Translate client. codes is the
// set of language codes the client reports as supported.
func NewGoogleTranslateClient(codes []string, logger *logrus.Logger) *GoogleTranslateClient {
	if logger == nil {
		logger = logrus.New()
	}

	return &GoogleTranslateClient{
		codes:  codes,
		logger: logger,
	}
}

// Translate translates text from source language to target language.
// gtranslate does not accept a context; cancellation is checked before and
// after the call, so an abandoned request is never returned to the caller.
func (c *GoogleTranslateClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.logger.WithFields(logrus.Fields{
		"source_lang": sourceLang,
		"target_lang": targetLang,
		"text_length": len(text),
	}).Debug("Translating text with Google Translate")

	translated, err := gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{
		From: sourceLang,
		To:   targetLang,
	})
	if err != nil {
		c.logger.WithError(err).Error("Google Translate request failed")
		return "", fmt.Errorf("request failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.logger.WithFields(logrus.Fields{
		"source_lang": sourceLang,
		"target_lang": targetLang,
	}).Info("Translation completed successfully")

	return translated, nil
}

// CheckHealth verifies the engine can reach the Google endpoint by issuing a
// minimal probe translation.
func (c *GoogleTranslateClient) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := gtranslate.TranslateWithParams("ok", gtranslate.TranslationParams{
		From: "en",
		To:   "es",
	}); err != nil {
		c.logger.WithError(err).Error("Google Translate health check failed")
		return fmt.Errorf("health check failed: %w", err)
	}

	c.logger.Debug("Google Translate health check passed")
	return nil
}

// SupportedLanguages returns the configured language code list. The public
// endpoint has no discovery API, so the list is whatever the caller wired in.
func (c *GoogleTranslateClient) SupportedLanguages(ctx context.Context) ([]string, error) {
	codes := make([]string, len(c.codes))
	copy(codes, c.codes)
	return codes, nil
}
