package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oversett/oversett/pkg/language"
	"github.com/oversett/oversett/pkg/translate"
)

// Request is one translation request: the text to translate plus source and
// target language codes. Both codes must be present in the language registry.
type Request struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Result is a successful translation.
type Result struct {
	TranslatedText string
}

// TranslationService validates translation requests, forwards them to the
// configured backend and normalizes every failure into a typed service.Error.
// It holds no mutable state, so concurrent Translate calls need no
// coordination.
type TranslationService struct {
	// Translator is the translation backend (LibreTranslate or Google).
	Translator translate.Translator

	// Registry is the fixed table of supported languages.
	Registry *language.Registry

	// Logger for service operations.
	Logger *logrus.Logger

	engine string
}

// NewTranslationService creates a new TranslationService instance.
func NewTranslationService(translator translate.Translator, registry *language.Registry, logger *logrus.Logger) *TranslationService {
	if logger == nil {
		logger = logrus.New()
	}

	return &TranslationService{
		Translator: translator,
		Registry:   registry,
		Logger:     logger,
		engine:     engineLabel(translator),
	}
}

// engineLabel names the backend for metrics.
func engineLabel(t translate.Translator) string {
	switch t.(type) {
	case *translate.LibreTranslateClient:
		return string(translate.EngineLibreTranslate)
	case *translate.GoogleTranslateClient:
		return string(translate.EngineGoogle)
	default:
		return "unknown"
	}
}

// Translate validates req, performs exactly one backend call and returns the
// translated text. Failures are always a *Error with one of the three kinds;
// no other error type crosses this boundary. Source and target are validated
// independently — requesting the same language for both is allowed and
// forwarded unchanged.
func (s *TranslationService) Translate(ctx context.Context, req Request) (*Result, error) {
	s.Logger.WithFields(logrus.Fields{
		"source_lang": req.SourceLang,
		"target_lang": req.TargetLang,
		"text_length": len(req.Text),
	}).Info("Translate request received")

	startTime := time.Now()

	fail := func(err *Error) (*Result, error) {
		translate.RecordTranslation(s.engine, string(err.Kind), time.Since(startTime), len(req.Text), 0)
		return nil, err
	}

	if strings.TrimSpace(req.Text) == "" {
		s.Logger.Error("Translate: text is required")
		return fail(invalidInput("text is required"))
	}
	if !s.Registry.Supported(req.SourceLang) {
		s.Logger.WithFields(logrus.Fields{
			"source_lang": req.SourceLang,
		}).Error("Translate: unsupported source language")
		return fail(invalidInput(fmt.Sprintf("unsupported source language: %s", req.SourceLang)))
	}
	if !s.Registry.Supported(req.TargetLang) {
		s.Logger.WithFields(logrus.Fields{
			"target_lang": req.TargetLang,
		}).Error("Translate: unsupported target language")
		return fail(invalidInput(fmt.Sprintf("unsupported target language: %s", req.TargetLang)))
	}

	translated, err := s.Translator.Translate(ctx, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"source_lang": req.SourceLang,
			"target_lang": req.TargetLang,
		}).Error("Backend translation failed")
		return fail(classifyBackendError(err))
	}

	duration := time.Since(startTime)
	translate.RecordTranslation(s.engine, "success", duration, len(req.Text), len(translated))

	s.Logger.WithFields(logrus.Fields{
		"source_lang": req.SourceLang,
		"target_lang": req.TargetLang,
		"duration_ms": duration.Milliseconds(),
	}).Info("Translation completed successfully")

	return &Result{TranslatedText: translated}, nil
}

// classifyBackendError maps a backend failure to one of the typed kinds:
// a non-success upstream status becomes an upstream error carrying the raw
// response body, a response without translatedText becomes an internal error
// with a fixed message, and anything else (network failure, malformed body)
// becomes a generic internal error.
func classifyBackendError(err error) *Error {
	var statusErr *translate.StatusError
	if errors.As(err, &statusErr) {
		return upstreamError(fmt.Sprintf("translation service error: %s", statusErr.Body), err)
	}
	if errors.As(err, &translate.ErrMissingTranslation{}) {
		return internalError("unexpected API response format", err)
	}
	return internalError(fmt.Sprintf("internal server error: %v", err), err)
}

// CheckBackend reports whether the backend is reachable and ready.
func (s *TranslationService) CheckBackend(ctx context.Context) error {
	if s.Translator == nil {
		return internalError("translator not configured", nil)
	}
	return s.Translator.CheckHealth(ctx)
}
