// Package web is the browser-facing adapter over the translation service. It
// renders a single form page and submits translations through the same
// in-process code path the JSON API uses.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/oversett/oversett/pkg/language"
	"github.com/oversett/oversett/pkg/service"
)

//go:embed templates/index.html
var templateFS embed.FS

const (
	defaultSourceName = "English"
	defaultTargetName = "Spanish"
)

// UI serves the translation form and maps display names back to language
// codes before invoking the service.
type UI struct {
	service  *service.TranslationService
	registry *language.Registry
	logger   *logrus.Logger
	tmpl     *template.Template
}

// NewUI creates the UI adapter. The template is parsed once at construction.
func NewUI(svc *service.TranslationService, registry *language.Registry, logger *logrus.Logger) *UI {
	if logger == nil {
		logger = logrus.New()
	}

	return &UI{
		service:  svc,
		registry: registry,
		logger:   logger,
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

// Submit resolves both display names to codes, runs the translation and
// returns the translated text. An unrecognized display name is reported as an
// error rather than silently defaulted: the form only offers registry-listed
// names, so anything else is a wiring bug.
func (u *UI) Submit(ctx context.Context, text, sourceName, targetName string) (string, error) {
	sourceCode, ok := u.registry.CodeOf(sourceName)
	if !ok {
		return "", fmt.Errorf("unknown source language name: %s", sourceName)
	}
	targetCode, ok := u.registry.CodeOf(targetName)
	if !ok {
		return "", fmt.Errorf("unknown target language name: %s", targetName)
	}

	res, err := u.service.Translate(ctx, service.Request{
		Text:       text,
		SourceLang: sourceCode,
		TargetLang: targetCode,
	})
	if err != nil {
		return "", err
	}
	return res.TranslatedText, nil
}

// pageData feeds the form template.
type pageData struct {
	Languages []language.Language
	Text      string
	Source    string
	Target    string
	Result    string
	Error     string
}

// ServeHTTP renders the form on GET and processes a submission on POST. The
// page re-renders with either the translated text or the failure message.
func (u *UI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Languages: u.registry.Languages(),
		Source:    defaultSourceName,
		Target:    defaultTargetName,
	}

	switch r.Method {
	case http.MethodGet:
		// Fall through to render.
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		data.Text = r.PostFormValue("text")
		data.Source = r.PostFormValue("source")
		data.Target = r.PostFormValue("target")

		result, err := u.Submit(r.Context(), data.Text, data.Source, data.Target)
		if err != nil {
			u.logger.WithError(err).Warn("UI translation failed")
			data.Error = err.Error()
		} else {
			data.Result = result
		}
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := u.tmpl.Execute(w, data); err != nil {
		u.logger.WithError(err).Error("Failed to render UI template")
	}
}
