package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/oversett/oversett/pkg/language"
	"github.com/oversett/oversett/pkg/service"
	"github.com/oversett/oversett/pkg/web"
)

// HTTPServer exposes the translation service over HTTP: the JSON API, the web
// UI, health and Prometheus metrics.
type HTTPServer struct {
	service  *service.TranslationService
	registry *language.Registry
	ui       *web.UI
	logger   *logrus.Logger
	port     int

	srv *http.Server
}

// NewHTTPServer creates a new HTTP server over the translation service.
func NewHTTPServer(svc *service.TranslationService, registry *language.Registry, ui *web.UI, logger *logrus.Logger, port int) *HTTPServer {
	return &HTTPServer{
		service:  svc,
		registry: registry,
		ui:       ui,
		logger:   logger,
		port:     port,
	}
}

// translateRequest is the JSON body of POST /translate.
type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// translateResponse is the success body of POST /translate.
type translateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// errorResponse carries a failure message in a detail field.
type errorResponse struct {
	Detail string `json:"detail"`
}

// Handler builds the full request handling chain.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/translate", s.handleTranslate)
	mux.HandleFunc("/languages", s.handleLanguages)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	if s.ui != nil {
		mux.Handle("/", s.ui)
	}

	return cors.Default().Handler(s.withRequestID(mux))
}

// Start starts the HTTP server and blocks until it stops.
func (s *HTTPServer) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.WithFields(logrus.Fields{
		"port": s.port,
	}).Info("Starting HTTP server")

	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// withRequestID tags every request with a UUID, echoes it in X-Request-ID and
// writes one structured access log line per request.
func (s *HTTPServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"remote_addr": r.RemoteAddr,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("Request handled")
	})
}

// handleTranslate handles POST /translate. Validation and backend failures map
// to 400 or 500 with a detail message; nothing else leaks through.
func (s *HTTPServer) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.service.Translate(r.Context(), service.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		s.writeError(w, statusForKind(service.KindOf(err)), err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, translateResponse{TranslatedText: res.TranslatedText})
}

// statusForKind maps the three failure kinds to HTTP status codes.
func statusForKind(kind service.Kind) int {
	if kind == service.KindInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// handleLanguages returns the supported language table in presentation order.
func (s *HTTPServer) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, s.registry.Languages())
}

// handleHealth provides a health check endpoint including backend reachability.
func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	backend := "ok"
	if err := s.service.CheckBackend(ctx); err != nil {
		backend = err.Error()
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"backend": backend,
	})
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorResponse{Detail: detail})
}
