package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oversett/oversett/pkg/config"
	"github.com/oversett/oversett/pkg/language"
	"github.com/oversett/oversett/pkg/server"
	"github.com/oversett/oversett/pkg/service"
	"github.com/oversett/oversett/pkg/translate"
	"github.com/oversett/oversett/pkg/web"
)

var (
	// Server configuration flags. Unset flags defer to the config file and
	// OVERSETT_* environment variables.
	configPath = flag.String("config", "", "Path to YAML config file (optional)")
	port       = flag.Int("port", 0, "HTTP listen port")

	// Translation engine configuration
	mtEngine = flag.String("mt-engine", "", "Translation engine: libretranslate or google")
	mtURL    = flag.String("mt-url", "", "Base URL for translation engine API")
	timeout  = flag.Int("timeout", 0, "Outbound request timeout in seconds")

	// Logging configuration
	logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	// Assemble configuration: defaults <- file <- env <- flags
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *mtEngine != "" {
		cfg.Engine = *mtEngine
	}
	if *mtURL != "" {
		cfg.BackendURL = *mtURL
	}
	if *timeout != 0 {
		cfg.TimeoutSeconds = *timeout
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// Set log level
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Invalid log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.WithFields(logrus.Fields{
		"port":      cfg.Port,
		"mt_engine": cfg.Engine,
		"mt_url":    cfg.BackendURL,
		"timeout_s": cfg.TimeoutSeconds,
		"log_level": level.String(),
	}).Info("Starting Oversett HTTP server")

	// Build the language registry. Panics only on a broken static table.
	registry := language.NewRegistry()

	// Parse translation engine type
	engineType, err := translate.ParseEngineType(cfg.Engine)
	if err != nil {
		logger.WithError(err).Fatal("Failed to parse translation engine type")
	}

	codes := make([]string, 0, len(registry.Languages()))
	for _, l := range registry.Languages() {
		codes = append(codes, l.Code)
	}

	// Create translator instance
	translator, err := translate.NewTranslator(translate.Config{
		Engine:    engineType,
		BaseURL:   cfg.BackendURL,
		Timeout:   cfg.Timeout(),
		Languages: codes,
		Logger:    logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create translator")
	}

	// Verify translator is healthy
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Checking translator health...")
	if err := translator.CheckHealth(ctx); err != nil {
		logger.WithError(err).Warn("Translator health check failed, but continuing anyway")
		logger.Warn("Server will start, but translation requests may fail until translator is ready")
	} else {
		logger.Info("Translator health check passed")
	}

	// Wire the service, UI and HTTP server
	translationService := service.NewTranslationService(translator, registry, logger)
	ui := web.NewUI(translationService, registry, logger)
	httpServer := server.NewHTTPServer(translationService, registry, ui, logger, cfg.Port)

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.WithError(err).Fatal("Server error")
	case sig := <-sigChan:
		logger.WithFields(logrus.Fields{
			"signal": sig.String(),
		}).Info("Received signal, shutting down gracefully...")

		// Graceful shutdown with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := httpServer.Stop(shutdownCtx); err != nil {
			logger.WithError(err).Warn("Graceful shutdown failed")
		} else {
			logger.Info("Server stopped gracefully")
		}
	}
}
