// Package logger provides structured logging utilities built on Go's standard
// slog package: a small factory with environment-specific configurations and
// a set of pre-built attributes for common logging scenarios.
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/WebeWizard/flashcard-server/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("flashcards"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("flashcards"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Environment Configuration
//
// NewFromConfig builds a logger from LOG_LEVEL and LOG_FORMAT:
//
//	cfg := config.MustLoad[logger.Config]()
//	log := logger.NewFromConfig(cfg, logger.WithAttr(slog.String("app", "flashcards")))
//
// # Attribute Helpers
//
// Attribute helpers are nil-safe: logger.Error(nil) produces an empty Attr
// that slog drops, so call sites never need nil checks:
//
//	log.Info("request completed",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(status),
//		logger.Duration(elapsed),
//		logger.Error(err),
//	)
package logger
