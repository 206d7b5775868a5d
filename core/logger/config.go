package logger

import (
	"log/slog"
	"strings"
)

// Config holds logger configuration with environment variable support.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromConfig creates a logger from configuration. Unknown level or format
// values fall back to info and JSON rather than failing startup.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := make([]Option, 0, len(opts)+2)
	configOpts = append(configOpts, WithLevel(parseLevel(cfg.Level)))

	if strings.EqualFold(cfg.Format, "text") {
		configOpts = append(configOpts, WithTextFormatter())
	} else {
		configOpts = append(configOpts, WithJSONFormatter())
	}

	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
