package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"webtoonhub/internal/config"
)

// New builds the process logger from LOG_LEVEL / LOG_FORMAT and installs it as slog's default.
func New(cfg *config.Config) *slog.Logger {
	logger := slog.New(newHandler(os.Stdout, cfg.LogFormat, cfg.LogLevel))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, format, level string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
