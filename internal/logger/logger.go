package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the process-default logger. Diagnostics from the
// normalizer pipeline flow through this logger unless a caller injects
// its own.
func Setup(level string, color bool) {
	slog.SetDefault(New(os.Stderr, level, color))
}

// New builds a tint-backed logger writing to w.
func New(w io.Writer, level string, color bool) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      parseLevel(level),
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
