// Package logging sets up the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Level is the minimum severity that gets written.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SlogLevel maps the level onto log/slog.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel reads a level name, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Init builds a text logger writing to output and installs it as slog's default.
// Call once at startup.
func Init(level Level, output io.Writer) *slog.Logger {
	logger := New(level, output)
	slog.SetDefault(logger)
	return logger
}

// New builds a text logger without touching the default.
func New(level Level, output io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

// For returns a logger tagged with a subsystem name.
// A nil logger falls back to slog's default.
func For(logger *slog.Logger, subsystem string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("subsystem", subsystem)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
