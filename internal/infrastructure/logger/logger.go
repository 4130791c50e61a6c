package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Initialize builds the process-wide slog logger and installs it as the
// default. output is "stdout", "stderr" or a file path opened for append.
func Initialize(level, format, output string) (*slog.Logger, io.Closer, error) {
	w, closer, err := openOutput(output)
	if err != nil {
		return nil, nil, err
	}

	l := New(w, level, format)
	slog.SetDefault(l)
	return l, closer, nil
}

// New returns a logger writing to w without touching the default logger.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "", "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output %s: %w", output, err)
	}
	return f, f, nil
}

// WithOperation returns a logger tagged with a usecase operation name.
func WithOperation(l *slog.Logger, operation string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("operation", operation)
}
