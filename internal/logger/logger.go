// Package logger provides logging utilities for the crawler tools.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger provides structured logging plus plain progress lines for
// verbose runs.
type Logger struct {
	internal *slog.Logger
	level    *slog.LevelVar
	progress bool
}

// NewLogger creates a new logger with the specified level. When
// progress is true, Progressf writes plain lines to stdout.
func NewLogger(level string, progress bool) *Logger {
	lvl := new(slog.LevelVar)

	switch strings.ToLower(level) {
	case "debug":
		lvl.Set(slog.LevelDebug)
	case "info":
		lvl.Set(slog.LevelInfo)
	case "warn":
		lvl.Set(slog.LevelWarn)
	case "error":
		lvl.Set(slog.LevelError)
	default:
		lvl.Set(slog.LevelInfo)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})

	return &Logger{
		internal: slog.New(handler),
		level:    lvl,
		progress: progress,
	}
}

// Progressf prints a plain progress line when progress output is enabled.
func (l *Logger) Progressf(format string, args ...any) {
	if l.progress {
		fmt.Printf(format+"\n", args...)
	}
}

// Info logs an info level message.
func (l *Logger) Info(msg string, args ...any) {
	l.internal.Info(msg, args...)
}

// Error logs an error level message.
func (l *Logger) Error(msg string, args ...any) {
	l.internal.Error(msg, args...)
}

// Debug logs a debug level message.
func (l *Logger) Debug(msg string, args ...any) {
	l.internal.Debug(msg, args...)
}

// Warn logs a warning level message.
func (l *Logger) Warn(msg string, args ...any) {
	l.internal.Warn(msg, args...)
}

// With creates a child logger with the given attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		internal: l.internal.With(args...),
		level:    l.level,
		progress: l.progress,
	}
}
