// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/docbuild/internal/core/ports"
	"go.trai.ch/docbuild/internal/ui/style"
)

// messager is implemented by zerr errors and reports the message without its causes.
type messager interface {
	Message() string
}

// annotated is implemented by zerr errors carrying key/value metadata.
type annotated interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing human-readable lines to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, slog.LevelInfo)),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination, keeping the current format.
// A nil writer means os.Stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

// handler must be called with mu held.
func (l *Logger) handler() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	if l.jsonMode {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return NewPrettyHandler(w, slog.LevelInfo)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its chain of causes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries flattens an error chain into one message per link.
// Joined errors contribute each of their branches in order.
func collectErrorEntries(err error) []string {
	var entries []string
	for current := err; current != nil; {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, branch := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(branch)...)
			}
			return entries
		}

		m, ok := current.(messager)
		if !ok {
			return append(entries, current.Error())
		}
		if msg := m.Message(); msg != "" {
			entries = append(entries, msg+formatMetadata(current))
		}
		current = errors.Unwrap(current)
	}
	return entries
}

// formatMetadata renders the metadata attached to err as " (k=v, ...)" with
// sorted keys, or "" when there is none.
func formatMetadata(err error) string {
	a, ok := err.(annotated)
	if !ok {
		return ""
	}
	meta := a.Metadata()
	if len(meta) == 0 {
		return ""
	}

	keys := slices.Sorted(maps.Keys(meta))
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, meta[key]))
	}
	return " (" + strings.Join(pairs, ", ") + ")"
}

// formatErrorEntries renders the first entry as the error and the rest as causes.
func formatErrorEntries(entries []string) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string
	for i, entry := range entries {
		parts := strings.Split(entry, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, cont := range parts[1:] {
				lines = append(lines, "       "+cont)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+parts[0])
		for _, cont := range parts[1:] {
			lines = append(lines, "      "+cont)
		}
	}
	return strings.Join(lines, "\n")
}
