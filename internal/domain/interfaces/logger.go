// Package interfaces defines core domain contracts.
//
//nolint:revive // Package name 'interfaces' is intentional for domain layer
package interfaces

import (
	"fmt"
	"io"
	"strings"
)

// Logger defines the interface for structured logging
type Logger interface {
	// Debug logs debug-level messages
	Debug(msg string, fields ...Field)

	// Info logs informational messages
	Info(msg string, fields ...Field)

	// Warn logs warning messages
	Warn(msg string, fields ...Field)

	// Error logs error messages
	Error(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a new Field (convenience function)
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger is a logger that does nothing (useful for tests)
type NoOpLogger struct{}

// Debug does nothing (no-op implementation)
func (n *NoOpLogger) Debug(_ string, _ ...Field) {}

// Info does nothing (no-op implementation)
func (n *NoOpLogger) Info(_ string, _ ...Field) {}

// Warn does nothing (no-op implementation)
func (n *NoOpLogger) Warn(_ string, _ ...Field) {}

// Error does nothing (no-op implementation)
func (n *NoOpLogger) Error(_ string, _ ...Field) {}

// Level is a logging severity threshold
type Level int

// Severity levels, lowest first
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level. Unknown values fall back to
// info so a typo in configuration never silences errors.
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

// WriterLogger logs to an io.Writer, dropping messages below MinLevel
type WriterLogger struct {
	Out      io.Writer
	MinLevel Level
}

// NewWriterLogger creates a leveled logger writing to out
func NewWriterLogger(out io.Writer, minLevel Level) *WriterLogger {
	return &WriterLogger{Out: out, MinLevel: minLevel}
}

// Debug logs debug-level messages
func (w *WriterLogger) Debug(msg string, fields ...Field) {
	w.log(LevelDebug, "DEBUG", msg, fields)
}

// Info logs informational messages
func (w *WriterLogger) Info(msg string, fields ...Field) {
	w.log(LevelInfo, "INFO", msg, fields)
}

// Warn logs warning messages
func (w *WriterLogger) Warn(msg string, fields ...Field) {
	w.log(LevelWarn, "WARN", msg, fields)
}

func (w *WriterLogger) Error(msg string, fields ...Field) {
	w.log(LevelError, "ERROR", msg, fields)
}

func (w *WriterLogger) log(level Level, tag, msg string, fields []Field) {
	if level < w.MinLevel {
		return
	}

	var b strings.Builder
	b.WriteString(tag)
	b.WriteString(": ")
	b.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	b.WriteByte('\n')

	//nolint:errcheck // Logging is best effort
	io.WriteString(w.Out, b.String())
}
