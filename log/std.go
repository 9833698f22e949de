package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
)

// StdLogger is the Go built-in (log) implementation of the Logger interface.
//
// All string message and field values are sanitized to prevent log injection
// (CWE-117).
type StdLogger struct {
	// Level is the verbosity ceiling; entries above it are suppressed.
	Level Level

	out *stdlog.Logger
}

// Compile-time assertion: *StdLogger implements Logger.
var _ Logger = (*StdLogger)(nil)

// NewStdLogger creates a StdLogger writing to w at the given verbosity.
func NewStdLogger(w io.Writer, level Level) *StdLogger {
	return &StdLogger{
		Level: level,
		out:   stdlog.New(w, "", stdlog.LstdFlags),
	}
}

// NewStderr creates a StdLogger writing to standard error at LevelInfo.
func NewStderr() *StdLogger {
	return NewStdLogger(os.Stderr, LevelInfo)
}

// Enabled checks if the given level is enabled.
func (l *StdLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Log writes a single sanitized line for the event.
func (l *StdLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	var sb strings.Builder

	sb.WriteString(strings.ToUpper(level.String()))
	sb.WriteString(": ")
	sb.WriteString(sanitizeLogString(msg))

	for _, field := range fields {
		fmt.Fprintf(&sb, " %s=%v", sanitizeLogString(field.Key), sanitizeFieldValue(field.Value))
	}

	l.out.Print(sb.String())
}
