// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-pass-gen application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Standard output belongs to the user, so the CLI logger writes JSON lines to
// a file instead.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLogFileName is the log file created next to the executable when no
// explicit log path is configured.
const DefaultLogFileName = "logs"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing to w.
//
// The logger is configured with:
//   - the given level (unknown levels fall back to Info);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
func NewLogger(role string, w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger constructs the CLI logger. Entries are appended to path; an
// empty path means a "logs" file next to the executable. If the file cannot be
// opened the logger falls back to stderr.
//
// The returned close function releases the log file and is always non-nil.
func NewClientLogger(role, path, level string) (*Logger, func() error) {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), DefaultLogFileName)
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return NewLogger(role, os.Stderr, level), func() error { return nil }
	}

	return NewLogger(role, logFile, level), logFile.Close
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithRunID returns a child logger that stamps every entry with the given
// invocation identifier.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{l.With().Str("run_id", runID).Logger()}
}

// WithContext attaches the logger to ctx so that [FromContext] can recover it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
