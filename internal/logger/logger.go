// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the server, the workers and the client.
//
// Components receive a *Logger at construction time. Request handlers pick up
// the request-scoped logger (carrying the trace id) with FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role, a timestamp and the calling function under "func". The global level
// is reset to debug; narrow it with SetLevel.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger builds a human-readable logger for the command-line client.
// Entries go to os.Stderr so they never mix with command output.
func NewClientLogger(role string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel sets the global zerolog level from its textual name
// ("trace", "debug", "info", "warn", "error"). An empty name keeps the
// current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields added to the copy stay off the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx by zerolog's WithContext.
// Without one it returns a disabled logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
