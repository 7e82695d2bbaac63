// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that renders
// colorized, redacted, single-line log output according to the logging
// configuration.
//
// Every emitted record passes through one processor ([recordWriter]) that
// decides per-level visibility, scrubs secrets and PII, and assembles the
// final line. The processor is a pure function of the record plus read-only
// configuration, so emission is safe from many goroutines without extra
// locking.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/MKhiriev/appkit/internal/config"
)

// Setup initialization guard. Many goroutines may race on the first call;
// exactly one performs handler installation, the rest observe the
// already-initialized state (double-checked locking).
var (
	setupMu     sync.Mutex
	initialized atomic.Bool
	global      *Logger

	// installCount tracks how many times a handler was actually installed.
	installCount atomic.Int64
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	// SessionID is the identifier attached to every record of this process.
	SessionID string
}

// Option customizes [Setup].
type Option func(*options)

type options struct {
	out       io.Writer
	sessionID string
	noColor   bool
	overrides map[string]bool
}

// WithOutput redirects log output, e.g. to a buffer in tests.
// Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithSessionID fixes the session identifier instead of generating one.
func WithSessionID(id string) Option {
	return func(o *options) { o.sessionID = id }
}

// WithNoColor disables ANSI color codes in the rendered output.
func WithNoColor() Option {
	return func(o *options) { o.noColor = true }
}

// WithLevelOverride forces visibility of a single level at this call site,
// taking priority over the static Levels configuration.
func WithLevelOverride(level string, visible bool) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]bool)
		}
		o.overrides[level] = visible
	}
}

// Setup installs the process-wide logging handler and returns the resulting
// *Logger.
//
// Setup is idempotent and safe under a concurrent first-call race: exactly
// one caller performs the installation even if many goroutines call Setup
// simultaneously; all others observe the already-initialized logger and
// return without side effects. Options passed by late callers are ignored.
//
// Returns an error only when the redaction configuration cannot be compiled.
func Setup(cfg *config.Logging, opts ...Option) (*Logger, error) {
	if initialized.Load() {
		return global, nil
	}

	setupMu.Lock()
	defer setupMu.Unlock()

	if initialized.Load() {
		return global, nil
	}

	o := &options{out: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	scrubber, err := NewScrubber(cfg.Redaction)
	if err != nil {
		return nil, err
	}

	if o.sessionID == "" {
		o.sessionID = uuid.NewString()[:8]
	}

	zerolog.CallerMarshalFunc = marshalCaller

	w := &recordWriter{
		out:       o.out,
		format:    cfg.Format,
		levels:    cfg.Levels,
		overrides: o.overrides,
		scrubber:  scrubber,
		noColor:   o.noColor,
	}

	l := zerolog.New(w).With().
		Timestamp().
		Str(sessionIDField, o.sessionID).
		Str(replicaIDField, replicaID()).
		Caller().
		Logger()

	global = &Logger{Logger: l, SessionID: o.sessionID}
	zlog.Logger = l
	installCount.Add(1)
	initialized.Store(true)

	return global, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger(), SessionID: l.SessionID}
}

// WithContext returns a copy of ctx with the receiver's zerolog.Logger
// attached, for retrieval via [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *zlog.Ctx(ctx)}
}

// replicaEnvVar distinguishes concurrently running process instances in
// logs (set by the deployment platform).
const replicaEnvVar = "REPLICA_ID"

// replicaID derives a short replica token from the environment. The last
// four hex characters of the raw id are folded into a small number so each
// replica gets a stable, readable tag. Falls back to the raw value when the
// id is not hex, and to "local" when unset.
func replicaID() string {
	raw := os.Getenv(replicaEnvVar)
	if raw == "" {
		return "local"
	}

	tail := raw
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}

	n, err := strconv.ParseInt(tail, 16, 64)
	if err != nil {
		return raw
	}

	return "r" + strconv.FormatInt(n%100, 10)
}

// marshalCaller encodes file, function, and line into one caller field.
// The record writer splits it back apart and renders the parts enabled by
// the location configuration.
func marshalCaller(pc uintptr, file string, line int) string {
	fn := "?"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
		if idx := lastSlash(fn); idx >= 0 {
			fn = fn[idx+1:]
		}
	}

	return filepath.Base(file) + callerSep + fn + callerSep + strconv.Itoa(line)
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}
