// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/appkit/internal/config"
)

// Field names of the tagged record. Message/level/time/caller/error names
// follow zerolog's defaults.
const (
	sessionIDField = "session_id"
	replicaIDField = "replica_id"

	// callerSep joins file, function, and line inside the caller field
	// (see marshalCaller).
	callerSep = "|"
)

// ANSI color codes used for line rendering.
const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiYellow  = "\x1b[33m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
	ansiWhite   = "\x1b[37m"
)

// sessionPalette holds the colors a session id may be rendered in. The
// color is picked by a deterministic hash of the id so every process run
// keeps one stable color.
var sessionPalette = []string{ansiGreen, ansiYellow, ansiBlue, ansiMagenta, ansiCyan, ansiRed}

// recordWriter is the log record processor. zerolog hands it every emitted
// event as one serialized JSON object; WriteLevel decides visibility,
// scrubs the record, and renders the final colorized line.
//
// recordWriter holds only read-only state after Setup, so concurrent
// WriteLevel calls need no locking of their own.
type recordWriter struct {
	out       io.Writer
	format    config.Format
	levels    config.Levels
	overrides map[string]bool
	scrubber  *Scrubber
	noColor   bool
}

var _ zerolog.LevelWriter = (*recordWriter)(nil)

func (w *recordWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel processes a single record. A record that cannot be parsed is
// passed through unmodified rather than dropped or errored: losing
// redaction on a malformed record is preferable to losing the record.
func (w *recordWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	var record map[string]any
	if err := json.Unmarshal(p, &record); err != nil {
		_, werr := w.out.Write(p)
		return len(p), werr
	}

	levelName := levelString(level, record)
	if !levelVisible(levelName, w.overrides, w.levels) {
		return len(p), nil
	}

	line := w.render(levelName, record)
	if _, err := io.WriteString(w.out, line); err != nil {
		return len(p), err
	}

	return len(p), nil
}

// render assembles the output line:
//
//	LEVEL | time | session | replica | file:func:line | message key=value
func (w *recordWriter) render(levelName string, record map[string]any) string {
	levelColor := levelColorOf(levelName)
	parts := []string{w.colorize(fmt.Sprintf("%-6s", strings.ToUpper(levelName)), levelColor)}

	if w.format.ShowTime {
		if t, ok := record[zerolog.TimestampFieldName].(string); ok {
			parts = append(parts, renderTime(t))
		}
	}

	if w.format.ShowSessionID {
		if sid, ok := record[sessionIDField].(string); ok {
			parts = append(parts, w.colorize(sid, sessionColor(sid)))
		}
	}

	if rid, ok := record[replicaIDField].(string); ok {
		parts = append(parts, w.colorize(rid, ansiMagenta))
	}

	if locationVisible(levelName, w.format.Location) {
		if caller, ok := record[zerolog.CallerFieldName].(string); ok {
			if loc := w.renderLocation(caller); loc != "" {
				parts = append(parts, w.colorize(loc, ansiCyan))
			}
		}
	}

	msg, _ := record[zerolog.MessageFieldName].(string)
	msg = w.scrubber.Scrub(msg)
	if extra := w.renderExtra(record); extra != "" {
		msg += " " + extra
	}
	parts = append(parts, w.colorize(msg, levelColor))

	line := strings.Join(parts, " | ")

	if errVal, ok := record[zerolog.ErrorFieldName].(string); ok {
		line += "\n" + w.colorize("error: "+w.scrubber.Scrub(errVal), ansiRed)
	}
	if stack, ok := record[zerolog.ErrorStackFieldName].(string); ok {
		line += "\n" + w.scrubber.Scrub(stack)
	}

	return line + "\n"
}

// renderLocation splits the composite caller field back into file,
// function, and line and keeps the parts enabled by the configuration.
func (w *recordWriter) renderLocation(caller string) string {
	pieces := strings.SplitN(caller, callerSep, 3)
	if len(pieces) != 3 {
		return caller
	}

	loc := make([]string, 0, 3)
	if w.format.Location.ShowFile {
		loc = append(loc, pieces[0])
	}
	if w.format.Location.ShowFunction {
		loc = append(loc, pieces[1])
	}
	if w.format.Location.ShowLine {
		loc = append(loc, pieces[2])
	}

	return strings.Join(loc, ":")
}

// renderExtra renders the remaining side-channel context fields as sorted
// key=value pairs, scrubbing every string value.
func (w *recordWriter) renderExtra(record map[string]any) string {
	keys := make([]string, 0, len(record))
	for k := range record {
		switch k {
		case zerolog.LevelFieldName, zerolog.MessageFieldName, zerolog.TimestampFieldName,
			zerolog.CallerFieldName, zerolog.ErrorFieldName, zerolog.ErrorStackFieldName,
			sessionIDField, replicaIDField:
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		v := record[k]
		if s, ok := v.(string); ok {
			pairs = append(pairs, fmt.Sprintf("%s=%s", k, w.scrubber.Scrub(s)))
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}

	return strings.Join(pairs, " ")
}

func (w *recordWriter) colorize(s, color string) string {
	if w.noColor || color == "" {
		return s
	}

	return color + s + ansiReset
}

// levelString resolves the record's level name, preferring the level
// zerolog passed to WriteLevel and falling back to the serialized field.
func levelString(level zerolog.Level, record map[string]any) string {
	if level != zerolog.NoLevel {
		return level.String()
	}
	if name, ok := record[zerolog.LevelFieldName].(string); ok {
		return name
	}

	return "info"
}

// renderTime reduces the RFC3339 timestamp zerolog serializes to HH:MM:SS.
func renderTime(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	return t.Format("15:04:05")
}

func levelColorOf(levelName string) string {
	switch strings.ToLower(levelName) {
	case "trace", "debug":
		return ansiCyan
	case "info":
		return ansiGreen
	case "warn", "warning":
		return ansiYellow
	case "error":
		return ansiRed
	case "fatal", "panic":
		return ansiBold + ansiRed
	default:
		return ansiWhite
	}
}

// sessionColor picks a stable palette color from a hash of the session id.
// The placeholder id "---" stays white.
func sessionColor(sessionID string) string {
	if sessionID == "---" {
		return ansiWhite
	}

	tail := sessionID
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}

	sum := 0
	for _, c := range tail {
		sum += int(c)
	}

	return sessionPalette[sum%len(sessionPalette)]
}
