package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/appkit/internal/config"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func testFormat() config.Format {
	return config.Format{
		ShowTime:      true,
		ShowSessionID: true,
		Location: config.Location{
			Enabled:      true,
			ShowFile:     true,
			ShowFunction: true,
			ShowLine:     true,
			ShowForDebug: true,
			ShowForInfo:  false,
			ShowForWarn:  true,
			ShowForError: true,
		},
	}
}

func allLevels() config.Levels {
	return config.Levels{Debug: true, Info: true, Warn: true, Error: true, Fatal: true}
}

// newTestLogger wires a zerolog.Logger straight to a recordWriter, without
// touching the package-level Setup state.
func newTestLogger(t *testing.T, buf *bytes.Buffer, format config.Format, levels config.Levels, overrides map[string]bool) zerolog.Logger {
	t.Helper()

	zerolog.CallerMarshalFunc = marshalCaller

	scrubber, err := NewScrubber(testRedaction())
	require.NoError(t, err)

	w := &recordWriter{
		out:       buf,
		format:    format,
		levels:    levels,
		overrides: overrides,
		scrubber:  scrubber,
		noColor:   true,
	}

	return zerolog.New(w).With().
		Timestamp().
		Str(sessionIDField, "abcd1234").
		Str(replicaIDField, "local").
		Logger()
}

// ── rendering ─────────────────────────────────────────────────────────────────

// TestRender_BasicLine verifies that level, session id, replica id, and
// message all appear on one line.
func TestRender_BasicLine(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, &buf, testFormat(), allLevels(), nil)

	l.Info().Msg("hello world")

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "abcd1234")
	assert.Contains(t, line, "local")
	assert.Contains(t, line, "hello world")
	assert.Equal(t, 1, strings.Count(line, "\n"))
}

// TestRender_HiddenLevelDropped verifies that a record at an invisible
// level produces no output at all.
func TestRender_HiddenLevelDropped(t *testing.T) {
	var buf bytes.Buffer
	levels := allLevels()
	levels.Debug = false
	l := newTestLogger(t, &buf, testFormat(), levels, nil)

	l.Debug().Msg("invisible")
	l.Info().Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "invisible")
	assert.Contains(t, out, "visible")
}

// TestRender_OverrideShowsHiddenLevel verifies that a call-site override
// re-enables a statically hidden level.
func TestRender_OverrideShowsHiddenLevel(t *testing.T) {
	var buf bytes.Buffer
	levels := allLevels()
	levels.Debug = false
	l := newTestLogger(t, &buf, testFormat(), levels, map[string]bool{"debug": true})

	l.Debug().Msg("forced")

	assert.Contains(t, buf.String(), "forced")
}

// TestRender_TimeToggle verifies the show_time flag.
func TestRender_TimeToggle(t *testing.T) {
	var buf bytes.Buffer
	format := testFormat()
	format.ShowTime = false
	l := newTestLogger(t, &buf, format, allLevels(), nil)

	l.Info().Msg("no time")

	// HH:MM:SS never appears when the time part is disabled
	assert.NotRegexp(t, `\d{2}:\d{2}:\d{2}`, buf.String())
}

// TestRender_SessionIDToggle verifies the show_session_id flag.
func TestRender_SessionIDToggle(t *testing.T) {
	var buf bytes.Buffer
	format := testFormat()
	format.ShowSessionID = false
	l := newTestLogger(t, &buf, format, allLevels(), nil)

	l.Info().Msg("anonymous")

	assert.NotContains(t, buf.String(), "abcd1234")
}

// TestRender_LocationLevelGated verifies that the location part follows the
// per-level gate: debug shows it, info does not.
func TestRender_LocationLevelGated(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, &buf, testFormat(), allLevels(), nil).
		With().Caller().Logger()

	l.Info().Msg("info line")
	infoLine := buf.String()
	buf.Reset()
	l.Debug().Msg("debug line")
	debugLine := buf.String()

	assert.NotContains(t, infoLine, "format_test.go")
	assert.Contains(t, debugLine, "format_test.go")
}

// TestRender_MessageScrubbed verifies that secrets in the message never
// reach the output.
func TestRender_MessageScrubbed(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, &buf, testFormat(), allLevels(), nil)

	l.Info().Msg("key sk-123456789012345678901234 from test@example.com")

	out := buf.String()
	assert.NotContains(t, out, "sk-123456789012345678901234")
	assert.NotContains(t, out, "test@example.com")
	assert.Contains(t, out, "[REDACTED_API_KEY]")
	assert.Contains(t, out, "{{EMAIL}}")
}

// TestRender_ErrorScrubbed verifies that the error value's text is scrubbed
// while the record still renders.
func TestRender_ErrorScrubbed(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, &buf, testFormat(), allLevels(), nil)

	l.Error().Err(errors.New("auth failed for test@example.com")).Msg("request failed")

	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "error: auth failed for {{EMAIL}}")
	assert.NotContains(t, out, "test@example.com")
}

// TestRender_ExtraFieldsScrubbed verifies that every string-valued context
// field is scrubbed and rendered as key=value.
func TestRender_ExtraFieldsScrubbed(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, &buf, testFormat(), allLevels(), nil)

	l.Info().
		Str("user", "test@example.com").
		Int("attempt", 2).
		Msg("login")

	out := buf.String()
	assert.Contains(t, out, "user={{EMAIL}}")
	assert.Contains(t, out, "attempt=2")
	assert.NotContains(t, out, "test@example.com")
}

// TestWrite_MalformedRecordPassesThrough verifies that a record that cannot
// be parsed is written unmodified instead of being dropped.
func TestWrite_MalformedRecordPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	scrubber, err := NewScrubber(testRedaction())
	require.NoError(t, err)
	w := &recordWriter{out: &buf, format: testFormat(), levels: allLevels(), scrubber: scrubber, noColor: true}

	n, err := w.Write([]byte("not a json record"))
	require.NoError(t, err)
	assert.Equal(t, len("not a json record"), n)
	assert.Equal(t, "not a json record", buf.String())
}

// ── session color ─────────────────────────────────────────────────────────────

// TestSessionColor_Deterministic verifies that the same id always maps to
// the same palette color.
func TestSessionColor_Deterministic(t *testing.T) {
	first := sessionColor("abcd1234")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, sessionColor("abcd1234"))
	}
	assert.Contains(t, sessionPalette, first)
}

// TestSessionColor_PlaceholderIsWhite verifies the "---" placeholder id.
func TestSessionColor_PlaceholderIsWhite(t *testing.T) {
	assert.Equal(t, ansiWhite, sessionColor("---"))
}

// ── time rendering ────────────────────────────────────────────────────────────

// TestRenderTime verifies reduction of RFC3339 timestamps to HH:MM:SS and
// passthrough of unparseable values.
func TestRenderTime(t *testing.T) {
	assert.Equal(t, "14:03:59", renderTime("2026-08-30T14:03:59+02:00"))
	assert.Equal(t, "garbage", renderTime("garbage"))
}
