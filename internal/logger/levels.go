package logger

import (
	"strings"

	"github.com/MKhiriev/appkit/internal/config"
)

// levelVisible decides whether a record at the given level is emitted.
// The level name is lowercased and looked up first in the call-site
// overrides, then in the static per-level configuration. Unknown level
// names are visible.
func levelVisible(level string, overrides map[string]bool, levels config.Levels) bool {
	l := strings.ToLower(level)

	if v, ok := overrides[l]; ok {
		return v
	}

	switch l {
	case "debug", "trace":
		return levels.Debug
	case "info":
		return levels.Info
	case "warn", "warning":
		return levels.Warn
	case "error":
		return levels.Error
	case "fatal", "panic":
		return levels.Fatal
	default:
		return true
	}
}

// locationVisible gates the source-location part of the line per level.
// Levels without an explicit toggle show the location.
func locationVisible(level string, loc config.Location) bool {
	if !loc.Enabled {
		return false
	}

	switch strings.ToLower(level) {
	case "debug", "trace":
		return loc.ShowForDebug
	case "info":
		return loc.ShowForInfo
	case "warn", "warning":
		return loc.ShowForWarn
	case "error":
		return loc.ShowForError
	default:
		return true
	}
}
