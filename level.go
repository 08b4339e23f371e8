package logconfig

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level is the ordered severity used across the logger and its sinks:
// DEBUG < INFO < WARNING < ERROR < CRITICAL.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

// ParseLevel resolves a level name case-insensitively. Unrecognized names
// resolve to LevelDebug rather than failing, so a typo in a settings file
// widens logging instead of silencing it.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	case "critical":
		return LevelCritical
	default:
		return LevelDebug
	}
}

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "DEBUG"
	}
}

// zerologLevel maps a Level onto the zerolog filtering threshold. CRITICAL
// shares zerolog's fatal threshold; it is used only as a filter, never to
// terminate the process.
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.DebugLevel
	}
}

func maxLevel(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
