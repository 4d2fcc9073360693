// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering log output and their mapping
//              onto zerolog levels.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-03 v0.1.0: Initial implementation with standard log levels
// - 2026-10-12 v0.2.0: zerolog level mapping

package log

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Level represents the importance level of a log message
type Level int

// Levels in increasing importance. LevelAudit passes every filter.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelAudit
)

// levelInfo ties a Level to its name, accepted aliases and zerolog level.
// Audit has no zerolog counterpart and is emitted without a level.
var levelInfo = [...]struct {
	name    string
	aliases []string
	zl      zerolog.Level
}{
	LevelTrace: {"trace", []string{"trc"}, zerolog.TraceLevel},
	LevelDebug: {"debug", []string{"dbg"}, zerolog.DebugLevel},
	LevelInfo:  {"info", []string{"inf", "information"}, zerolog.InfoLevel},
	LevelWarn:  {"warn", []string{"wrn", "warning"}, zerolog.WarnLevel},
	LevelError: {"error", []string{"err"}, zerolog.ErrorLevel},
	LevelFatal: {"fatal", []string{"ftl"}, zerolog.FatalLevel},
	LevelAudit: {"audit", []string{"aud"}, zerolog.NoLevel},
}

func (l Level) valid() bool { return l >= 0 && int(l) < len(levelInfo) }

// String returns the lower-case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelInfo[l].name
}

// ShouldLog reports whether a message at l passes the minimum level. Audit
// messages always pass.
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

func (l Level) zerolog() zerolog.Level {
	if !l.valid() {
		return zerolog.NoLevel
	}
	return levelInfo[l].zl
}

// ParseLevel accepts level names and their short forms, case-insensitively
func ParseLevel(level string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(level))
	for l, info := range levelInfo {
		if key == info.name || slices.Contains(info.aliases, key) {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
