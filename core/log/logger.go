// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: structured, levelled logging with
//              persistent context fields and integration with the extkit error
//              type. Entries are encoded by zerolog as JSON or console text.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-03 v0.1.0: Initial implementation with structured logging
// - 2026-10-12 v0.2.0: Switched encoding to zerolog, removed async buffer

package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	exterr "github.com/msto63/extkit/core/error"
)

// Fields carries structured key-value pairs attached to a log entry
type Fields map[string]interface{}

// Format selects how entries are encoded
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota

	// FormatConsole writes human-readable text
	FormatConsole
)

// ParseFormat maps "json" and "console"/"text" onto a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "console", "text":
		return FormatConsole, nil
	default:
		return FormatJSON, &ParseError{Input: s, Type: "format"}
	}
}

// Logger represents a structured logger with contextual information
type Logger struct {
	mu     sync.RWMutex
	level  Level
	format Format
	output io.Writer
	name   string
	fields Fields
	caller bool

	zl zerolog.Logger
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger writing JSON to stdout at the default level
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON, Output: os.Stdout})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	l := &Logger{
		level:  config.Level,
		format: config.Format,
		output: config.Output,
		name:   config.Name,
		fields: make(Fields),
		caller: config.EnableCaller,
	}
	if l.output == nil {
		l.output = os.Stdout
	}
	l.rebuild()
	return l
}

// Discard returns a logger that drops everything. Packages use it as their
// default so the library stays silent until a logger is injected.
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal, Output: io.Discard})
}

// rebuild recreates the zerolog logger from the current settings; callers
// must hold the write lock or own l exclusively.
func (l *Logger) rebuild() {
	var w io.Writer = l.output
	if l.format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: l.output, NoColor: true, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp()
	if l.name != "" {
		ctx = ctx.Str("logger", l.name)
	}
	if len(l.fields) > 0 {
		ctx = ctx.Fields(map[string]interface{}(l.fields))
	}
	if l.caller {
		// public method + log
		ctx = ctx.CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 2)
	}
	l.zl = ctx.Logger()
}

func (l *Logger) clone() *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c := &Logger{
		level:  l.level,
		format: l.format,
		output: l.output,
		name:   l.name,
		fields: make(Fields, len(l.fields)),
		caller: l.caller,
	}
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return c
}

// WithLevel returns a copy with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	c.rebuild()
	return c
}

// WithFormat returns a copy with a different encoding
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.format = format
	c.rebuild()
	return c
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	c.rebuild()
	return c
}

// WithName returns a copy with a logger name attached to every entry
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	c.rebuild()
	return c
}

// WithField returns a copy with a persistent field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	c.rebuild()
	return c
}

// WithFields returns a copy with persistent fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	c.rebuild()
	return c
}

// WithCaller returns a copy that records the calling file and line
func (l *Logger) WithCaller() *Logger {
	c := l.clone()
	c.caller = true
	c.rebuild()
	return c
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// Audit logs an audit message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity. extkit errors
// contribute their code, severity, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	extErr, ok := err.(*exterr.Error)
	if !ok {
		if combined, isCombined := err.(*exterr.Combined); isCombined {
			l.log(LevelError, combined.Message(), err, Fields{
				"error_code":  combined.Code(),
				"error_count": combined.Len(),
			})
			return
		}
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     extErr.Code(),
		"error_severity": extErr.Severity().String(),
	}
	if op := extErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range extErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch extErr.Severity() {
	case exterr.SeverityLow:
		level = LevelInfo
	case exterr.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, extErr.Message(), err, fields)
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel changes the minimum level in place
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mu.RLock()
	minLevel := l.level
	zl := l.zl
	l.mu.RUnlock()

	if !level.ShouldLog(minLevel) {
		return
	}

	var ev *zerolog.Event
	if level == LevelAudit {
		ev = zl.Log().Str(zerolog.LevelFieldName, LevelAudit.String())
	} else {
		ev = zl.WithLevel(level.zerolog())
	}
	if ev == nil {
		return
	}
	if err != nil {
		ev = ev.Err(err)
	}
	for _, set := range fields {
		if len(set) > 0 {
			ev = ev.Fields(map[string]interface{}(set))
		}
	}
	ev.Msg(message)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
