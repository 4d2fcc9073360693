// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on completion.
// Author: msto63
// Version: v0.1.1
// Created: 2026-09-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-03 v0.1.0: Initial implementation with performance timing
// - 2026-10-12 v0.1.1: Shared completion path for Stop and StopWithResult

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil, nil)
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	t.fields["success"] = false
	return t.finish(LevelError, t.operation+" failed", err, nil)
}

// StopWithResult stops the timer and logs the outcome. Unsuccessful results
// are raised to at least warn level.
func (t *Timer) StopWithResult(success bool, result interface{}) time.Duration {
	message := t.operation + " completed successfully"
	level := t.level
	if !success {
		message = t.operation + " completed with errors"
		if level < LevelWarn {
			level = LevelWarn
		}
	}
	t.fields["success"] = success
	return t.finish(level, message, nil, result)
}

func (t *Timer) finish(level Level, message string, err error, result interface{}) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	if result != nil {
		t.fields["result"] = result
	}
	if t.logger != nil {
		t.logger.log(level, message, err, t.fields)
	}
	return elapsed
}
