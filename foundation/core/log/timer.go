// File: timer.go
// Title: Operation Timer
// Description: Measures an operation with a timex.Stopwatch and logs its
//              duration when stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-15 v0.2.0: Built on timex.Stopwatch

package log

import (
	"time"

	"github.com/msto63/pqutil/foundation/utils/timex"
)

// Timer measures one operation. Only the first Stop or StopWithError logs.
type Timer struct {
	timex.Stopwatch

	logger    *Logger
	operation string
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer for operation that logs at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		Stopwatch: timex.NewStopwatch(),
		logger:    logger,
		operation: operation,
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop logs "<operation> completed" with the elapsed time and returns it.
// A stopped timer returns 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err)
}

// Checkpoint logs the time elapsed so far without stopping
func (t *Timer) Checkpoint(name string) {
	if t.stopped || t.logger == nil {
		return
	}
	elapsed := t.ElapsedDuration()
	t.logger.log(LevelDebug, t.operation+" checkpoint: "+name, nil, 0, t.fields, Fields{
		"operation":  t.operation,
		"checkpoint": name,
		"elapsed_ms": durationMillis(elapsed),
	})
}

// Reset restarts the timer, including a stopped one
func (t *Timer) Reset() {
	t.Stopwatch.Reset()
	t.stopped = false
}

// IsRunning returns true until the timer is stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.ElapsedDuration()

	if t.logger != nil {
		t.logger.log(level, message, err, elapsed, t.fields, Fields{
			"operation": t.operation,
			"success":   err == nil,
		})
	}
	return elapsed
}
