// File: timex.go
// Title: Stopwatch
// Description: Measures elapsed wall time from a captured start instant
//              using the monotonic clock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-15 v0.2.0: Replaced by the Stopwatch type

package timex

import "time"

// Stopwatch records a start instant. The zero value is not started; use
// NewStopwatch.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch returns a stopwatch started now.
func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Reset restarts the stopwatch at the current instant.
func (s *Stopwatch) Reset() {
	s.start = time.Now()
}

// Elapsed returns the seconds since the last start, never negative.
func (s Stopwatch) Elapsed() float64 {
	return s.ElapsedDuration().Seconds()
}

// ElapsedDuration returns the time since the last start, never negative.
func (s Stopwatch) ElapsedDuration() time.Duration {
	d := time.Since(s.start)
	if d < 0 {
		return 0
	}
	return d
}

// Started returns the instant of the last start.
func (s Stopwatch) Started() time.Time {
	return s.start
}
