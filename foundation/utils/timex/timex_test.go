// File: timex_test.go
// Title: Stopwatch Tests
// Description: Tests for construction, elapsed readings and Reset.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15

package timex

import (
	"testing"
	"time"
)

func TestNewStopwatch(t *testing.T) {
	sw := NewStopwatch()
	e := sw.Elapsed()
	if e < 0 || e >= 0.05 {
		t.Errorf("Elapsed() right after start = %v, want [0, 0.05)", e)
	}
	if sw.Started().IsZero() {
		t.Error("Started() is zero")
	}
}

func TestElapsedAfterSleep(t *testing.T) {
	const d = 20 * time.Millisecond

	sw := NewStopwatch()
	time.Sleep(d)

	if got := sw.ElapsedDuration(); got < d {
		t.Errorf("ElapsedDuration() = %v, want >= %v", got, d)
	}
	if got := sw.Elapsed(); got < d.Seconds() {
		t.Errorf("Elapsed() = %v, want >= %v", got, d.Seconds())
	}
}

func TestElapsedIsMonotonic(t *testing.T) {
	sw := NewStopwatch()
	prev := sw.ElapsedDuration()
	for i := 0; i < 1000; i++ {
		cur := sw.ElapsedDuration()
		if cur < prev {
			t.Fatalf("reading %d went backwards: %v < %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestReset(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(20 * time.Millisecond)
	before := sw.Started()

	sw.Reset()

	if !sw.Started().After(before) {
		t.Error("Reset() did not move the start instant")
	}
	if e := sw.Elapsed(); e >= 0.05 {
		t.Errorf("Elapsed() after Reset = %v, want < 0.05", e)
	}
}

func TestElapsedClampsFutureStart(t *testing.T) {
	sw := Stopwatch{start: time.Now().Add(time.Hour)}
	if got := sw.ElapsedDuration(); got != 0 {
		t.Errorf("ElapsedDuration() with future start = %v, want 0", got)
	}
	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed() with future start = %v, want 0", got)
	}
}
