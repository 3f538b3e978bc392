// File: timer_test.go
// Title: Timer Tests
// Description: Tests for operation timing and its log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package log

import (
	"errors"
	"testing"
	"time"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := logger.StartTimer("num.format").WithField("locale", "de-DE")

	time.Sleep(5 * time.Millisecond)
	elapsed := timer.Stop()

	if elapsed < 5*time.Millisecond {
		t.Errorf("Stop() = %v, want >= 5ms", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer still running after Stop()")
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["message"] != "num.format completed" {
		t.Errorf("message = %v", e["message"])
	}
	if e["level"] != "debug" {
		t.Errorf("level = %v", e["level"])
	}
	if e["locale"] != "de-DE" || e["operation"] != "num.format" || e["success"] != true {
		t.Errorf("fields = %v", e)
	}
	if ms, ok := e["duration_ms"].(float64); !ok || ms < 5 {
		t.Errorf("duration_ms = %v", e["duration_ms"])
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	timer := logger.StartTimer("num.parse").WithLevel(LevelInfo)
	timer.StopWithError(errors.New("no digits"))

	e := decodeLines(t, buf)[0]
	if e["message"] != "num.parse failed" || e["level"] != "error" {
		t.Errorf("entry = %v", e)
	}
	if e["error"] != "no digits" || e["success"] != false {
		t.Errorf("entry = %v", e)
	}
}

func TestTimerLevelFiltered(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.StartTimer("quiet").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug timer written at info level: %s", buf.String())
	}
}

func TestTimerResetAndCheckpoint(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := NewTimer(logger, "hex")

	timer.Checkpoint("read")
	timer.Stop()
	timer.Checkpoint("ignored")

	timer.Reset()
	if !timer.IsRunning() {
		t.Error("Reset() should restart a stopped timer")
	}
	if timer.Elapsed() >= 0.05 {
		t.Errorf("Elapsed() after Reset = %v", timer.Elapsed())
	}

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["checkpoint"] != "read" {
		t.Errorf("checkpoint entry = %v", entries[0])
	}
}

func TestTimerWithoutLogger(t *testing.T) {
	timer := NewTimer(nil, "detached")
	if timer.Stop() < 0 {
		t.Error("Stop() without logger returned negative duration")
	}
}
