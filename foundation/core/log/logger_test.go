// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, filtering, fields and
//              error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: level, Format: FormatJSON, Output: &buf, Name: "test"})
	return logger, &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		entries = append(entries, m)
	}
	return entries
}

func TestNew(t *testing.T) {
	logger := New()
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if _, ok := logger.formatter.(*JSONFormatter); !ok {
		t.Error("New() should use the JSON formatter")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")
	logger.Audit("always")

	entries := decodeLines(t, buf)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %s", len(entries), buf.String())
	}
	if entries[2]["level"] != "audit" {
		t.Errorf("last entry level = %v, want audit", entries[2]["level"])
	}
}

func TestWithMethodsCopy(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	derived := base.WithField("component", "numx").WithLevel(LevelDebug)

	if base.GetLevel() != LevelInfo {
		t.Error("WithLevel() modified the original logger")
	}

	derived.Debug("from derived")
	base.Info("from base")

	entries := decodeLines(t, buf)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["component"] != "numx" {
		t.Errorf("derived entry missing field: %v", entries[0])
	}
	if _, ok := entries[1]["component"]; ok {
		t.Errorf("base entry has derived field: %v", entries[1])
	}
	if entries[1]["logger"] != "test" {
		t.Errorf("logger name = %v", entries[1]["logger"])
	}
}

func TestCallFieldsOverridePersistent(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	logger.WithFields(Fields{"locale": "C"}).Info("x", Field("locale", "de-DE"), Bytes("wire", []byte{0x00, 0xff}))

	entry := decodeLines(t, buf)[0]
	if entry["locale"] != "de-DE" {
		t.Errorf("locale = %v, want de-DE", entry["locale"])
	}
	if entry["wire"] != "00ff" {
		t.Errorf("wire = %v, want 00ff", entry["wire"])
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity", mdwerror.New("bad number").WithCode(mdwerror.CodeNumxParseFailed), "info"},
		{"medium severity", mdwerror.New("odd"), "warn"},
		{"high severity", mdwerror.New("config").WithCode(mdwerror.CodeConfigError), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err)

			entries := decodeLines(t, buf)
			if len(entries) != 1 {
				t.Fatalf("got %d entries", len(entries))
			}
			if entries[0]["level"] != tt.level {
				t.Errorf("level = %v, want %v", entries[0]["level"], tt.level)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write")
	}
}

func TestLogErrorFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)
	err := mdwerror.New("cannot parse").
		WithCode(mdwerror.CodeNumxParseFailed).
		WithOperation("numx.parse").
		WithDetail("input", "abc")
	logger.LogError(err)

	entry := decodeLines(t, buf)[0]
	if entry["error_code"] != "NUMX_PARSE_FAILED" {
		t.Errorf("error_code = %v", entry["error_code"])
	}
	if entry["error_operation"] != "numx.parse" {
		t.Errorf("error_operation = %v", entry["error_operation"])
	}
	if entry["error_input"] != "abc" {
		t.Errorf("error_input = %v", entry["error_input"])
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelDebug)
	SetDefault(logger)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	if got := len(decodeLines(t, buf)); got != 4 {
		t.Errorf("default logger wrote %d entries, want 4", got)
	}
}
