// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for file reading and size formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16

package filex

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wire.bin")
	if err := os.WriteFile(path, []byte{0x00, 0x01}, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 2 || data[1] != 0x01 {
		t.Errorf("ReadFile() = %v", data)
	}

	if !Exists(path) || !IsFile(path) {
		t.Error("Exists/IsFile should be true for a regular file")
	}
	if IsFile(dir) {
		t.Error("IsFile should be false for a directory")
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"missing", filepath.Join(dir, "missing"), mdwerror.CodeNotFound},
		{"directory", dir, mdwerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("ReadFile(%s) code = %s, want %s", tt.path, mdwerror.GetCode(err), tt.code)
			}
		})
	}

	if Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists should be false for a missing file")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
