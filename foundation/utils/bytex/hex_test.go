// File: hex_test.go
// Title: Tests for Hex Rendering
// Description: Table-driven tests for HexToStr.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

package bytex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToStr(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"nil", nil, ""},
		{"empty", []byte{}, ""},
		{"single zero", []byte{0x00}, "00"},
		{"mixed", []byte{0x00, 0xFF, 0x1A}, "00ff1a"},
		{"ascii", []byte("SELECT"), "53454c454354"},
		{"high bytes", []byte{0xDE, 0xAD, 0xBE, 0xEF}, "deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexToStr(tt.data)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 2*len(tt.data))
		})
	}
}

func TestHexToStrIsLowercase(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got := HexToStr(data)
	assert.Equal(t, strings.ToLower(got), got)
	assert.Equal(t, "0001", got[:4])
	assert.Equal(t, "feff", got[len(got)-4:])
}
