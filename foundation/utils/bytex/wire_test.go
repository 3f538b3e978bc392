// File: wire_test.go
// Title: Tests for Wire Integer Encoding
// Description: Tests for ReadIntN/PutIntN including short-buffer errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package bytex

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
)

func TestPutReadInt16(t *testing.T) {
	buf := make([]byte, 2)
	require.NoError(t, PutInt16(buf, -2))
	assert.Equal(t, []byte{0xFF, 0xFE}, buf)

	v, err := ReadInt16(buf)
	require.NoError(t, err)
	assert.Equal(t, int16(-2), v)
}

func TestPutReadInt32(t *testing.T) {
	buf := make([]byte, 6)
	require.NoError(t, PutInt32(buf, 0x00000108))
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x08, 0x00, 0x00}, buf)

	v, err := ReadInt32(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(264), v)
}

func TestPutReadInt64(t *testing.T) {
	for _, want := range []int64{0, -1, math.MaxInt64, math.MinInt64} {
		buf := make([]byte, 8)
		require.NoError(t, PutInt64(buf, want))
		got, err := ReadInt64(buf)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestWireMatchesSwap(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, PutInt32(buf, 0x01020304))
	assert.Equal(t, int32(Native.Uint32(buf)), Swap32(0x01020304, true))
}

func TestShortBuffer(t *testing.T) {
	tests := []struct {
		name string
		call func() error
	}{
		{"read16", func() error { _, err := ReadInt16([]byte{1}); return err }},
		{"read32", func() error { _, err := ReadInt32([]byte{1, 2, 3}); return err }},
		{"read64", func() error { _, err := ReadInt64(nil); return err }},
		{"put16", func() error { return PutInt16(nil, 1) }},
		{"put32", func() error { return PutInt32(make([]byte, 2), 1) }},
		{"put64", func() error { return PutInt64(make([]byte, 7), 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeBytexShortBuffer))
			assert.Contains(t, err.Error(), "buffer too short")

			var coded *mdwerror.Error
			require.True(t, errors.As(err, &coded))
			assert.Equal(t, "bytex", coded.Details()["module"])
		})
	}
}
