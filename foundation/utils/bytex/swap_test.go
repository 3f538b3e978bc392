// File: swap_test.go
// Title: Tests for Byte-Order Conversion
// Description: Round-trip and host-order tests for the swap functions.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-16

package bytex

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwap16RoundTrip(t *testing.T) {
	values := []int16{0, 1, -1, 0x0102, 0x7FFF, -0x8000, 0x00FF, -0x0100}
	for _, v := range values {
		assert.Equal(t, v, Swap16(Swap16(v, true), false), "host->net->host %#x", v)
		assert.Equal(t, v, Swap16(Swap16(v, false), true), "net->host->net %#x", v)
	}
}

func TestSwap32RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 0x01020304, math.MaxInt32, math.MinInt32, 0x00FF00FF}
	for _, v := range values {
		assert.Equal(t, v, Swap32(Swap32(v, true), false), "host->net->host %#x", v)
		assert.Equal(t, v, Swap32(Swap32(v, false), true), "net->host->net %#x", v)
	}
}

func TestSwap64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 0x0102030405060708, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		assert.Equal(t, v, Swap64(Swap64(v, true), false), "host->net->host %#x", v)
		assert.Equal(t, v, Swap64(Swap64(v, false), true), "net->host->net %#x", v)
	}
}

// Every 16-bit pattern, checked against the network layout as well.
func TestSwap16AllPatterns(t *testing.T) {
	buf := make([]byte, 2)
	for i := 0; i <= math.MaxUint16; i++ {
		v := int16(uint16(i))
		if got := Swap16(Swap16(v, true), false); got != v {
			t.Fatalf("Swap16 round trip of %#04x = %#04x", uint16(v), uint16(got))
		}
		if got := Swap16(Swap16(v, false), true); got != v {
			t.Fatalf("Swap16 reverse round trip of %#04x = %#04x", uint16(v), uint16(got))
		}
		Native.PutUint16(buf, uint16(Swap16(v, true)))
		if got := int16(binary.BigEndian.Uint16(buf)); got != v {
			t.Fatalf("Swap16(%#04x) layout reads %#04x", uint16(v), uint16(got))
		}
	}
}

func FuzzSwap32RoundTrip(f *testing.F) {
	for _, seed := range []int32{0, 1, -1, 0x01020304, math.MaxInt32, math.MinInt32} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, v int32) {
		if got := Swap32(Swap32(v, true), false); got != v {
			t.Errorf("Swap32 round trip of %#x = %#x", v, got)
		}
		if got := Swap32(Swap32(v, false), true); got != v {
			t.Errorf("Swap32 reverse round trip of %#x = %#x", v, got)
		}
		buf := make([]byte, 4)
		Native.PutUint32(buf, uint32(Swap32(v, true)))
		if got := int32(binary.BigEndian.Uint32(buf)); got != v {
			t.Errorf("Swap32(%#x) layout reads %#x", v, got)
		}
	})
}

func FuzzSwap64RoundTrip(f *testing.F) {
	for _, seed := range []int64{0, 1, -1, 0x0102030405060708, math.MaxInt64, math.MinInt64} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, v int64) {
		if got := Swap64(Swap64(v, true), false); got != v {
			t.Errorf("Swap64 round trip of %#x = %#x", v, got)
		}
		if got := Swap64(Swap64(v, false), true); got != v {
			t.Errorf("Swap64 reverse round trip of %#x = %#x", v, got)
		}
		buf := make([]byte, 8)
		Native.PutUint64(buf, uint64(Swap64(v, true)))
		if got := int64(binary.BigEndian.Uint64(buf)); got != v {
			t.Errorf("Swap64(%#x) layout reads %#x", v, got)
		}
	})
}

// The swapped value, laid out in host memory, must read as big-endian.
func TestSwapProducesNetworkLayout(t *testing.T) {
	buf := make([]byte, 8)

	Native.PutUint16(buf, uint16(Swap16(0x0102, true)))
	assert.Equal(t, []byte{0x01, 0x02}, buf[:2])

	Native.PutUint32(buf, uint32(Swap32(0x01020304, true)))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf[:4])

	Native.PutUint64(buf, uint64(Swap64(0x0102030405060708, true)))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf)
}

func TestSwapMatchesHostOrder(t *testing.T) {
	if IsBigEndian() {
		assert.Equal(t, int32(0x01020304), Swap32(0x01020304, true))
		assert.Equal(t, binary.ByteOrder(binary.BigEndian), Native)
		return
	}
	assert.Equal(t, int16(0x0201), Swap16(0x0102, true))
	assert.Equal(t, int32(0x04030201), Swap32(0x01020304, true))
	assert.Equal(t, int64(0x0807060504030201), Swap64(0x0102030405060708, false))
	assert.Equal(t, binary.ByteOrder(binary.LittleEndian), Native)
}

func TestUnsignedConversions(t *testing.T) {
	assert.Equal(t, uint16(0xBEEF), NetworkToHost16(HostToNetwork16(0xBEEF)))
	assert.Equal(t, uint32(0xDEADBEEF), NetworkToHost32(HostToNetwork32(0xDEADBEEF)))
	assert.Equal(t, uint64(math.MaxUint64-1), NetworkToHost64(HostToNetwork64(math.MaxUint64-1)))

	assert.Equal(t, uint32(Swap32(-2, true)), HostToNetwork32(uint32(0xFFFFFFFE)))
}
