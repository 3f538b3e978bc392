// File: swap.go
// Title: Host/Network Byte Order Conversion
// Description: Converts fixed-width integers between host byte order and
//              network (big-endian) byte order. Values are taken and
//              returned by value; swapping works on the raw bit pattern.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package bytex

import "math/bits"

// IsBigEndian reports whether the host already uses network byte order.
func IsBigEndian() bool {
	return hostIsBigEndian
}

// Swap16 converts v between host and network byte order.
// toNetwork selects host→network; false selects network→host. On a
// big-endian host both directions return v unchanged, otherwise the two
// bytes are exchanged. Swap16(Swap16(x, true), false) == x for every x.
func Swap16(v int16, toNetwork bool) int16 {
	return int16(swap16(uint16(v), toNetwork))
}

// Swap32 converts v between host and network byte order. See Swap16.
func Swap32(v int32, toNetwork bool) int32 {
	return int32(swap32(uint32(v), toNetwork))
}

// Swap64 converts v between host and network byte order. See Swap16.
func Swap64(v int64, toNetwork bool) int64 {
	return int64(swap64(uint64(v), toNetwork))
}

// HostToNetwork16 converts a host-order value to network order.
func HostToNetwork16(v uint16) uint16 { return swap16(v, true) }

// HostToNetwork32 converts a host-order value to network order.
func HostToNetwork32(v uint32) uint32 { return swap32(v, true) }

// HostToNetwork64 converts a host-order value to network order.
func HostToNetwork64(v uint64) uint64 { return swap64(v, true) }

// NetworkToHost16 converts a network-order value to host order.
func NetworkToHost16(v uint16) uint16 { return swap16(v, false) }

// NetworkToHost32 converts a network-order value to host order.
func NetworkToHost32(v uint32) uint32 { return swap32(v, false) }

// NetworkToHost64 converts a network-order value to host order.
func NetworkToHost64(v uint64) uint64 { return swap64(v, false) }

// The direction does not change the operation: reversing the bytes is
// its own inverse, and a big-endian host needs no reversal either way.

func swap16(v uint16, _ bool) uint16 {
	if hostIsBigEndian {
		return v
	}
	return bits.ReverseBytes16(v)
}

func swap32(v uint32, _ bool) uint32 {
	if hostIsBigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

func swap64(v uint64, _ bool) uint64 {
	if hostIsBigEndian {
		return v
	}
	return bits.ReverseBytes64(v)
}
