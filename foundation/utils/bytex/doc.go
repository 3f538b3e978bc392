// File: doc.go
// Title: Package Documentation for bytex
// Description: Byte-order conversion and hex rendering for wire-format data.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-14

// Package bytex provides the byte-level primitives used when encoding and
// decoding the PostgreSQL wire protocol.
//
// # Byte order
//
// Network byte order is big-endian. Swap16, Swap32 and Swap64 convert a
// fixed-width value between host and network order. The direction flag
// only documents intent: on a big-endian host both directions are the
// identity, on a little-endian host both reverse the bytes. The host order
// is chosen at build time and exposed as Native.
//
//	wire := bytex.Swap32(int32(len(payload)), true)
//	host := bytex.Swap32(wire, false) // == len(payload)
//
// For reading and writing directly into a buffer, ReadInt16/32/64 and
// PutInt16/32/64 work in network order and report short buffers with a
// BYTEX_SHORT_BUFFER error instead of panicking.
//
// # Hex
//
// HexToStr renders bytes as lowercase hex without separators:
//
//	bytex.HexToStr([]byte{0x00, 0xff, 0x1a}) // "00ff1a"
package bytex
