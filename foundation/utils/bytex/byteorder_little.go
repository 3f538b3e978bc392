// File: byteorder_little.go
// Title: Host Byte Order (little-endian targets)
// Description: Native byte order for little-endian architectures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

//go:build 386 || amd64 || amd64p32 || alpha || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || nios2 || ppc64le || riscv || riscv64 || sh || wasm

package bytex

import "encoding/binary"

// Native is the byte order of the host.
var Native binary.ByteOrder = binary.LittleEndian

const hostIsBigEndian = false
