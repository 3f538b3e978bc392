// File: byteorder_big.go
// Title: Host Byte Order (big-endian targets)
// Description: Native byte order for big-endian architectures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package bytex

import "encoding/binary"

// Native is the byte order of the host.
var Native binary.ByteOrder = binary.BigEndian

const hostIsBigEndian = true
