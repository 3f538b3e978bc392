// File: hex.go
// Title: Hexadecimal Rendering
// Description: Renders raw byte buffers as lowercase hexadecimal text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13

package bytex

import "encoding/hex"

// HexToStr renders data as lowercase hexadecimal, two digits per byte,
// without separators or prefix. A nil or empty buffer yields "".
func HexToStr(data []byte) string {
	return hex.EncodeToString(data)
}
