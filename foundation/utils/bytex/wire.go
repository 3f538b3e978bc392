// File: wire.go
// Title: Wire Integer Encoding
// Description: Reads and writes signed fixed-width integers in network byte
//              order at the start of a buffer, as used by protocol decoders.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package bytex

import (
	"encoding/binary"

	"github.com/msto63/pqutil/foundation/core/errors"
)

// ReadInt16 decodes a network-order int16 from the first two bytes of b.
func ReadInt16(b []byte) (int16, error) {
	if len(b) < 2 {
		return 0, errors.BytexShortBuffer("read_int16", 2, len(b))
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

// ReadInt32 decodes a network-order int32 from the first four bytes of b.
func ReadInt32(b []byte) (int32, error) {
	if len(b) < 4 {
		return 0, errors.BytexShortBuffer("read_int32", 4, len(b))
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// ReadInt64 decodes a network-order int64 from the first eight bytes of b.
func ReadInt64(b []byte) (int64, error) {
	if len(b) < 8 {
		return 0, errors.BytexShortBuffer("read_int64", 8, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// PutInt16 encodes v in network order into the first two bytes of b.
func PutInt16(b []byte, v int16) error {
	if len(b) < 2 {
		return errors.BytexShortBuffer("put_int16", 2, len(b))
	}
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

// PutInt32 encodes v in network order into the first four bytes of b.
func PutInt32(b []byte, v int32) error {
	if len(b) < 4 {
		return errors.BytexShortBuffer("put_int32", 4, len(b))
	}
	binary.BigEndian.PutUint32(b, uint32(v))
	return nil
}

// PutInt64 encodes v in network order into the first eight bytes of b.
func PutInt64(b []byte, v int64) error {
	if len(b) < 8 {
		return errors.BytexShortBuffer("put_int64", 8, len(b))
	}
	binary.BigEndian.PutUint64(b, uint64(v))
	return nil
}
