// File: stringx.go
// Title: Byte-wise String Utility Functions
// Description: Implements trimming, case folding, case-insensitive comparison
//              and joining over single-byte text. Classification follows the
//              C locale: only ASCII bytes are whitespace or letters.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-13 v0.2.0: Byte-wise trim/case/join primitives for wire-level text
// - 2026-10-16 v0.2.1: Join skips the separator after empty accumulated text

package stringx

import (
	"strings"
)

// asciiSpace marks the bytes isspace() accepts in the C locale
var asciiSpace = [256]bool{' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true}

// IsSpace reports whether b is whitespace in the C locale:
// space, \t, \n, \v, \f or \r. Bytes >= 0x80 are never whitespace.
func IsSpace(b byte) bool {
	return asciiSpace[b]
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !asciiSpace[s[i]] {
			return false
		}
	}
	return true
}

// LTrim removes leading whitespace from *s in place.
// A nil pointer is ignored.
func LTrim(s *string) {
	if s == nil {
		return
	}
	*s = LTrimCopy(*s)
}

// RTrim removes trailing whitespace from *s in place.
func RTrim(s *string) {
	if s == nil {
		return
	}
	*s = RTrimCopy(*s)
}

// Trim removes leading and trailing whitespace from *s in place.
func Trim(s *string) {
	if s == nil {
		return
	}
	*s = TrimCopy(*s)
}

// LTrimCopy returns s without leading whitespace.
func LTrimCopy(s string) string {
	start := 0
	for start < len(s) && asciiSpace[s[start]] {
		start++
	}
	return s[start:]
}

// RTrimCopy returns s without trailing whitespace.
func RTrimCopy(s string) string {
	stop := len(s)
	for stop > 0 && asciiSpace[s[stop-1]] {
		stop--
	}
	return s[:stop]
}

// TrimCopy returns s without leading and trailing whitespace.
func TrimCopy(s string) string {
	return RTrimCopy(LTrimCopy(s))
}

// ToLower returns s with ASCII upper-case letters folded to lower case.
// All other bytes, including bytes of multi-byte UTF-8 sequences, are kept.
func ToLower(s string) string {
	// Fast path: nothing to fold
	i := 0
	for i < len(s) && !isUpper(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if isUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// IEquals reports whether a and b are equal under ASCII case folding.
// Strings of different length are never equal.
func IEquals(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if lower(ca) != lower(cb) {
			return false
		}
	}
	return true
}

// Join concatenates parts, writing sep before an element only when the
// text accumulated so far is non-empty. Leading empty elements therefore
// add nothing, so Join({"", "b", ""}, ",") is "b,".
func Join(parts []string, sep string) string {
	var b strings.Builder
	for _, p := range parts {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(p)
	}
	return b.String()
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func lower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}
