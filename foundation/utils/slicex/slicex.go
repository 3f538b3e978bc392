// File: slicex.go
// Title: Variadic Selectors
// Description: Returns the last of a variadic argument list. The typed
//              forms keep the static type of the final argument.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-15 v0.2.0: Reduced to last-argument selection

package slicex

// Last returns its final argument. The leading parameter makes an empty
// call a compile error. Mixed types need an explicit interface type:
//
//	slicex.Last[any](1, 2.5, "x") // "x"
func Last[T any](first T, rest ...T) T {
	if len(rest) == 0 {
		return first
	}
	return rest[len(rest)-1]
}

// Last2 returns b.
func Last2[A, B any](_ A, b B) B {
	return b
}

// Last3 returns c.
func Last3[A, B, C any](_ A, _ B, c C) C {
	return c
}

// Last4 returns d.
func Last4[A, B, C, D any](_ A, _ B, _ C, d D) D {
	return d
}

// LastOr returns the final element of s, or def when s is empty.
func LastOr[T any](s []T, def T) T {
	if len(s) == 0 {
		return def
	}
	return s[len(s)-1]
}
