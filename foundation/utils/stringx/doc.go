// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides byte-wise string primitives for
//              protocol and query-result text: trimming, ASCII case folding,
//              case-insensitive comparison and joining.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-13 v0.3.0: Rewritten around single-byte classification

// Package stringx provides byte-wise string operations.
//
// # Overview
//
// The functions in this package treat a string as a sequence of single bytes,
// the way server messages and identifiers are handled on the wire. They are
// deliberately not Unicode-aware:
//
//   - Whitespace is the C-locale isspace set: ' ', '\t', '\n', '\v', '\f', '\r'.
//   - Case folding maps only 'A'..'Z' to 'a'..'z'.
//   - Bytes >= 0x80 are never whitespace and never folded. Multi-byte UTF-8
//     sequences therefore pass through every function unchanged, and U+00A0
//     (no-break space) is not trimmed.
//
// # Trimming
//
// Every trim comes in two forms. The in-place form takes a pointer and
// replaces the string it points to; the Copy form returns the result:
//
//	s := "  ab c  "
//	stringx.Trim(&s)                   // s == "ab c"
//	stringx.LTrimCopy("  ab c  ")      // "ab c  "
//	stringx.RTrimCopy("  ab c  ")      // "  ab c"
//
// # Comparison and joining
//
//	stringx.IEquals("AbC", "abc")      // true
//	stringx.IEquals("abc", "abcd")     // false, lengths differ
//	stringx.ToLower("SELECT Ü")        // "select Ü"
//	stringx.Join([]string{"a", "b", "c"}, ",") // "a,b,c"
//	stringx.Join([]string{"", "b", ""}, ",")  // "b,", no separator after empty text
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package stringx
