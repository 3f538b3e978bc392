// File: doc.go
// Title: Package Documentation for numx
// Description: Conversion between numbers and text with optional
//              locale-aware digit grouping.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: ParseExact, defaults for empty Locale symbols

/*
Package numx converts numbers to text and back.

# Formatting

Format renders any integer or floating-point value with the symbols of an
explicit Locale:

	de := numx.MustParseLocale("de-DE")
	numx.Format(1234567.25, de, true)  // "1.234.567,25"
	numx.Format(1234567.25, de, false) // "1234567,25"
	numx.Format(1234567, numx.CLocale, true) // "1234567"

The digits always come from strconv, so integers are exact and floats use
the shortest text that reads back to the same value. Values with a
magnitude in [1e-4, 1e21) print positionally, others as "1.5e+21". NaN and
infinities print as "NaN", "+Inf" and "-Inf".

Locale symbols for named locales come from CLDR through golang.org/x/text.
Symbols left empty in a hand-built Locale fall back to those of CLocale,
so the zero Locale formats like CLocale.
CLocale is the classic POSIX locale and has no grouping. NumToStr formats
in the host locale, which is read once from LC_ALL, LC_NUMERIC or LANG.

# Parsing

Parse reads the longest numeric prefix in the classic locale, after
skipping leading whitespace:

	n, err := numx.Parse[int32]("  42abc") // 42, nil
	_, err = numx.Parse[uint8]("300")      // NUMX_OUT_OF_RANGE
	_, err = numx.Parse[int]("abc")        // NUMX_PARSE_FAILED

StrToNum keeps the lossy convenience contract of returning zero on any
failure, and TryParse reports success as a bool. ParseLocalized accepts
text produced by Format for the same locale; ParseExact additionally
requires the whole text to be the number.
*/
package numx
