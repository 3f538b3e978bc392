// File: parse.go
// Title: Number Parsing
// Description: Parses the longest numeric prefix of a string into any
//              Number type. Parsing follows the classic locale; localized
//              text is normalized first by ParseLocalized.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: ParseExact for whole-text parsing

package numx

import (
	stderrors "errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/msto63/pqutil/foundation/core/errors"
	"github.com/msto63/pqutil/foundation/utils/stringx"
)

// Parse reads a T from the start of text. Leading whitespace is skipped
// and parsing stops at the first byte that cannot extend the number, so
// "42abc" yields 42. Integers accept an optional sign and decimal digits;
// floats additionally accept a fraction and an exponent. Unsigned types
// reject a minus sign.
//
// Text without a numeric prefix fails with NUMX_PARSE_FAILED, a value the
// type cannot hold with NUMX_OUT_OF_RANGE. On error the zero value is
// returned.
func Parse[T Number](text string) (T, error) {
	v, _, err := parseAs[T]("parse", text, text)
	return v, err
}

// TryParse is Parse with a success flag instead of an error.
func TryParse[T Number](text string) (T, bool) {
	v, err := Parse[T](text)
	return v, err == nil
}

// StrToNum parses text and returns the zero value of T when it holds no
// number. A result of zero is therefore ambiguous; use Parse or TryParse
// when failures matter.
func StrToNum[T Number](text string) T {
	v, _ := Parse[T](text)
	return v
}

// ParseLocalized parses text written with the symbols of loc, as produced
// by Format. Group separators are dropped and the decimal separator,
// minus sign and digits are mapped back before parsing.
func ParseLocalized[T Number](text string, loc Locale) (T, error) {
	v, _, err := parseAs[T]("parse_localized", text, delocalize(text, loc))
	return v, err
}

// ParseExact is ParseLocalized without prefix matching: apart from
// surrounding whitespace, the whole text must form the number.
func ParseExact[T Number](text string, loc Locale) (T, error) {
	var zero T
	s := stringx.RTrimCopy(delocalize(text, loc))
	v, n, err := parseAs[T]("parse_exact", text, s)
	if err != nil {
		return zero, err
	}
	if n != len(s) {
		return zero, errors.NumxParseFailed("parse_exact", text, reflect.TypeOf(zero).String()).
			Detail("trailing", s[n:]).
			Build()
	}
	return v, nil
}

func delocalize(text string, loc Locale) string {
	loc = loc.withDefaults()
	s := stringx.LTrimCopy(text)

	neg := false
	if loc.Minus != "" && loc.Minus != "-" && strings.HasPrefix(s, loc.Minus) {
		s = s[len(loc.Minus):]
		neg = true
	}

	if loc.Group != "" {
		s = strings.ReplaceAll(s, loc.Group, "")
	}
	if loc.Decimal != "" && loc.Decimal != "." {
		s = strings.ReplaceAll(s, loc.Decimal, ".")
	}
	if loc.Digits != asciiDigits && loc.Digits != [10]rune{} {
		s = strings.Map(func(r rune) rune {
			for i, d := range loc.Digits {
				if r == d {
					return rune('0' + i)
				}
			}
			return r
		}, s)
	}

	if neg {
		s = "-" + s
	}
	return s
}

// parseAs returns the value and the number of bytes of text consumed,
// including skipped leading whitespace.
func parseAs[T Number](op, input, text string) (T, int, error) {
	var zero T
	typ := reflect.TypeOf(zero)

	i := 0
	for i < len(text) && stringx.IsSpace(text[i]) {
		i++
	}
	text = text[i:]

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := scanInteger(text, true)
		if n == 0 {
			return zero, 0, errors.NumxParseFailed(op, input, typ.String()).Build()
		}
		v, err := strconv.ParseInt(text[:n], 10, typ.Bits())
		if err != nil {
			return zero, 0, numError(op, input, typ, err)
		}
		return T(v), i + n, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := scanInteger(text, false)
		if n == 0 {
			return zero, 0, errors.NumxParseFailed(op, input, typ.String()).Build()
		}
		// ParseUint takes no sign; scanInteger has already rejected '-'
		v, err := strconv.ParseUint(strings.TrimPrefix(text[:n], "+"), 10, typ.Bits())
		if err != nil {
			return zero, 0, numError(op, input, typ, err)
		}
		return T(v), i + n, nil

	default:
		n := scanFloat(text)
		if n == 0 {
			return zero, 0, errors.NumxParseFailed(op, input, typ.String()).Build()
		}
		v, err := strconv.ParseFloat(text[:n], typ.Bits())
		if err != nil {
			return zero, 0, numError(op, input, typ, err)
		}
		return T(v), i + n, nil
	}
}

func numError(op, input string, typ reflect.Type, err error) error {
	if stderrors.Is(err, strconv.ErrRange) {
		return errors.NumxOutOfRange(op, input, typ.String())
	}
	return errors.NumxParseFailed(op, input, typ.String()).Cause(err).Build()
}

// scanInteger returns the length of the integer prefix of s, or 0.
func scanInteger(s string, signed bool) int {
	i := 0
	if i < len(s) && (s[i] == '+' || (signed && s[i] == '-')) {
		i++
	}
	digits := scanDigits(s[i:])
	if digits == 0 {
		return 0
	}
	return i + digits
}

// scanFloat returns the length of the decimal floating-point prefix of s,
// or 0. An exponent only counts when at least one digit follows it.
func scanFloat(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := scanDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = scanDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expDigits := scanDigits(s[j:]); expDigits > 0 {
			i = j + expDigits
		}
	}
	return i
}

func scanDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
