// File: numx.go
// Title: Locale-Aware Number Formatting
// Description: Formats integers and floating-point values with the symbols
//              of an explicit Locale. Digits are produced by strconv and the
//              locale only decides separators, grouping, minus sign and digit
//              glyphs, so formatting never loses precision.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Empty Locale symbols fall back to CLocale

package numx

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type, including named
// types derived from them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Floats in this magnitude range print positionally, all others in
// scientific notation.
const (
	minPositional = 1e-4
	maxPositional = 1e21
)

// Format renders v with the symbols of loc. With grouping set, digit
// groups are separated as the locale prescribes; without it only the
// grouping is suppressed and the decimal separator, minus sign and digits
// still follow loc.
//
// Floats use the shortest representation that parses back to the same
// value. NaN and infinities render as "NaN", "+Inf" and "-Inf".
func Format[T Number](v T, loc Locale, grouping bool) string {
	loc = loc.withDefaults()
	raw := formatRaw(reflect.ValueOf(v))
	if !grouping && loc.IsClassic() {
		return raw
	}
	return localize(raw, loc, grouping)
}

// NumToStr formats v in the host locale. Grouping is on unless false is
// passed.
func NumToStr[T Number](v T, grouping ...bool) string {
	g := true
	if len(grouping) > 0 {
		g = grouping[0]
	}
	return Format(v, HostLocale(), g)
}

// formatRaw returns the C-locale text of a numeric value.
func formatRaw(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	default:
		return formatFloat(rv.Float(), 64)
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= minPositional && abs < maxPositional {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'e', -1, bitSize)
}

// localize rewrites C-locale numeric text with the symbols of loc.
func localize(raw string, loc Locale, grouping bool) string {
	if raw == "NaN" || raw == "+Inf" || raw == "-Inf" {
		return raw
	}

	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}

	mantissa, exponent, hasExp := strings.Cut(raw, "e")
	intPart, fracPart, hasFrac := strings.Cut(mantissa, ".")

	var b strings.Builder
	b.Grow(len(raw) * 2)

	if neg {
		b.WriteString(loc.Minus)
	}

	if grouping && shouldGroup(len(intPart), loc) {
		writeGrouped(&b, intPart, loc)
	} else {
		writeDigits(&b, intPart, loc)
	}

	if hasFrac {
		b.WriteString(loc.Decimal)
		writeDigits(&b, fracPart, loc)
	}

	if hasExp {
		b.WriteByte('e')
		if exponent != "" && (exponent[0] == '+' || exponent[0] == '-') {
			b.WriteByte(exponent[0])
			exponent = exponent[1:]
		}
		writeDigits(&b, exponent, loc)
	}

	return b.String()
}

func shouldGroup(n int, loc Locale) bool {
	if !loc.Groups() {
		return false
	}
	minDigits := loc.MinGroupingDigits
	if minDigits < 1 {
		minDigits = 1
	}
	return n-loc.GroupSize >= minDigits
}

// writeGrouped writes digits with the group separator inserted from the
// right: first after GroupSize digits, then every SecondaryGroupSize.
func writeGrouped(b *strings.Builder, digits string, loc Locale) {
	secondary := loc.SecondaryGroupSize
	if secondary <= 0 {
		secondary = loc.GroupSize
	}

	// Compute the split points left to right.
	var cuts []int
	pos := len(digits) - loc.GroupSize
	for pos > 0 {
		cuts = append(cuts, pos)
		pos -= secondary
	}

	start := 0
	for i := len(cuts) - 1; i >= 0; i-- {
		writeDigits(b, digits[start:cuts[i]], loc)
		b.WriteString(loc.Group)
		start = cuts[i]
	}
	writeDigits(b, digits[start:], loc)
}

func writeDigits(b *strings.Builder, digits string, loc Locale) {
	if loc.Digits == asciiDigits || loc.Digits == [10]rune{} {
		b.WriteString(digits)
		return
	}
	for i := 0; i < len(digits); i++ {
		b.WriteRune(loc.Digits[digits[i]-'0'])
	}
}
