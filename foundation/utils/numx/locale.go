// File: locale.go
// Title: Numeric Locale Symbols
// Description: Locale describes how a number is written in a given culture.
//              Symbols for named locales are derived from CLDR data through
//              golang.org/x/text by formatting probe numbers and reading the
//              separators, group sizes and digits back out of the result.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.0: Secondary group sizes and minimum grouping digits
// - 2026-10-16 v0.1.1: withDefaults for partially filled locales

package numx

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
	"github.com/msto63/pqutil/foundation/core/errors"
	"github.com/msto63/pqutil/foundation/core/i18n"
	"github.com/msto63/pqutil/foundation/utils/stringx"
)

// Locale holds the symbols used to render numbers.
type Locale struct {
	// Name is the BCP 47 tag, or "C" for the classic locale.
	Name string

	Decimal string
	Group   string

	// GroupSize is the size of the group next to the decimal separator.
	// Zero disables grouping.
	GroupSize int

	// SecondaryGroupSize applies to every further group; zero means
	// GroupSize is used throughout.
	SecondaryGroupSize int

	// MinGroupingDigits is the number of digits the leading group needs
	// before any separator is written.
	MinGroupingDigits int

	Minus  string
	Digits [10]rune
}

// CLocale is the classic POSIX locale: '.' as decimal separator and no
// grouping.
var CLocale = Locale{
	Name:              "C",
	Decimal:           ".",
	Minus:             "-",
	MinGroupingDigits: 1,
	Digits:            asciiDigits,
}

var asciiDigits = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// The probe holds every digit once in known order, at least three groups
// and a single fraction digit.
const (
	probeValue  = -9876543210.5
	probeDigits = "98765432105"
)

var (
	localeCache sync.Map // string -> Locale

	hostOnce   sync.Once
	hostLocale Locale
)

// String returns the locale name.
func (l Locale) String() string {
	return l.Name
}

// withDefaults fills empty symbols with those of CLocale, so a partially
// filled or zero Locale still renders a decimal point and minus sign.
func (l Locale) withDefaults() Locale {
	if l.Decimal == "" {
		l.Decimal = CLocale.Decimal
	}
	if l.Minus == "" {
		l.Minus = CLocale.Minus
	}
	if l.Digits == [10]rune{} {
		l.Digits = asciiDigits
	}
	return l
}

// Groups reports whether the locale defines digit grouping.
func (l Locale) Groups() bool {
	return l.GroupSize > 0 && l.Group != ""
}

// IsClassic reports whether numbers render identically to the C locale
// once grouping is switched off.
func (l Locale) IsClassic() bool {
	return l.Decimal == "." && l.Minus == "-" && l.Digits == asciiDigits
}

// ParseLocale returns the symbols for a locale name. Both POSIX names
// ("de_DE.UTF-8") and BCP 47 tags ("de-DE") are accepted. "", "C" and
// "POSIX" select CLocale.
func ParseLocale(name string) (Locale, error) {
	if isClassicName(name) {
		return CLocale, nil
	}

	tag, err := i18n.ToTag(i18n.FromPOSIX(name))
	if err != nil {
		return Locale{}, errors.NumxInvalidLocale(name, err)
	}

	key := tag.String()
	if cached, ok := localeCache.Load(key); ok {
		return cached.(Locale), nil
	}

	loc, err := deriveLocale(tag)
	if err != nil {
		return Locale{}, errors.NumxInvalidLocale(name, err)
	}

	localeCache.Store(key, loc)
	return loc, nil
}

// MustParseLocale is like ParseLocale but panics on error.
func MustParseLocale(name string) Locale {
	loc, err := ParseLocale(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// HostLocale returns the numeric locale selected by the environment
// (LC_ALL, LC_NUMERIC, LANG). It is resolved once per process; unknown
// names fall back to CLocale.
func HostLocale() Locale {
	hostOnce.Do(func() {
		hostLocale = CLocale
		name := i18n.FromEnvironment()
		if name == "" {
			return
		}
		if loc, err := ParseLocale(name); err == nil {
			hostLocale = loc
		}
	})
	return hostLocale
}

func isClassicName(name string) bool {
	name = stringx.TrimCopy(name)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name == "" || name == "C" || name == "POSIX"
}

// deriveLocale formats the probe values in the given language and reads
// the number symbols back from the output.
func deriveLocale(tag language.Tag) (Locale, error) {
	p := message.NewPrinter(tag)
	out := p.Sprintf("%v", number.Decimal(probeValue,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	loc, err := parseProbe(out)
	if err != nil {
		return Locale{}, err
	}
	loc.Name = tag.String()

	// A four digit value shows whether a lone leading digit is grouped.
	if loc.Groups() {
		small := p.Sprintf("%v", number.Decimal(1234))
		if !strings.Contains(small, loc.Group) {
			loc.MinGroupingDigits = 2
		}
	}
	return loc, nil
}

// parseProbe splits a formatted probe into its runs of digits and
// separators. The last separator is the decimal mark, the others are
// group separators, and the lengths of the integer digit runs give the
// group sizes.
func parseProbe(out string) (Locale, error) {
	loc := Locale{MinGroupingDigits: 1}

	var (
		digitRuns []int
		seps      []string
		run       int
		sep       strings.Builder
		seen      int
		started   bool
	)

	for _, r := range out {
		if !unicode.IsDigit(r) {
			if !started {
				loc.Minus += string(r)
			} else {
				sep.WriteRune(r)
			}
			continue
		}

		if seen >= len(probeDigits) {
			return Locale{}, probeError(out)
		}
		want := int(probeDigits[seen] - '0')
		if seen < 10 {
			loc.Digits[want] = r
		} else if loc.Digits[want] != r {
			return Locale{}, probeError(out)
		}
		seen++

		if started && sep.Len() > 0 {
			digitRuns = append(digitRuns, run)
			seps = append(seps, sep.String())
			sep.Reset()
			run = 0
		}
		started = true
		run++
	}
	digitRuns = append(digitRuns, run)

	// Expect the single fraction digit to stand alone after the decimal mark.
	if seen != len(probeDigits) || len(seps) == 0 || digitRuns[len(digitRuns)-1] != 1 {
		return Locale{}, probeError(out)
	}

	if loc.Minus == "" {
		loc.Minus = "-"
	}

	loc.Decimal = seps[len(seps)-1]
	intRuns := digitRuns[:len(digitRuns)-1]
	groupSeps := seps[:len(seps)-1]

	if len(groupSeps) > 0 {
		loc.Group = groupSeps[0]
		loc.GroupSize = intRuns[len(intRuns)-1]
		if len(intRuns) >= 3 {
			if secondary := intRuns[len(intRuns)-2]; secondary != loc.GroupSize {
				loc.SecondaryGroupSize = secondary
			}
		}
	}

	return loc, nil
}

func probeError(out string) error {
	return mdwerror.Newf("unexpected number format %q", out).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("numx.derive_locale")
}
