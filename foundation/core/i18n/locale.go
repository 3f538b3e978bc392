// File: locale.go
// Title: Locale Normalization and Host Detection
// Description: Normalizes locale names, reads the host locale from the
//              POSIX environment the way setlocale(LC_NUMERIC, "") does,
//              and converts locale names to BCP 47 language tags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-14 v0.2.0: Host locale from LC_ALL/LC_NUMERIC/LANG, BCP 47 tags

package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
	"github.com/msto63/pqutil/foundation/utils/stringx"
)

// Environment variables consulted for the numeric locale, highest priority first
var numericLocaleVars = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// NormalizeLocale normalizes a locale string to standard format
// ("en", "en-US"). It returns "" for anything it cannot interpret.
func NormalizeLocale(locale string) string {
	if stringx.IsBlank(locale) {
		return ""
	}

	locale = strings.ToLower(stringx.TrimCopy(locale))
	locale = strings.ReplaceAll(locale, "_", "-")

	parts := strings.Split(locale, "-")

	// Language code (lowercase)
	lang := parts[0]
	if len(lang) != 2 && len(lang) != 3 {
		return ""
	}
	for i := 0; i < len(lang); i++ {
		if lang[i] < 'a' || lang[i] > 'z' {
			return ""
		}
	}

	// Country code (uppercase if present)
	if len(parts) > 1 && len(parts[1]) == 2 {
		return lang + "-" + strings.ToUpper(parts[1])
	}

	return lang
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if stringx.IsBlank(locale) {
		return mdwerror.New("locale cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ValidateLocale")
	}

	if NormalizeLocale(locale) == "" {
		return mdwerror.New("invalid locale format").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g., 'en', 'en-US'")
	}

	return nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (lang, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	lang, country, _ = strings.Cut(normalized, "-")
	return lang, country
}

// FromPOSIX converts a POSIX locale name such as "de_DE.UTF-8@euro" to
// the normalized form ("de-DE"). The classic locales "C" and "POSIX",
// with or without a codeset, yield "".
func FromPOSIX(name string) string {
	name = stringx.TrimCopy(name)
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return ""
	}
	return NormalizeLocale(name)
}

// FromEnvironment returns the normalized numeric locale of the process,
// or "" when the environment selects the classic locale.
func FromEnvironment() string {
	return FromLookup(os.Getenv)
}

// FromLookup resolves the numeric locale through the given variable
// lookup. The first non-empty of LC_ALL, LC_NUMERIC and LANG wins, even
// when it names the classic locale.
func FromLookup(getenv func(string) string) string {
	for _, key := range numericLocaleVars {
		if value := getenv(key); value != "" {
			return FromPOSIX(value)
		}
	}
	return ""
}

// ToTag converts a locale name to a BCP 47 language tag.
func ToTag(locale string) (language.Tag, error) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return language.Und, mdwerror.New("invalid locale format").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ToTag").
			WithDetail("locale", locale)
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, mdwerror.Wrap(err, "unknown locale").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("i18n.ToTag").
			WithDetail("locale", locale)
	}
	return tag, nil
}
