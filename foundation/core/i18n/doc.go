// File: doc.go
// Title: Locale Package Documentation
// Description: Package i18n normalizes locale names and resolves the host
//              locale for numeric formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Reduced to locale handling

/*
Package i18n provides locale name handling for the foundation packages.

Locale names come in two spellings: POSIX environment values such as
"de_DE.UTF-8@euro" and BCP 47 tags such as "de-DE". NormalizeLocale maps
both to the short "ll" or "ll-CC" form; FromPOSIX additionally strips the
codeset and modifier and maps the classic "C"/"POSIX" locale to "".

# Host locale

FromEnvironment follows the precedence of setlocale(LC_NUMERIC, ""):

	LC_ALL      overrides everything
	LC_NUMERIC  numeric category
	LANG        default for all categories

The first variable that is set decides, so LC_ALL=C wins over a German LANG.

# Tags

ToTag turns a locale name into a golang.org/x/text/language.Tag, which
the numx package uses to look up CLDR number symbols:

	tag, err := i18n.ToTag("de_DE")
	if err != nil {
		return err
	}
	// tag == language.MustParse("de-DE")
*/
package i18n
