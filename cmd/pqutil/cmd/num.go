// ============================================================================
// pqutil - wire-format and formatting primitives
// ============================================================================
//
// Package:     cmd
// Description: num command group (format, parse)
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/pqutil/foundation/core/log"
	"github.com/msto63/pqutil/foundation/utils/numx"
)

func newNumCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "num",
		Short: "Format and parse numbers",
		Long: `Formats numbers with the grouping and symbols of a locale and parses
localized text back into numbers.

The locale comes from --locale, then numx.locale in the config file, then
the environment (LC_ALL, LC_NUMERIC, LANG).`,
	}

	cmd.AddCommand(newNumFormatCommand(opts))
	cmd.AddCommand(newNumParseCommand(opts))
	return cmd
}

func newNumFormatCommand(opts *RootOptions) *cobra.Command {
	var (
		locale     string
		noGrouping bool
	)

	cmd := &cobra.Command{
		Use:     "format VALUE...",
		Short:   "Format numbers in a locale",
		Example: `  pqutil num format --locale de-DE 1234567.5`,
		Args:    cobra.MinimumNArgs(1),
	}

	cmd.RunE = opts.timed("num format", func(cmd *cobra.Command, args []string) error {
		loc, err := opts.locale(locale)
		if err != nil {
			return err
		}
		grouping := opts.settings.Grouping && !noGrouping
		opts.logger.Debug("formatting numbers", log.Fields{"locale": loc.String(), "grouping": grouping})

		out := cmd.OutOrStdout()
		for _, arg := range args {
			text, err := formatArg(arg, loc, grouping)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
		}
		return nil
	})

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale name (de-DE, fr_FR.UTF-8, C)")
	cmd.Flags().BoolVar(&noGrouping, "no-grouping", false, "disable digit grouping")
	return cmd
}

// formatArg reads a C-locale number as the narrowest of int64, uint64 and
// float64 that holds it exactly and formats it in loc.
func formatArg(arg string, loc numx.Locale, grouping bool) (string, error) {
	if v, err := numx.ParseExact[int64](arg, numx.CLocale); err == nil {
		return numx.Format(v, loc, grouping), nil
	}
	if v, err := numx.ParseExact[uint64](arg, numx.CLocale); err == nil {
		return numx.Format(v, loc, grouping), nil
	}
	v, err := numx.ParseExact[float64](arg, numx.CLocale)
	if err != nil {
		return "", err
	}
	return numx.Format(v, loc, grouping), nil
}

func newNumParseCommand(opts *RootOptions) *cobra.Command {
	var (
		locale string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse localized numbers",
		Long: `Parses each TEXT with the symbols of the locale and prints the value
in the C locale. Parsing stops at the first character that cannot extend
the number unless --strict is set.`,
		Example: `  pqutil num parse --locale de-DE "1.234.567,5"`,
		Args:    cobra.MinimumNArgs(1),
	}

	cmd.RunE = opts.timed("num parse", func(cmd *cobra.Command, args []string) error {
		loc, err := opts.locale(locale)
		if err != nil {
			return err
		}
		opts.logger.Debug("parsing numbers", log.Fields{"locale": loc.String(), "strict": strict})

		out := cmd.OutOrStdout()
		for _, arg := range args {
			v, err := parseArg(arg, loc, strict)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
		}
		return nil
	})

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale name (de-DE, fr_FR.UTF-8, C)")
	cmd.Flags().BoolVar(&strict, "strict", false, "require the whole text to be a number")
	return cmd
}

// parseArg returns the C-locale text of a localized number. Integers are
// kept exact; anything else is read as float64.
func parseArg(arg string, loc numx.Locale, strict bool) (string, error) {
	parse := numx.ParseLocalized[float64]
	if strict {
		parse = numx.ParseExact[float64]
	}
	if n, err := numx.ParseExact[int64](arg, loc); err == nil {
		return numx.Format(n, numx.CLocale, false), nil
	}
	v, err := parse(arg, loc)
	if err != nil {
		return "", err
	}
	return numx.Format(v, numx.CLocale, false), nil
}
