// ============================================================================
// pqutil - wire-format and formatting primitives
// ============================================================================
//
// Package:     cmd
// Description: text command group (trim, lower, iequals, join)
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/pqutil/foundation/utils/slicex"
	"github.com/msto63/pqutil/foundation/utils/stringx"
)

func newTextCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "ASCII text helpers",
		Long: `ASCII text helpers. Only the six ASCII whitespace bytes are trimmed
and only A-Z are folded; all other bytes pass through unchanged.`,
	}

	cmd.AddCommand(newTextTrimCommand(opts))
	cmd.AddCommand(newTextLowerCommand(opts))
	cmd.AddCommand(newTextIEqualsCommand(opts))
	cmd.AddCommand(newTextJoinCommand(opts))
	return cmd
}

func newTextTrimCommand(opts *RootOptions) *cobra.Command {
	var left, right bool

	cmd := &cobra.Command{
		Use:   "trim TEXT...",
		Short: "Trim whitespace, printing each result in brackets",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = opts.timed("text trim", func(cmd *cobra.Command, args []string) error {
		trim := stringx.TrimCopy
		switch {
		case left && !right:
			trim = stringx.LTrimCopy
		case right && !left:
			trim = stringx.RTrimCopy
		}
		for _, arg := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", trim(arg))
		}
		return nil
	})

	cmd.Flags().BoolVar(&left, "left", false, "trim the left side only")
	cmd.Flags().BoolVar(&right, "right", false, "trim the right side only")
	return cmd
}

func newTextLowerCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lower TEXT...",
		Short: "Lowercase ASCII letters",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.RunE = opts.timed("text lower", func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			fmt.Fprintln(cmd.OutOrStdout(), stringx.ToLower(arg))
		}
		return nil
	})
	return cmd
}

func newTextIEqualsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iequals A B",
		Short: "Compare two strings ignoring ASCII case",
		Args:  cobra.ExactArgs(2),
	}

	cmd.RunE = opts.timed("text iequals", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(stringx.IEquals(args[0], args[1])))
		return nil
	})
	return cmd
}

func newTextJoinCommand(opts *RootOptions) *cobra.Command {
	var seps []string

	cmd := &cobra.Command{
		Use:   "join [PART...]",
		Short: "Join parts with a separator",
		Long: `Joins the parts with the separator given by --sep. When --sep is
repeated the last occurrence wins.`,
		Example: `  pqutil text join --sep , a b c`,
	}

	cmd.RunE = opts.timed("text join", func(cmd *cobra.Command, args []string) error {
		sep := slicex.LastOr(seps, ",")
		fmt.Fprintln(cmd.OutOrStdout(), stringx.Join(args, sep))
		return nil
	})

	cmd.Flags().StringArrayVarP(&seps, "sep", "s", nil, "separator (default \",\")")
	return cmd
}
