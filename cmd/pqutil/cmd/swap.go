// ============================================================================
// pqutil - wire-format and formatting primitives
// ============================================================================
//
// Package:     cmd
// Description: swap command
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/pqutil/foundation/core/log"
	"github.com/msto63/pqutil/foundation/core/validation"
	"github.com/msto63/pqutil/foundation/utils/bytex"
	"github.com/msto63/pqutil/foundation/utils/numx"
)

// swapResult is one swapped value with the big-endian encoding of its
// host-order form.
type swapResult struct {
	Input  string
	Result string
	Wire   string
}

func newSwapCommand(opts *RootOptions) *cobra.Command {
	var (
		width  int
		toHost bool
	)

	cmd := &cobra.Command{
		Use:   "swap VALUE",
		Short: "Convert an integer between host and network byte order",
		Long: `Swaps VALUE between host and network byte order and prints the
result with the big-endian wire bytes of the host-order value.

VALUE is read as a host-order integer unless --to-host is set, in which
case it is read as a network-order bit pattern.`,
		Example: `  pqutil swap --width 32 1
  pqutil swap --width 16 --to-host 256`,
		Args: cobra.ExactArgs(1),
	}

	cmd.RunE = opts.timed("swap", func(cmd *cobra.Command, args []string) error {
		rule := validation.OneOf("width", "16", "32", "64")
		if err := rule.Validate(strconv.Itoa(width)).ToError(); err != nil {
			return err
		}

		res, err := swapValue(args[0], width, !toHost)
		if err != nil {
			return err
		}

		opts.logger.Debug("swapped value", log.Fields{
			"width":      width,
			"to_network": !toHost,
			"host_big":   bytex.IsBigEndian(),
		})

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "input:  %s\n", res.Input)
		fmt.Fprintf(out, "result: %s\n", res.Result)
		fmt.Fprintf(out, "wire:   %s\n", res.Wire)
		return nil
	})

	cmd.Flags().IntVarP(&width, "width", "w", 32, "integer width in bits (16|32|64)")
	cmd.Flags().BoolVar(&toHost, "to-host", false, "convert from network to host order")
	return cmd
}

// swapValue parses text as a signed integer of the given width and swaps it
func swapValue(text string, width int, toNetwork bool) (swapResult, error) {
	switch width {
	case 16:
		v, err := numx.ParseExact[int16](text, numx.CLocale)
		if err != nil {
			return swapResult{}, err
		}
		swapped := bytex.Swap16(v, toNetwork)
		host := hostOrder(v, swapped, toNetwork)
		buf := make([]byte, 2)
		if err := bytex.PutInt16(buf, host); err != nil {
			return swapResult{}, err
		}
		return newSwapResult(v, swapped, buf), nil

	case 32:
		v, err := numx.ParseExact[int32](text, numx.CLocale)
		if err != nil {
			return swapResult{}, err
		}
		swapped := bytex.Swap32(v, toNetwork)
		host := hostOrder(v, swapped, toNetwork)
		buf := make([]byte, 4)
		if err := bytex.PutInt32(buf, host); err != nil {
			return swapResult{}, err
		}
		return newSwapResult(v, swapped, buf), nil

	default:
		v, err := numx.ParseExact[int64](text, numx.CLocale)
		if err != nil {
			return swapResult{}, err
		}
		swapped := bytex.Swap64(v, toNetwork)
		host := hostOrder(v, swapped, toNetwork)
		buf := make([]byte, 8)
		if err := bytex.PutInt64(buf, host); err != nil {
			return swapResult{}, err
		}
		return newSwapResult(v, swapped, buf), nil
	}
}

func hostOrder[T int16 | int32 | int64](input, swapped T, toNetwork bool) T {
	if toNetwork {
		return input
	}
	return swapped
}

func newSwapResult[T int16 | int32 | int64](input, swapped T, wire []byte) swapResult {
	return swapResult{
		Input:  numx.Format(input, numx.CLocale, false),
		Result: numx.Format(swapped, numx.CLocale, false),
		Wire:   bytex.HexToStr(wire),
	}
}
