// ============================================================================
// pqutil - wire-format and formatting primitives
// ============================================================================
//
// Package:     cmd
// Description: hex command
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/pqutil/foundation/core/log"
	"github.com/msto63/pqutil/foundation/utils/bytex"
	"github.com/msto63/pqutil/foundation/utils/filex"
)

func newHexCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "hex [text...]",
		Short: "Render bytes as lowercase hex",
		Long: `Renders each argument as lowercase hex, one line per argument.

With --file the contents of the file are rendered instead. Without
arguments and without --file the bytes are read from standard input.`,
		Example: `  pqutil hex abc
  pqutil hex --file dump.bin`,
	}

	cmd.RunE = opts.timed("hex", func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if file != "" {
			data, err := filex.ReadFile(file)
			if err != nil {
				return err
			}
			opts.logger.Debug("rendering file", log.Fields{"file": file, "size": filex.FormatSize(int64(len(data)))})
			fmt.Fprintln(out, bytex.HexToStr(data))
			return nil
		}

		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			fmt.Fprintln(out, bytex.HexToStr(data))
			return nil
		}

		for _, arg := range args {
			fmt.Fprintln(out, bytex.HexToStr([]byte(arg)))
		}
		return nil
	})

	cmd.Flags().StringVarP(&file, "file", "f", "", "render the contents of a file")
	return cmd
}
