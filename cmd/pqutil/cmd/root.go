// ============================================================================
// pqutil - wire-format and formatting primitives
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and shared command setup
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/pqutil/foundation/core/config"
	"github.com/msto63/pqutil/foundation/core/log"
	"github.com/msto63/pqutil/foundation/core/validation"
	"github.com/msto63/pqutil/foundation/utils/numx"
	"github.com/msto63/pqutil/foundation/utils/stringx"
)

// RootOptions holds global flags and the state resolved from them
type RootOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Timing     bool

	settings config.Settings
	logger   *log.Logger
}

// NewRootCommand creates the root command for the pqutil CLI
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pqutil",
		Short: "pqutil - wire-format and formatting primitives",
		Long: `pqutil exposes the byte-order, hex, number formatting and text
primitives of the foundation library for protocol debugging.

Commands:
  hex      - render bytes as lowercase hex
  swap     - convert integers between host and network byte order
  num      - format and parse numbers with locale grouping
  text     - trim, lowercase, compare and join strings`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (TOML or YAML)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (json|text|console|logfmt)")
	cmd.PersistentFlags().BoolVar(&opts.Timing, "timing", false, "log the duration of the command")

	cmd.AddCommand(newHexCommand(opts))
	cmd.AddCommand(newSwapCommand(opts))
	cmd.AddCommand(newNumCommand(opts))
	cmd.AddCommand(newTextCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// Execute runs the root command with os.Args
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// setup loads the configuration, applies flag overrides, validates the
// result and builds the logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	loadOptions := config.LoadOptions{
		EnvPrefix: config.DefaultEnvPrefix,
		Defaults:  config.Defaults(),
	}

	cfg := config.New(loadOptions)
	if !stringx.IsBlank(o.ConfigFile) {
		loaded, err := config.LoadWithOptions(o.ConfigFile, loadOptions)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	o.settings = cfg.Settings()
	if cmd.Flags().Changed("log-level") {
		o.settings.LogLevel = o.LogLevel
	}
	if cmd.Flags().Changed("log-format") {
		o.settings.LogFormat = o.LogFormat
	}

	if err := validateSettings(o.settings); err != nil {
		return err
	}

	level, _ := log.ParseLevel(o.settings.LogLevel)
	format, _ := log.ParseFormat(o.settings.LogFormat)
	if o.Timing && level > log.LevelInfo {
		level = log.LevelInfo
	}

	o.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "pqutil",
	})
	o.logger.Debug("configuration resolved", log.Fields{
		"config":     cfg.FilePath(),
		"locale":     o.settings.Locale,
		"grouping":   o.settings.Grouping,
		"log_level":  level.String(),
		"log_format": format.String(),
	})
	return nil
}

func validateSettings(s config.Settings) error {
	levelRule := validation.NewChain(
		validation.Required("log level"),
		validation.Check("log level", validation.CodeFormat, func(v string) error {
			_, err := log.ParseLevel(v)
			return err
		}),
	).StopOnFirstError(true)

	return validation.Combine(
		levelRule.Validate(s.LogLevel),
		validation.OneOf("log format", "json", "text", "console", "logfmt").Validate(s.LogFormat),
		validation.Locale("locale").Validate(s.Locale),
	).ToError()
}

// locale resolves the locale flag, falling back to the configured locale
// and then to the host locale.
func (o *RootOptions) locale(flag string) (numx.Locale, error) {
	name := flag
	if stringx.IsBlank(name) {
		name = o.settings.Locale
	}
	if stringx.IsBlank(name) {
		return numx.HostLocale(), nil
	}
	if err := validation.Locale("locale").Validate(name).ToError(); err != nil {
		return numx.Locale{}, err
	}
	return numx.ParseLocale(name)
}

// timed wraps a command body in a log.Timer when --timing is set
func (o *RootOptions) timed(operation string, run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !o.Timing {
			return run(cmd, args)
		}

		timer := log.NewTimer(o.logger, operation).
			WithLevel(log.LevelInfo).
			WithField("args", len(args))
		if err := run(cmd, args); err != nil {
			timer.StopWithError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}
