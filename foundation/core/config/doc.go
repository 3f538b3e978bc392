// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Reduced to loading, getters and pqutil settings

/*
Package config loads configuration files for pqutil.

Files are TOML (github.com/BurntSushi/toml) or YAML (gopkg.in/yaml.v3);
the format follows the extension unless LoadOptions.Format says otherwise.
Values are addressed with dotted keys:

	# pqutil.toml
	[numx]
	locale = "de_DE.UTF-8"
	grouping = false

	[log]
	level = "debug"
	format = "logfmt"

	cfg, err := config.LoadWithOptions("pqutil.toml", config.LoadOptions{
		EnvPrefix: config.DefaultEnvPrefix,
		Defaults:  config.Defaults(),
	})
	locale := cfg.GetString("numx.locale")

With an environment prefix, PQUTIL_NUMX_LOCALE overrides numx.locale. An
empty variable counts as unset.

Errors are foundation errors: a missing file has code NOT_FOUND, read and
parse failures have CONFIG_ERROR with the underlying cause attached.
*/
package config
