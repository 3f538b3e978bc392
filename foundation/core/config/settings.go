// File: settings.go
// Title: pqutil Settings
// Description: Typed view of the configuration keys read by the pqutil
//              command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package config

// Keys read by pqutil
const (
	KeyNumxLocale   = "numx.locale"
	KeyNumxGrouping = "numx.grouping"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
)

// DefaultEnvPrefix is the prefix of environment overrides (PQUTIL_NUMX_LOCALE)
const DefaultEnvPrefix = "PQUTIL"

// Settings are the resolved pqutil options
type Settings struct {
	// Locale is a locale name; empty selects the host locale
	Locale    string
	Grouping  bool
	LogLevel  string
	LogFormat string
}

// Defaults returns the default values as a nested table for LoadOptions
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"numx": map[string]interface{}{
			"locale":   "",
			"grouping": true,
		},
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
	}
}

// Settings resolves the pqutil keys with defaults applied
func (c *Config) Settings() Settings {
	return Settings{
		Locale:    c.GetString(KeyNumxLocale),
		Grouping:  c.GetBool(KeyNumxGrouping, true),
		LogLevel:  c.GetString(KeyLogLevel, "warn"),
		LogFormat: c.GetString(KeyLogFormat, "text"),
	}
}
