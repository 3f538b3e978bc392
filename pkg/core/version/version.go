// ============================================================================
// pqutil - wire-format and formatting primitives
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and the foundation
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Component versions
const (
	// CLI version
	CLI = "0.3.0"

	// Foundation library version
	Foundation = "0.2.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/pqutil/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	CLI        string
	Foundation string
	GitCommit  string
	BuildDate  string
	GoVersion  string
	Platform   string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		CLI:        CLI,
		Foundation: Foundation,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "foundation":
		return Foundation
	default:
		return CLI
	}
}

// Short returns "pqutil v<CLI>"
func (i Info) Short() string {
	return fmt.Sprintf("pqutil v%s", i.CLI)
}
