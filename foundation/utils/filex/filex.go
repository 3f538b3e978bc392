// File: filex.go
// Title: File Utilities
// Description: File reading with coded errors and size helpers for the
//              command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-16 v0.2.0: Reduced to reading and size helpers, foundation errors

package filex

import (
	"fmt"
	"os"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the entire file. A missing file yields NOT_FOUND, a
// directory INVALID_INPUT.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.Newf("file not found: %s", path).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("filex.ReadFile").
			WithDetail("path", path)
	}
	if err == nil && info.IsDir() {
		return nil, mdwerror.Newf("%s is a directory", path).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.ReadFile").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("failed to read file %s", path)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("filex.ReadFile").
			WithDetail("path", path)
	}
	return content, nil
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
