// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the foundation packages.
//              Generic codes classify broad failure kinds, module codes
//              (NUMX_*, BYTEX_*) identify the primitive that failed.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Replaced platform codes with parse, wire and config codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Numeric conversion
	CodeNumxParseFailed   Code = "NUMX_PARSE_FAILED"
	CodeNumxOutOfRange    Code = "NUMX_OUT_OF_RANGE"
	CodeNumxInvalidLocale Code = "NUMX_INVALID_LOCALE"

	// Wire format
	CodeBytexShortBuffer Code = "BYTEX_SHORT_BUFFER"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeNumxParseFailed, CodeNumxOutOfRange, CodeNumxInvalidLocale,
		CodeBytexShortBuffer:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	case CodeNumxParseFailed, CodeNumxOutOfRange, CodeNumxInvalidLocale:
		return "numeric"
	case CodeBytexShortBuffer:
		return "wire"
	default:
		return "generic"
	}
}
