// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the ErrorBuilder and the module-specific constructors
//              used by numx, bytex and config so every foundation error has
//              the same shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-12 v0.2.0: Module constructors for numx, bytex and config

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
)

// Module names recorded in error details
const (
	ModuleNumx    = "numx"
	ModuleBytex   = "bytex"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleI18n    = "i18n"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	code := eb.code
	if code == "" {
		code = mdwerror.Code(strings.ToUpper(eb.module) + "_OPERATION_FAILED")
	}

	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithDetail("module", eb.module)
	if eb.operation != "" {
		qualified := eb.module + "." + eb.operation
		err = err.WithOperation(qualified).WithDetail("operation", eb.operation)
	}

	// Severity follows the code unless overridden
	severity := mdwerror.GetSeverityFromCode(code)
	if eb.severity != nil {
		severity = *eb.severity
	}

	return err.
		WithDetails(eb.details).
		WithCode(code).
		WithSeverity(severity)
}

// Sentinel returns an error that matches any foundation error with the
// given code under errors.Is.
func Sentinel(code mdwerror.Code) error {
	return mdwerror.New(string(code)).WithCode(code)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NumxParseFailed starts a parse error for text that holds no valid number
// of the target type. Callers may attach a cause before building.
func NumxParseFailed(operation, input, typeName string) *ErrorBuilder {
	return NewErrorBuilder(ModuleNumx).
		Operation(operation).
		Message(fmt.Sprintf("cannot parse %q as %s", input, typeName)).
		Code(mdwerror.CodeNumxParseFailed).
		Detail("input", input).
		Detail("type", typeName)
}

// NumxOutOfRange creates an error for numeric text that overflows the target type
func NumxOutOfRange(operation, input, typeName string) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumx).
		Operation(operation).
		Message(fmt.Sprintf("value %q out of range for %s", input, typeName)).
		Code(mdwerror.CodeNumxOutOfRange).
		Detail("input", input).
		Detail("type", typeName).
		Build()
}

// NumxInvalidLocale creates an error for an unknown or malformed locale name
func NumxInvalidLocale(locale string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleNumx).
		Operation("parse_locale").
		Message(fmt.Sprintf("invalid locale %q", locale)).
		Code(mdwerror.CodeNumxInvalidLocale).
		Cause(cause).
		Detail("locale", locale).
		Build()
}

// BytexShortBuffer creates an error for a wire buffer smaller than the value width
func BytexShortBuffer(operation string, need, got int) *mdwerror.Error {
	return NewErrorBuilder(ModuleBytex).
		Operation(operation).
		Message(fmt.Sprintf("buffer too short: need %d bytes, got %d", need, got)).
		Code(mdwerror.CodeBytexShortBuffer).
		Detail("need", need).
		Detail("got", got).
		Build()
}

// ConfigLoadFailed wraps a read or parse failure of a configuration source
func ConfigLoadFailed(operation, source string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message(fmt.Sprintf("failed to load configuration from %s", source)).
		Code(mdwerror.CodeConfigError).
		Cause(cause).
		Detail("source", source).
		Build()
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if e, ok := err.(*mdwerror.Error); ok {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// IsModuleError checks if an error originates from the given module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
