// File: interfaces.go
// Title: Validation Types
// Description: Validator interface, results and their conversion to
//              foundation errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-15 v0.2.0: Context-free validators, field-level results

package validation

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
)

// Validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED"
	CodeFormat   = "VALIDATION_FORMAT"
	CodeRange    = "VALIDATION_RANGE"
	CodeLocale   = "VALIDATION_LOCALE"
)

// Validator checks a single value
type Validator interface {
	Validate(value interface{}) Result
}

// ValidatorFunc adapts a function to Validator
type ValidatorFunc func(value interface{}) Result

// Validate implements Validator
func (f ValidatorFunc) Validate(value interface{}) Result {
	return f(value)
}

// Result is the outcome of one or more validations
type Result struct {
	Valid  bool
	Errors []Error
}

// Error describes one failed check
type Error struct {
	Code     string
	Field    string
	Message  string
	Value    interface{}
	Expected interface{}
}

// OK returns a passing result
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing result with a single error
func Fail(code, field, message string, value interface{}) Result {
	return Result{Errors: []Error{{Code: code, Field: field, Message: message, Value: value}}}
}

// Messages returns all error messages
func (r Result) Messages() []string {
	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		messages[i] = e.Message
	}
	return messages
}

// HasError reports whether the result contains code
func (r Result) HasError(code string) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// ToError converts a failing result to a VALIDATION_FAILED error carrying
// the first failure's field and value. A passing result yields nil.
func (r Result) ToError() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return mdwerror.New("validation failed").WithCode(mdwerror.CodeValidationFailed)
	}

	first := r.Errors[0]
	err := mdwerror.New(first.Message).
		WithCode(mdwerror.CodeValidationFailed).
		WithDetail("rule", first.Code)
	if first.Field != "" {
		err = err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err = err.WithDetail("value", first.Value)
	}
	if first.Expected != nil {
		err = err.WithDetail("expected", first.Expected)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors)).
			WithDetail("allMessages", r.Messages())
	}
	return err
}

// String returns a short human-readable summary
func (r Result) String() string {
	if r.Valid {
		return "Result{valid: true}"
	}
	return fmt.Sprintf("Result{valid: false, errors: %s}", strings.Join(r.Messages(), "; "))
}

// Combine merges results; the combination is valid only if all are
func Combine(results ...Result) Result {
	combined := OK()
	for _, r := range results {
		if !r.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, r.Errors...)
		}
	}
	return combined
}
