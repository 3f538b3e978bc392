// File: rules.go
// Title: Common Validators
// Description: Reusable validators for string-valued options.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package validation

import (
	"fmt"
	"strings"

	"github.com/msto63/pqutil/foundation/core/i18n"
	"github.com/msto63/pqutil/foundation/utils/stringx"
)

// Required fails on nil and blank strings
func Required(field string) Validator {
	return ValidatorFunc(func(value interface{}) Result {
		if value == nil {
			return Fail(CodeRequired, field, field+" is required", nil)
		}
		if s, ok := value.(string); ok && stringx.IsBlank(s) {
			return Fail(CodeRequired, field, field+" is required", s)
		}
		return OK()
	})
}

// OneOf accepts values whose string form is in allowed, ignoring case
func OneOf(field string, allowed ...string) Validator {
	return ValidatorFunc(func(value interface{}) Result {
		s := fmt.Sprint(value)
		for _, a := range allowed {
			if stringx.IEquals(s, a) {
				return OK()
			}
		}
		r := Fail(CodeRange, field,
			fmt.Sprintf("invalid %s %q, expected one of %s", field, s, strings.Join(allowed, ", ")), value)
		r.Errors[0].Expected = allowed
		return r
	})
}

// Locale accepts empty strings, the classic locale names, and anything
// i18n can normalize.
func Locale(field string) Validator {
	return ValidatorFunc(func(value interface{}) Result {
		s, _ := value.(string)
		if stringx.IsBlank(s) || i18n.FromPOSIX(s) != "" {
			return OK()
		}
		switch stringx.TrimCopy(s) {
		case "C", "POSIX", "C.UTF-8":
			return OK()
		}
		return Fail(CodeLocale, field, fmt.Sprintf("invalid %s %q", field, s), s)
	})
}

// Check wraps a parse function: the value passes when check returns nil
func Check(field, code string, check func(string) error) Validator {
	return ValidatorFunc(func(value interface{}) Result {
		s := fmt.Sprint(value)
		if err := check(s); err != nil {
			return Fail(code, field, fmt.Sprintf("invalid %s %q: %v", field, s, err), s)
		}
		return OK()
	})
}
