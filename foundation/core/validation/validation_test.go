// File: validation_test.go
// Title: Validation Tests
// Description: Tests for results, chains and the common validators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15

package validation

import (
	"errors"
	"testing"

	mdwerror "github.com/msto63/pqutil/foundation/core/error"
)

func TestResultToError(t *testing.T) {
	if err := OK().ToError(); err != nil {
		t.Errorf("OK().ToError() = %v, want nil", err)
	}

	r := Combine(
		Fail(CodeRange, "width", "bad width", 12),
		OK(),
		Fail(CodeRequired, "value", "value is required", nil),
	)
	if r.Valid {
		t.Fatal("combined result should be invalid")
	}

	err := r.ToError()
	if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Fatalf("ToError() code = %s", mdwerror.GetCode(err))
	}

	var coded *mdwerror.Error
	if !errors.As(err, &coded) {
		t.Fatal("ToError() should return *error.Error")
	}
	details := coded.Details()
	if details["field"] != "width" || details["rule"] != CodeRange || details["totalErrors"] != 2 {
		t.Errorf("details = %v", details)
	}
	if coded.Message() != "bad width" {
		t.Errorf("message = %q", coded.Message())
	}
}

func TestChain(t *testing.T) {
	calls := 0
	counting := ValidatorFunc(func(value interface{}) Result {
		calls++
		return OK()
	})

	chain := NewChain(Required("width"), OneOf("width", "16", "32", "64")).Add(counting)
	if chain.Len() != 3 {
		t.Errorf("Len() = %d", chain.Len())
	}

	if r := chain.Validate("32"); !r.Valid {
		t.Errorf("Validate(32) = %v", r)
	}

	r := chain.Validate("")
	if len(r.Errors) != 2 {
		t.Errorf("collecting chain errors = %d, want 2", len(r.Errors))
	}

	calls = 0
	r = chain.StopOnFirstError(true).Validate("")
	if len(r.Errors) != 1 || !r.HasError(CodeRequired) {
		t.Errorf("stopping chain result = %v", r)
	}
	if calls != 0 {
		t.Error("chain ran validators after the first failure")
	}
}

func TestOneOf(t *testing.T) {
	v := OneOf("format", "json", "text")
	if !v.Validate("JSON").Valid {
		t.Error("OneOf should ignore case")
	}
	r := v.Validate("xml")
	if r.Valid || !r.HasError(CodeRange) {
		t.Errorf("OneOf(xml) = %v", r)
	}
	if v.Validate(16).Valid {
		t.Error("OneOf(16) should fail")
	}
}

func TestLocale(t *testing.T) {
	v := Locale("locale")
	for _, ok := range []string{"", "C", "POSIX", "de_DE.UTF-8", "en-US", "fr"} {
		if !v.Validate(ok).Valid {
			t.Errorf("Locale(%q) should pass", ok)
		}
	}
	for _, bad := range []string{"german", "12"} {
		if r := v.Validate(bad); r.Valid || !r.HasError(CodeLocale) {
			t.Errorf("Locale(%q) = %v", bad, r)
		}
	}
}

func TestCheck(t *testing.T) {
	v := Check("level", CodeFormat, func(s string) error {
		if s != "debug" {
			return errors.New("unknown")
		}
		return nil
	})
	if !v.Validate("debug").Valid {
		t.Error("Check(debug) should pass")
	}
	r := v.Validate("loud")
	if r.Valid || r.Errors[0].Message != `invalid level "loud": unknown` {
		t.Errorf("Check(loud) = %v", r)
	}
}
