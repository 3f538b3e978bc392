// File: benchmark_test.go
// Title: Performance Benchmarks for numx
// Description: Benchmarks for formatting and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package numx

import "testing"

func BenchmarkFormatIntClassic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Format(int64(i), CLocale, false)
	}
}

func BenchmarkFormatIntGrouped(b *testing.B) {
	de := MustParseLocale("de-DE")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format(1234567890, de, true)
	}
}

func BenchmarkFormatFloatGrouped(b *testing.B) {
	en := MustParseLocale("en")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format(1234567.25, en, true)
	}
}

func BenchmarkParseInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse[int64]("  -1234567890")
	}
}

func BenchmarkParseLocale(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseLocale("de_DE.UTF-8")
	}
}
