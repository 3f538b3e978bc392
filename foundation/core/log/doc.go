// File: doc.go
// Title: Structured Logging
// Description: Leveled logging with persistent fields, JSON/text/console/
//              logfmt output and integration with the foundation error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Timer built on timex.Stopwatch, Bytes field for wire dumps

// Package log provides structured, leveled logging for pqutil.
//
// # Usage
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Name:   "pqutil",
//	})
//
//	logger.Debug("decoded message", log.Bytes("payload", buf))
//
//	timer := logger.StartTimer("num.format")
//	out := numx.Format(v, loc, true)
//	timer.Stop() // "num.format completed" with duration_ms
//
// LogError picks the level from the severity of a foundation error: low
// severity logs at info, medium at warn, high and critical at error.
package log
