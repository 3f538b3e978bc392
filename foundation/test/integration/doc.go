// File: doc.go
// Title: pqutil Foundation Integration Tests
// Description: Verifies the interaction between foundation modules: wire
//              values flowing through bytex and numx, errors from different
//              modules sharing one shape, and configuration driving the
//              logger and the numeric locale.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of integration test suite
// - 2026-10-16 v0.2.0: Rewritten around wire and locale data flow

// Package integration provides integration tests for the pqutil foundation library.
//
// # Module Integration Tests
//
// module_integration_test.go covers:
//   - Wire decoding followed by localized rendering
//   - Configuration to locale and logger
//   - Timing through log.Timer and timex.Stopwatch
//
// # Error Integration Tests
//
// error_integration_test.go covers:
//   - Module tag, code and severity of errors from numx, bytex and config
//   - errors.Is matching against code sentinels
//   - Validation results converted to foundation errors
//
// # Running
//
//	go test ./test/integration/...
package integration
