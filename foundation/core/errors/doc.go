// File: doc.go
// Title: Standard Error Constructors for the Foundation Packages
// Description: Builds coded errors (see package core/error) with a consistent
//              shape: module and operation recorded in the details, a module
//              specific code, and a severity derived from the code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-12 v0.2.0: Constructors for numx, bytex and config

// Package errors provides the standard error constructors for the foundation
// packages.
//
// # Usage
//
//	if len(b) < 4 {
//	    return 0, errors.BytexShortBuffer("read_int32", 4, len(b))
//	}
//
//	v, err := strconv.ParseInt(prefix, 10, 64)
//	if err != nil {
//	    return 0, errors.NumxParseFailed("parse", text, "int64").Cause(err).Build()
//	}
//
// Errors built here can be matched with the standard library:
//
//	if stderrors.Is(err, errors.Sentinel(mdwerror.CodeNumxOutOfRange)) { ... }
package errors
