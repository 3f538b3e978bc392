// Package filex reads whole files and reports failures as foundation
// errors, so callers can branch on NOT_FOUND without inspecting os errors.
package filex
