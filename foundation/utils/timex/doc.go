// Package timex provides a stopwatch for timing operations.
//
//	sw := timex.NewStopwatch()
//	runQuery()
//	fmt.Printf("%.3fs\n", sw.Elapsed())
//
// Readings use Go's monotonic clock, so wall clock adjustments between
// start and reading do not affect them.
package timex
