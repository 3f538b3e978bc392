// Package slicex selects the last element of argument lists and slices.
//
// Last returns its final argument. When all arguments share a type the
// result keeps it; Last2 to Last4 cover short heterogeneous lists without
// boxing:
//
//	n := slicex.Last(3, 5, 7)             // 7, int
//	s := slicex.Last3(1, 2.5, "x")        // "x", string
//	v := slicex.Last[any](1, 2.5, "x")    // "x", any
//
// LastOr handles runtime slices that may be empty, such as optional
// trailing flags.
package slicex
