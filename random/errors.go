package random

import "fmt"

// RangeError indicates that a bounded sampling operation was invoked with
// an invalid interval: either min exceeds max, or a rune bound is not a
// legal code point. It is returned synchronously, before any bits are
// consumed; no partial value accompanies it.
type RangeError struct {
	// Op is the Source method that rejected the interval.
	Op string

	// Msg describes which part of the interval contract was violated.
	Msg string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("random: %s: %s", e.Op, e.Msg)
}

func invertedRangeError(op string, min, max any) *RangeError {
	return &RangeError{
		Op:  op,
		Msg: fmt.Sprintf("min %v exceeds max %v", min, max),
	}
}

func invalidRuneError(op string, r rune) *RangeError {
	return &RangeError{
		Op:  op,
		Msg: fmt.Sprintf("bound %#U is not a valid rune", r),
	}
}
