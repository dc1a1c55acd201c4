// Package conv provides checked integer narrowing for the engine.
//
// Conversions panic on overflow: an out-of-range value here means a
// programming error (state counts are bounded by compile-time limits),
// not a recoverable condition.
package conv

import "math"

// IntToUint32 converts an int to uint32, panicking if the value is
// negative or exceeds math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Compare as uint so the bound works on 32-bit platforms where
	// int cannot hold math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
