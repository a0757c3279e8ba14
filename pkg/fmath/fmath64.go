//go:build !math32

package fmath

import "math"

// Float is the scalar type all vector math is built on.
type Float = float64

// Epsilon is the difference between 1 and the next representable Float.
var Epsilon = Float(math.Nextafter(1, 2) - 1)

// Sqrt returns the square root of x.
func Sqrt(x Float) Float {
	return math.Sqrt(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x Float) Float {
	return math.Floor(x)
}

// Abs returns the absolute value of x.
func Abs(x Float) Float {
	return math.Abs(x)
}
