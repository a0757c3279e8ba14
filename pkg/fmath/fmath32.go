//go:build math32

package fmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar type all vector math is built on.
type Float = float32

// Epsilon is the difference between 1 and the next representable Float.
var Epsilon = Float(math.Nextafter32(1, 2) - 1)

// Sqrt returns the square root of x.
func Sqrt(x Float) Float {
	return math32.Sqrt(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x Float) Float {
	return math32.Floor(x)
}

// Abs returns the absolute value of x.
func Abs(x Float) Float {
	return math32.Abs(x)
}
