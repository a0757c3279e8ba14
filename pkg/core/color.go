package core

import (
	"fmt"
	"io"

	"skyray/pkg/fmath"
)

// Point3 marks a Vec3 used as a position in space.
type Point3 = Vec3

// Color marks a Vec3 whose components are RGB intensities, nominally in
// [0,1). Component-wise blending is Vec3.MultiplyVec.
type Color = Vec3

// colorScale maps [0,1) onto [0,255] so that no in-range channel ever
// rounds past 255.
const colorScale = 255.999

// Lerp returns the linear blend (1-t)*a + t*b.
func Lerp(a, b Vec3, t fmath.Float) Vec3 {
	return a.Multiply(1 - t).Add(b.Multiply(t))
}

// WriteColor writes c to w as a space-separated RGB triplet followed by
// a newline, each channel scaled by floor(255.999*channel). Channels are
// not clamped: values outside [0,1) produce out-of-range integers in the
// output.
func WriteColor(w io.Writer, c Color) error {
	r := int(fmath.Floor(colorScale * c.X))
	g := int(fmath.Floor(colorScale * c.Y))
	b := int(fmath.Floor(colorScale * c.Z))

	_, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	return err
}
