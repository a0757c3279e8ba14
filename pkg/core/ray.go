package core

import "skyray/pkg/fmath"

// Ray represents a ray with an origin and direction. The direction is
// not required to be unit length; normalization is the consumer's
// choice.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t fmath.Float) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
