package core

import "skyray/pkg/fmath"

// Vec3 represents a 3D vector. It is a value type: every operation
// returns a fresh vector and the in-place variants touch only the
// receiver's own storage.
type Vec3 struct {
	X, Y, Z fmath.Float
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z fmath.Float) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Component returns the component at index i for i in [0,3).
// It panics for any other index.
func (v Vec3) Component(i int) fmath.Float {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("core: vec3 component index out of range")
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar fmath.Float) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector scaled by the reciprocal of a scalar.
// A zero divisor is not guarded; the result propagates Inf/NaN.
func (v Vec3) Divide(scalar fmath.Float) Vec3 {
	return v.Multiply(1 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// AddInPlace adds other to the receiver's components and returns the receiver
func (v *Vec3) AddInPlace(other Vec3) *Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// MultiplyInPlace scales the receiver's components and returns the receiver
func (v *Vec3) MultiplyInPlace(scalar fmath.Float) *Vec3 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

// DivideInPlace scales the receiver by the reciprocal of a scalar and
// returns the receiver. Like the other in-place operators it mutates.
func (v *Vec3) DivideInPlace(scalar fmath.Float) *Vec3 {
	return v.MultiplyInPlace(1 / scalar)
}

// Length returns the magnitude of the vector
func (v Vec3) Length() fmath.Float {
	return fmath.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() fmath.Float {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) fmath.Float {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors, right-handed
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction. The length is
// not checked; a zero vector propagates NaN.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}
