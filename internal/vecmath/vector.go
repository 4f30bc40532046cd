// Package vecmath provides the 3D vector and 3x3 matrix algebra the
// simulation core is built on. Everything is a plain value type and every
// operation returns a new value, so callers can chain transforms without
// worrying about aliasing.
package vecmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateVector is the panic value raised when a zero-length vector
// is normalized. A zero vector has no direction, and asking for one always
// means an upstream invariant broke, so the failure is loud.
var ErrDegenerateVector = errors.New("vecmath: cannot normalize a zero-length vector")

// Vector3 is a 3D vector with float64 components.
type Vector3 struct {
	X, Y, Z float64
}

// Canonical vectors.
var (
	Zero = Vector3{}
	One  = Vector3{X: 1, Y: 1, Z: 1}
)

// New creates a vector from its components.
func New(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by factor.
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns the unit vector pointing in v's direction.
// It panics with ErrDegenerateVector when v is the zero vector.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		panic(ErrDegenerateVector)
	}
	return v.Scale(1 / length)
}

// RotateX rotates v by angle radians about the X axis through the origin.
func (v Vector3) RotateX(angle float64) Vector3 {
	return RotationX(angle).Product(v)
}

// RotateY rotates v by angle radians about the Y axis through the origin.
func (v Vector3) RotateY(angle float64) Vector3 {
	return RotationY(angle).Product(v)
}

// RotateZ rotates v by angle radians about the Z axis through the origin.
func (v Vector3) RotateZ(angle float64) Vector3 {
	return RotationZ(angle).Product(v)
}

// RotateXAround rotates v by angle radians about the X axis through pivot.
func (v Vector3) RotateXAround(angle float64, pivot Vector3) Vector3 {
	return v.Sub(pivot).RotateX(angle).Add(pivot)
}

// RotateYAround rotates v by angle radians about the Y axis through pivot.
func (v Vector3) RotateYAround(angle float64, pivot Vector3) Vector3 {
	return v.Sub(pivot).RotateY(angle).Add(pivot)
}

// RotateZAround rotates v by angle radians about the Z axis through pivot.
func (v Vector3) RotateZAround(angle float64, pivot Vector3) Vector3 {
	return v.Sub(pivot).RotateZ(angle).Add(pivot)
}

// String implements fmt.Stringer for readable logs and test failures.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
