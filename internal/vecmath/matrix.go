package vecmath

import "math"

// Matrix3 is a 3x3 matrix stored as three column vectors, so the product
// with a vector is U*v.X + V*v.Y + W*v.Z.
type Matrix3 struct {
	U, V, W Vector3
}

// NewMatrix3 builds a matrix from its column vectors.
func NewMatrix3(u, v, w Vector3) Matrix3 {
	return Matrix3{U: u, V: v, W: w}
}

// Identity is the 3x3 identity matrix.
var Identity = Matrix3{
	U: Vector3{X: 1},
	V: Vector3{Y: 1},
	W: Vector3{Z: 1},
}

// Product returns the matrix-vector product m*v.
func (m Matrix3) Product(v Vector3) Vector3 {
	return m.U.Scale(v.X).Add(m.V.Scale(v.Y)).Add(m.W.Scale(v.Z))
}

// Mul returns the matrix product m*n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	return Matrix3{
		U: m.Product(n.U),
		V: m.Product(n.V),
		W: m.Product(n.W),
	}
}

// RotationX returns the right-handed rotation matrix about the X axis.
func RotationX(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		U: Vector3{X: 1},
		V: Vector3{Y: cos, Z: sin},
		W: Vector3{Y: -sin, Z: cos},
	}
}

// RotationY returns the right-handed rotation matrix about the Y axis.
func RotationY(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		U: Vector3{X: cos, Z: -sin},
		V: Vector3{Y: 1},
		W: Vector3{X: sin, Z: cos},
	}
}

// RotationZ returns the right-handed rotation matrix about the Z axis.
func RotationZ(angle float64) Matrix3 {
	sin, cos := math.Sincos(angle)
	return Matrix3{
		U: Vector3{X: cos, Y: sin},
		V: Vector3{X: -sin, Y: cos},
		W: Vector3{Z: 1},
	}
}
