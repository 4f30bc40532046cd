package vecmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vecAlmostEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestVectorArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(-4, 5, 0.5)

	if got := a.Add(b); !vecAlmostEqual(got, New(-3, 7, 3.5)) {
		t.Errorf("Add() = %v, expected (-3, 7, 3.5)", got)
	}
	if got := a.Sub(b); !vecAlmostEqual(got, New(5, -3, 2.5)) {
		t.Errorf("Sub() = %v, expected (5, -3, 2.5)", got)
	}
	if got := a.Scale(-2); !vecAlmostEqual(got, New(-2, -4, -6)) {
		t.Errorf("Scale() = %v, expected (-2, -4, -6)", got)
	}
	if got := a.Add(Zero); got != a {
		t.Errorf("Add(Zero) = %v, expected %v", got, a)
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector3
		expected float64
	}{
		{"orthogonal", New(1, 0, 0), New(0, 1, 0), 0},
		{"parallel", New(2, 0, 0), New(3, 0, 0), 6},
		{"opposite", New(0, 0, 1), New(0, 0, -2), -2},
		{"mixed", New(1, 2, 3), New(4, -5, 6), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Dot(tt.b); !almostEqual(got, tt.expected) {
				t.Errorf("Dot() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector3
		expected Vector3
	}{
		{"x cross y", New(1, 0, 0), New(0, 1, 0), New(0, 0, 1)},
		{"y cross z", New(0, 1, 0), New(0, 0, 1), New(1, 0, 0)},
		{"z cross x", New(0, 0, 1), New(1, 0, 0), New(0, 1, 0)},
		{"anticommutes", New(0, 1, 0), New(1, 0, 0), New(0, 0, -1)},
		{"parallel is zero", New(2, 2, 2), New(1, 1, 1), Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); !vecAlmostEqual(got, tt.expected) {
				t.Errorf("Cross() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCrossOrthogonality(t *testing.T) {
	a := New(1.5, -2, 0.25)
	b := New(3, 1, -1)
	c := a.Cross(b)

	if !almostEqual(c.Dot(a), 0) || !almostEqual(c.Dot(b), 0) {
		t.Errorf("Cross() = %v is not orthogonal to both operands", c)
	}
}

func TestLength(t *testing.T) {
	if got := New(3, 4, 0).Length(); !almostEqual(got, 5) {
		t.Errorf("Length() = %v, expected 5", got)
	}
	if got := One.LengthSquared(); !almostEqual(got, 3) {
		t.Errorf("LengthSquared() = %v, expected 3", got)
	}
	if got := Zero.Length(); got != 0 {
		t.Errorf("Length() of zero = %v, expected 0", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
	}{
		{"axis", New(0, 0, 7)},
		{"negative", New(-3, 0, 0)},
		{"diagonal", New(1, 1, 1)},
		{"tiny", New(1e-6, -2e-6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			if !almostEqual(got.Length(), 1) {
				t.Errorf("Normalize().Length() = %v, expected 1", got.Length())
			}
			// Direction must be preserved.
			if got.Dot(tt.v) <= 0 {
				t.Errorf("Normalize() = %v flipped direction of %v", got, tt.v)
			}
		})
	}
}

func TestNormalizeZeroPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Normalize() of zero vector did not panic")
		}
		if r != ErrDegenerateVector {
			t.Errorf("panic value = %v, expected ErrDegenerateVector", r)
		}
	}()
	Zero.Normalize()
}

func TestAxisRotations(t *testing.T) {
	quarter := math.Pi / 2

	tests := []struct {
		name     string
		got      Vector3
		expected Vector3
	}{
		{"x quarter", New(0, 1, 0).RotateX(quarter), New(0, 0, 1)},
		{"y quarter", New(0, 0, 1).RotateY(quarter), New(1, 0, 0)},
		{"z quarter", New(1, 0, 0).RotateZ(quarter), New(0, 1, 0)},
		{"z negative quarter", New(1, 0, 0).RotateZ(-quarter), New(0, -1, 0)},
		{"x full turn", New(0, 2, 3).RotateX(2 * math.Pi), New(0, 2, 3)},
		{"axis is fixed", New(5, 0, 0).RotateX(1.234), New(5, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecAlmostEqual(tt.got, tt.expected) {
				t.Errorf("rotation = %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := New(1.2, -3.4, 5.6)
	for _, angle := range []float64{0.1, 1, math.Pi, 4.5} {
		for _, rotated := range []Vector3{v.RotateX(angle), v.RotateY(angle), v.RotateZ(angle)} {
			if !almostEqual(rotated.Length(), v.Length()) {
				t.Errorf("rotation by %v changed length: %v -> %v", angle, v.Length(), rotated.Length())
			}
		}
	}
}

func TestRotateAroundPivot(t *testing.T) {
	pivot := New(1, 1, 0)

	// A point one unit right of the pivot swings above it.
	got := New(2, 1, 0).RotateZAround(math.Pi/2, pivot)
	if !vecAlmostEqual(got, New(1, 2, 0)) {
		t.Errorf("RotateZAround() = %v, expected (1, 2, 0)", got)
	}

	// The pivot itself never moves.
	if got := pivot.RotateYAround(2.5, pivot); !vecAlmostEqual(got, pivot) {
		t.Errorf("RotateYAround() moved the pivot to %v", got)
	}
}

func TestMatrixProduct(t *testing.T) {
	m := NewMatrix3(New(1, 0, 0), New(0, 2, 0), New(0, 0, 3))
	if got := m.Product(New(4, 5, 6)); !vecAlmostEqual(got, New(4, 10, 18)) {
		t.Errorf("Product() = %v, expected (4, 10, 18)", got)
	}

	// Columns map the basis vectors.
	m = RotationZ(0.7)
	if got := m.Product(New(1, 0, 0)); !vecAlmostEqual(got, m.U) {
		t.Errorf("Product(e1) = %v, expected column U %v", got, m.U)
	}
}

func TestMatrixMul(t *testing.T) {
	a := RotationZ(0.3)
	b := RotationZ(0.5)
	v := New(1, 2, 3)

	composed := a.Mul(b).Product(v)
	sequential := a.Product(b.Product(v))
	direct := v.RotateZ(0.8)

	if !vecAlmostEqual(composed, sequential) {
		t.Errorf("Mul() composition = %v, expected %v", composed, sequential)
	}
	if !vecAlmostEqual(composed, direct) {
		t.Errorf("RotationZ(0.3)*RotationZ(0.5) applied = %v, expected RotateZ(0.8) = %v", composed, direct)
	}

	if got := Identity.Mul(a); got != a {
		t.Errorf("Identity.Mul(a) = %v, expected %v", got, a)
	}
}
