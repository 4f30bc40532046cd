package geometry

import "github.com/GauBen/le-pire-cube/internal/vecmath"

// Solid is an ordered collection of footprint faces. Transforms apply to
// every face uniformly, so a solid built once can be posed by chaining
// rigid motions.
type Solid struct {
	faces []Footprint
}

// NewSolid builds a solid from its faces.
func NewSolid(faces ...Footprint) Solid {
	fs := make([]Footprint, len(faces))
	copy(fs, faces)
	return Solid{faces: fs}
}

// Faces returns the solid's faces in construction order. The slice is
// shared; callers must not mutate it.
func (s Solid) Faces() []Footprint {
	return s.faces
}

// Translate returns the solid moved by delta.
func (s Solid) Translate(delta vecmath.Vector3) Solid {
	faces := make([]Footprint, len(s.faces))
	for i, f := range s.faces {
		faces[i] = f.Translate(delta)
	}
	return Solid{faces: faces}
}

// RotateX returns the solid rotated by angle radians about the X axis
// through pivot.
func (s Solid) RotateX(angle float64, pivot vecmath.Vector3) Solid {
	return s.rotate(vecmath.RotationX(angle), pivot)
}

// RotateY returns the solid rotated by angle radians about the Y axis
// through pivot.
func (s Solid) RotateY(angle float64, pivot vecmath.Vector3) Solid {
	return s.rotate(vecmath.RotationY(angle), pivot)
}

// RotateZ returns the solid rotated by angle radians about the Z axis
// through pivot.
func (s Solid) RotateZ(angle float64, pivot vecmath.Vector3) Solid {
	return s.rotate(vecmath.RotationZ(angle), pivot)
}

func (s Solid) rotate(m vecmath.Matrix3, pivot vecmath.Vector3) Solid {
	faces := make([]Footprint, len(s.faces))
	for i, f := range s.faces {
		faces[i] = f.rotate(m, pivot)
	}
	return Solid{faces: faces}
}

// Box face indices in the order NewBox constructs them.
const (
	BoxFaceFront = iota
	BoxFaceRight
	BoxFaceTop
	BoxFaceLeft
	BoxFaceBack
	BoxFaceBottom
)

// NewBox builds the axis-aligned box spanned by the origin and diagonal.
// It has exactly six quadrilateral faces, each wound so that its normal
// points out of the box when the diagonal's components are positive.
func NewBox(diagonal vecmath.Vector3) Solid {
	var (
		o   = vecmath.Zero
		x   = vecmath.Vector3{X: diagonal.X}
		y   = vecmath.Vector3{Y: diagonal.Y}
		z   = vecmath.Vector3{Z: diagonal.Z}
		xy  = x.Add(y)
		xz  = x.Add(z)
		yz  = y.Add(z)
		xyz = xy.Add(z)
	)
	return NewSolid(
		MustFootprint(o, x, xz, z),    // front, -y
		MustFootprint(x, xy, xyz, xz), // right, +x
		MustFootprint(z, xz, xyz, yz), // top, +z
		MustFootprint(o, z, yz, y),    // left, -x
		MustFootprint(y, yz, xyz, xy), // back, +y
		MustFootprint(o, y, xy, x),    // bottom, -z
	)
}
