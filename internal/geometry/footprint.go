// Package geometry provides the shapes the collision layer works with: a
// planar convex polygon (Footprint) and a polyhedron made of them (Solid).
// All transforms are rigid and return new values, and a shape's face
// structure and vertex winding never change after construction.
package geometry

import (
	"errors"
	"fmt"

	"github.com/GauBen/le-pire-cube/internal/vecmath"
)

// ErrInvalidGeometry reports a footprint built from fewer than three
// vertices.
var ErrInvalidGeometry = errors.New("geometry: a footprint needs at least 3 vertices")

// Footprint is a planar convex polygon with a consistent vertex winding.
// The unit normal is derived from the winding once at construction and then
// rotated alongside the vertices, never recomputed, so its sign cannot
// drift across chains of transforms.
type Footprint struct {
	vertices []vecmath.Vector3
	normal   vecmath.Vector3
}

// NewFootprint builds a footprint from at least three coplanar vertices.
// The winding of the first three vertices fixes the normal's direction by
// the right-hand rule. Collinear leading vertices make the normal
// undefined and panic with vecmath.ErrDegenerateVector.
func NewFootprint(vertices ...vecmath.Vector3) (Footprint, error) {
	if len(vertices) < 3 {
		return Footprint{}, fmt.Errorf("%w, got %d", ErrInvalidGeometry, len(vertices))
	}
	normal := vertices[1].Sub(vertices[0]).Cross(vertices[2].Sub(vertices[1])).Normalize()
	verts := make([]vecmath.Vector3, len(vertices))
	copy(verts, vertices)
	return Footprint{vertices: verts, normal: normal}, nil
}

// MustFootprint is like NewFootprint but panics on error. Use it for
// statically known-good vertex lists.
func MustFootprint(vertices ...vecmath.Vector3) Footprint {
	f, err := NewFootprint(vertices...)
	if err != nil {
		panic(err)
	}
	return f
}

// Vertices returns the footprint's vertices in winding order. The slice is
// shared; callers must not mutate it.
func (f Footprint) Vertices() []vecmath.Vector3 {
	return f.vertices
}

// Normal returns the footprint's unit normal.
func (f Footprint) Normal() vecmath.Vector3 {
	return f.normal
}

// Translate returns the footprint moved by delta. The normal is unchanged.
func (f Footprint) Translate(delta vecmath.Vector3) Footprint {
	verts := make([]vecmath.Vector3, len(f.vertices))
	for i, v := range f.vertices {
		verts[i] = v.Add(delta)
	}
	return Footprint{vertices: verts, normal: f.normal}
}

// RotateX returns the footprint rotated by angle radians about the X axis
// through pivot. The normal rotates with the vertices.
func (f Footprint) RotateX(angle float64, pivot vecmath.Vector3) Footprint {
	return f.rotate(vecmath.RotationX(angle), pivot)
}

// RotateY returns the footprint rotated by angle radians about the Y axis
// through pivot.
func (f Footprint) RotateY(angle float64, pivot vecmath.Vector3) Footprint {
	return f.rotate(vecmath.RotationY(angle), pivot)
}

// RotateZ returns the footprint rotated by angle radians about the Z axis
// through pivot.
func (f Footprint) RotateZ(angle float64, pivot vecmath.Vector3) Footprint {
	return f.rotate(vecmath.RotationZ(angle), pivot)
}

func (f Footprint) rotate(m vecmath.Matrix3, pivot vecmath.Vector3) Footprint {
	verts := make([]vecmath.Vector3, len(f.vertices))
	for i, v := range f.vertices {
		verts[i] = m.Product(v.Sub(pivot)).Add(pivot)
	}
	return Footprint{vertices: verts, normal: m.Product(f.normal)}
}

// Centroid returns the arithmetic mean of the vertices.
func (f Footprint) Centroid() vecmath.Vector3 {
	var sum vecmath.Vector3
	for _, v := range f.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(f.vertices)))
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (f Footprint) Bounds() (lo, hi vecmath.Vector3) {
	lo, hi = f.vertices[0], f.vertices[0]
	for _, v := range f.vertices[1:] {
		lo.X = min(lo.X, v.X)
		lo.Y = min(lo.Y, v.Y)
		lo.Z = min(lo.Z, v.Z)
		hi.X = max(hi.X, v.X)
		hi.Y = max(hi.Y, v.Y)
		hi.Z = max(hi.Z, v.Z)
	}
	return lo, hi
}

// Area returns the polygon's area. Rigid transforms preserve it, which
// makes it a handy integrity check.
func (f Footprint) Area() float64 {
	var sum vecmath.Vector3
	for i, v := range f.vertices {
		w := f.vertices[(i+1)%len(f.vertices)]
		sum = sum.Add(v.Cross(w))
	}
	return sum.Length() / 2
}
