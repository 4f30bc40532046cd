// Package collision decides whether a point lies inside a convex
// footprint. It is the single geometric predicate the simulation's ground
// support and power-up pickup rules are built on.
package collision

import (
	"github.com/GauBen/le-pire-cube/internal/geometry"
	"github.com/GauBen/le-pire-cube/internal/vecmath"
)

// PointInside reports whether point lies strictly inside the footprint.
// Points on an edge or a vertex count as outside.
//
// The test works in the point's frame: with every vertex translated by
// -point, the point is outside exactly when some vertex u spans a
// supporting half-plane, meaning normal.Dot(u.Cross(w)) keeps a single
// sign (zeros allowed) over every other vertex w. Only convex,
// consistently wound footprints give meaningful answers; concave or
// self-intersecting input is the caller's bug, not detected here.
func PointInside(point vecmath.Vector3, f geometry.Footprint) bool {
	vertices := f.Vertices()
	rel := make([]vecmath.Vector3, len(vertices))
	for i, v := range vertices {
		rel[i] = v.Sub(point)
	}

	normal := f.Normal()
	for i := range rel {
		if supportingHalfPlane(normal, rel, i) {
			return false
		}
	}
	return true
}

// supportingHalfPlane reports whether every vertex other than rel[i] lies
// on one side of the plane spanned by the footprint normal and rel[i].
// A zero cross product means a vertex sits on the plane itself, which
// never disqualifies the plane: boundary ties resolve to "outside".
func supportingHalfPlane(normal vecmath.Vector3, rel []vecmath.Vector3, i int) bool {
	u := rel[i]
	var positive, negative bool
	for j, w := range rel {
		if j == i {
			continue
		}
		switch s := normal.Dot(u.Cross(w)); {
		case s > 0:
			positive = true
		case s < 0:
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}
