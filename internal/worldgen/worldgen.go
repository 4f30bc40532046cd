// Package worldgen classifies grid cells for a run. Classification is a
// pure function of the cell coordinates and the run's seed: no state, no
// RNG stream, so any number of callers can materialize the same
// coordinates in any order and always agree.
package worldgen

import "math"

// Kind is a cell's classification.
type Kind uint8

const (
	// KindEmpty is a hole; resting on it means falling.
	KindEmpty Kind = iota
	// KindWalkable is plain ground.
	KindWalkable
	// KindPowerUp is walkable ground carrying a speed boost.
	KindPowerUp
)

// String returns the kind's name for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWalkable:
		return "walkable"
	case KindPowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// Params are the tuning constants the classification depends on. Velocity,
// Acceleration and Interval describe the camera's travel law, from which
// the power-up spacing is derived.
type Params struct {
	// CorridorWidth bounds |x - y|; outside it everything is a hole.
	CorridorWidth int
	// WalkZone is the e-folding distance of the starting-area bonus that
	// guarantees solid ground near the origin.
	WalkZone float64
	// Velocity is the camera's initial speed along the diagonal.
	Velocity float64
	// Acceleration is the camera's constant acceleration.
	Acceleration float64
	// Interval is the target time in seconds between power-ups.
	Interval float64
}

// Generator classifies cells for a single run.
type Generator struct {
	seed   float64
	params Params
}

// New creates a generator. Any seed is accepted; only its fractional part
// matters, so seeds land in [0, 1) without an error path.
func New(seed float64, params Params) *Generator {
	return &Generator{
		seed:   seed - math.Floor(seed),
		params: params,
	}
}

// Seed returns the normalized seed in [0, 1).
func (g *Generator) Seed() float64 {
	return g.seed
}

// Classify returns the cell kind at (x, y). Power-ups win over the ground
// field: a scheduled boost must not be swallowed by a hole.
func (g *Generator) Classify(x, y int) Kind {
	if g.IsPowerUp(x, y) {
		return KindPowerUp
	}
	if g.IsWalkable(x, y) {
		return KindWalkable
	}
	return KindEmpty
}

// IsWalkable reports whether the ground field is solid at (x, y). The
// field sums four incommensurate waves seeded by the run, sinks
// quadratically away from the diagonal, and gets an exponential lift near
// the origin so every run starts on solid ground.
func (g *Generator) IsWalkable(x, y int) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	if d >= g.params.CorridorWidth {
		return false
	}

	fx, fy := float64(x), float64(y)
	s := g.seed
	z := ((1+s)*math.Cos(7*fx) +
		math.Sin(6*fx-fy) +
		math.Cos(19*s*fy) +
		(2-s)*math.Sin(2*fx+5*fy)) / 5
	z -= (fy - fx) * (fy - fx) / 25
	z += math.Exp(-(fx + fy) / g.params.WalkZone)
	return z >= 0
}

// IsPowerUp reports whether a power-up sits at (x, y). Power-ups only
// exist on the diagonal from (1, 1) onward, at the cells where the camera
// crosses a whole number of configured intervals.
func (g *Generator) IsPowerUp(x, y int) bool {
	if x != y || x < 1 {
		return false
	}
	return math.Floor(g.intervalsAt(float64(x)*math.Sqrt2)) >
		math.Floor(g.intervalsAt(float64(x-1)*math.Sqrt2))
}

// intervalsAt returns how many power-up intervals the camera has completed
// once it has travelled distance d along the diagonal: the travel law
// d = a*t^2/2 + v*t inverted for t, divided by the interval length.
func (g *Generator) intervalsAt(d float64) float64 {
	p := g.params
	t := (-p.Velocity + math.Sqrt(p.Velocity*p.Velocity+2*p.Acceleration*d)) / p.Acceleration
	return t / p.Interval
}
