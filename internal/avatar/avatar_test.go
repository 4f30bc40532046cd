package avatar

import (
	"math"
	"testing"

	"github.com/GauBen/le-pire-cube/internal/config"
	"github.com/GauBen/le-pire-cube/internal/vecmath"
)

const epsilon = 1e-9

func newAvatar() *Avatar {
	return New(config.DefaultConfig())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func vecAlmostEqual(a, b vecmath.Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestNewAvatar(t *testing.T) {
	a := newAvatar()

	if !vecAlmostEqual(a.Position(), vecmath.New(-0.5, -0.5, 0)) {
		t.Errorf("Position() = %v, expected (-0.5, -0.5, 0)", a.Position())
	}
	if !vecAlmostEqual(a.Center(), vecmath.Zero) {
		t.Errorf("Center() = %v, expected the origin", a.Center())
	}
	if a.Airborne() || a.Turning() {
		t.Error("a fresh avatar must be grounded and orientation-locked")
	}
	if a.Level() != 0 {
		t.Errorf("Level() = %d, expected 0", a.Level())
	}
	if a.Orientation() != 0 {
		t.Errorf("Orientation() = %v, expected 0", a.Orientation())
	}

	// With defaults the airborne speed is v0 + a*t0*2 = 3*sqrt(2).
	if want := 3 * math.Sqrt2; !almostEqual(a.AirborneSpeed(), want) {
		t.Errorf("AirborneSpeed() = %v, expected %v", a.AirborneSpeed(), want)
	}
	if want := 3 * math.Sqrt2 * QuarterTurn; !almostEqual(a.AngularVelocity(), want) {
		t.Errorf("AngularVelocity() = %v, expected %v", a.AngularVelocity(), want)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name        string
		orientation float64
		expected    vecmath.Vector3
	}{
		{"east", 0, vecmath.New(1, 0, 0)},
		{"north", math.Pi / 2, vecmath.New(0, 1, 0)},
		{"west", math.Pi, vecmath.New(-1, 0, 0)},
		{"south", -math.Pi / 2, vecmath.New(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAvatar()
			a.SetOrientation(tt.orientation)
			if got := a.Heading(); !vecAlmostEqual(got, tt.expected) {
				t.Errorf("Heading() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestJumpFlight(t *testing.T) {
	a := newAvatar()
	a.Jump(1.0)

	if !a.Airborne() {
		t.Fatal("Airborne() = false after Jump")
	}
	if a.AirborneSince() != 1.0 {
		t.Errorf("AirborneSince() = %v, expected 1.0", a.AirborneSince())
	}
	if !almostEqual(a.AltitudeAt(1.0), 0) {
		t.Errorf("AltitudeAt(takeoff) = %v, expected 0", a.AltitudeAt(1.0))
	}

	// Defaults: vz = 10, g = -30, so flight lasts 2/3 s with the apex
	// at 5/3 after 1/3 s.
	if got := a.AltitudeAt(1.0 + 1.0/3.0); !almostEqual(got, 5.0/3.0) {
		t.Errorf("AltitudeAt(apex) = %v, expected 5/3", got)
	}
	if got := a.AltitudeAt(1.0 + 2.0/3.0); !almostEqual(got, 0) {
		t.Errorf("AltitudeAt(landing) = %v, expected 0", got)
	}
	if got := a.TimeToLand(1.0); !almostEqual(got, 2.0/3.0) {
		t.Errorf("TimeToLand(1.0) = %v, expected 2/3", got)
	}
	if got := a.TimeToLand(1.5); !almostEqual(got, 1.0/6.0) {
		t.Errorf("TimeToLand(1.5) = %v, expected 1/6", got)
	}

	a.UpdateAltitude(1.5)
	if !almostEqual(a.Position().Z, a.AltitudeAt(1.5)) {
		t.Errorf("UpdateAltitude left z = %v, expected %v", a.Position().Z, a.AltitudeAt(1.5))
	}
}

func TestFallHasNoLandingAhead(t *testing.T) {
	a := newAvatar()
	a.Fall(2.0)

	if !a.Airborne() {
		t.Fatal("Airborne() = false after Fall")
	}
	if !vecAlmostEqual(a.Velocity(), vecmath.Zero) {
		t.Errorf("Velocity() = %v, expected zero", a.Velocity())
	}
	if got := a.AltitudeAt(2.5); !almostEqual(got, -3.75) {
		t.Errorf("AltitudeAt(2.5) = %v, expected -3.75", got)
	}
	if got := a.TimeToLand(2.0); got > 0 {
		t.Errorf("TimeToLand(2.0) = %v, expected no landing ahead", got)
	}
}

func TestLand(t *testing.T) {
	a := newAvatar()
	a.Jump(0)
	a.UpdateAltitude(0.3)
	a.Land()

	if a.Airborne() {
		t.Error("Airborne() = true after Land")
	}
	if !vecAlmostEqual(a.Velocity(), vecmath.Zero) {
		t.Errorf("Velocity() = %v, expected zero", a.Velocity())
	}
	if a.Position().Z != 0 {
		t.Errorf("Position().Z = %v, expected exactly 0", a.Position().Z)
	}
}

func TestAdvanceFollowsHeading(t *testing.T) {
	a := newAvatar()
	a.SetOrientation(math.Pi / 2)
	a.Jump(0)
	a.Advance(0.5)

	want := vecmath.New(-0.5, -0.5+a.AirborneSpeed()*0.5, 0)
	if !vecAlmostEqual(a.Position(), want) {
		t.Errorf("Position() = %v, expected %v", a.Position(), want)
	}
}

func TestRotationLifecycle(t *testing.T) {
	a := newAvatar()
	duration := QuarterTurn / a.AngularVelocity()

	a.BeginRotation(2.0)
	if !a.Turning() {
		t.Fatal("Turning() = false after BeginRotation")
	}
	if a.TurningSince() != 2.0 {
		t.Errorf("TurningSince() = %v, expected 2.0", a.TurningSince())
	}

	a.UpdateRotation(2.0 + duration/2)
	if !almostEqual(a.Rotation(), QuarterTurn/2) {
		t.Errorf("Rotation() at half turn = %v, expected %v", a.Rotation(), QuarterTurn/2)
	}
	if got := a.TimeToTurnEnd(2.0 + duration/2); !almostEqual(got, duration/2) {
		t.Errorf("TimeToTurnEnd() = %v, expected %v", got, duration/2)
	}

	// Progress never runs past a quarter turn.
	a.UpdateRotation(2.0 + 2*duration)
	if a.Rotation() != QuarterTurn {
		t.Errorf("Rotation() past the end = %v, expected %v", a.Rotation(), QuarterTurn)
	}

	a.EndRotation()
	if a.Turning() {
		t.Error("Turning() = true after EndRotation")
	}
	if a.Rotation() != 0 {
		t.Errorf("Rotation() = %v after EndRotation, expected 0", a.Rotation())
	}
	want := vecmath.New(0.5, -0.5, 0)
	if !vecAlmostEqual(a.Position(), want) {
		t.Errorf("Position() = %v, expected %v (one side length east)", a.Position(), want)
	}
}

func TestEndRotationAdvancesAlongOrientation(t *testing.T) {
	a := newAvatar()
	a.SetOrientation(math.Pi / 2)
	a.BeginRotation(0)
	a.EndRotation()

	want := vecmath.New(-0.5, 0.5, 0)
	if !vecAlmostEqual(a.Position(), want) {
		t.Errorf("Position() = %v, expected %v (one side length north)", a.Position(), want)
	}
}

func TestEatPowerUp(t *testing.T) {
	a := newAvatar()
	before := a.AirborneSpeed()

	a.EatPowerUp(7.5)

	if a.Level() != 1 {
		t.Errorf("Level() = %d, expected 1", a.Level())
	}
	if a.LastPowerUpAt() != 7.5 {
		t.Errorf("LastPowerUpAt() = %v, expected 7.5", a.LastPowerUpAt())
	}
	// One more level adds one more speed step: v0 + a*t0*3 = 4*sqrt(2).
	if want := 4 * math.Sqrt2; !almostEqual(a.AirborneSpeed(), want) {
		t.Errorf("AirborneSpeed() = %v, expected %v", a.AirborneSpeed(), want)
	}
	if a.AirborneSpeed() <= before {
		t.Error("a power-up must make the avatar strictly faster")
	}
	if want := 4 * math.Sqrt2 * QuarterTurn; !almostEqual(a.AngularVelocity(), want) {
		t.Errorf("AngularVelocity() = %v, expected %v", a.AngularVelocity(), want)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"identity", math.Pi / 3, math.Pi / 3},
		{"pi stays pi", math.Pi, math.Pi},
		{"negative pi wraps", -math.Pi, math.Pi},
		{"three halves", 3 * math.Pi / 2, -math.Pi / 2},
		{"negative three halves", -3 * math.Pi / 2, math.Pi / 2},
		{"full turn", 2 * math.Pi, 0},
		{"two and a quarter turns", 4.5 * math.Pi, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAngle(tt.angle); !almostEqual(got, tt.expected) {
				t.Errorf("NormalizeAngle(%v) = %v, expected %v", tt.angle, got, tt.expected)
			}
		})
	}
}

func TestRotateTowardShorterArc(t *testing.T) {
	a := newAvatar()
	a.SetOrientation(-3 * math.Pi / 4)

	// The short way from -3pi/4 to pi is clockwise through -pi.
	a.RotateToward(math.Pi, 0.01)
	if got := a.Orientation(); got >= -3*math.Pi/4 {
		t.Errorf("Orientation() = %v, expected a clockwise step from -3pi/4", got)
	}

	// Walk the rest of the way and check the exact snap.
	for i := 0; i < 1000 && !almostEqual(a.Orientation(), math.Pi); i++ {
		a.RotateToward(math.Pi, 0.01)
	}
	if got := a.Orientation(); got != math.Pi {
		t.Errorf("Orientation() = %v, expected an exact snap to pi", got)
	}
}

func TestTimeToAlign(t *testing.T) {
	a := newAvatar()
	want := QuarterTurn / a.AngularVelocity()
	if got := a.TimeToAlign(math.Pi / 2); !almostEqual(got, want) {
		t.Errorf("TimeToAlign(pi/2) = %v, expected %v", got, want)
	}
	if got := a.TimeToAlign(0); got != 0 {
		t.Errorf("TimeToAlign(0) = %v, expected 0", got)
	}
}

func TestFootprintGrounded(t *testing.T) {
	a := newAvatar()
	fp := a.Footprint()

	want := []vecmath.Vector3{
		vecmath.New(-0.5, -0.5, 0),
		vecmath.New(0.5, -0.5, 0),
		vecmath.New(0.5, 0.5, 0),
		vecmath.New(-0.5, 0.5, 0),
	}
	got := fp.Vertices()
	if len(got) != len(want) {
		t.Fatalf("footprint has %d vertices, expected %d", len(got), len(want))
	}
	for i := range want {
		if !vecAlmostEqual(got[i], want[i]) {
			t.Errorf("vertex %d = %v, expected %v", i, got[i], want[i])
		}
	}
	if !vecAlmostEqual(fp.Normal(), vecmath.New(0, 0, 1)) {
		t.Errorf("Normal() = %v, expected +z", fp.Normal())
	}
}

func TestFootprintTurning(t *testing.T) {
	a := newAvatar()
	a.BeginRotation(0)
	fp := a.Footprint()

	// The rolling silhouette spans the cube's diagonal along the
	// heading while keeping the side span across it.
	half := math.Sqrt2 / 2
	want := []vecmath.Vector3{
		vecmath.New(-half, 0, 0),
		vecmath.New(0, -0.5, 0),
		vecmath.New(half, 0, 0),
		vecmath.New(0, 0.5, 0),
	}
	got := fp.Vertices()
	if len(got) != len(want) {
		t.Fatalf("footprint has %d vertices, expected %d", len(got), len(want))
	}
	for i := range want {
		if !vecAlmostEqual(got[i], want[i]) {
			t.Errorf("vertex %d = %v, expected %v", i, got[i], want[i])
		}
	}

	lo, hi := fp.Bounds()
	if !almostEqual(hi.X-lo.X, math.Sqrt2) {
		t.Errorf("turning footprint spans %v along x, expected sqrt(2)", hi.X-lo.X)
	}
}

func TestFootprintRotatesWithOrientation(t *testing.T) {
	a := newAvatar()
	a.SetOrientation(math.Pi / 2)
	a.BeginRotation(0)

	lo, hi := a.Footprint().Bounds()
	if !almostEqual(hi.Y-lo.Y, math.Sqrt2) {
		t.Errorf("north-facing roll spans %v along y, expected sqrt(2)", hi.Y-lo.Y)
	}
	if !almostEqual(hi.X-lo.X, 1.0) {
		t.Errorf("north-facing roll spans %v along x, expected the side length", hi.X-lo.X)
	}
}
