// Package avatar implements the kinematic and rotational state machine
// of the rolling cube: grounded or airborne, orientation-locked or
// mid-quarter-turn, plus the monotonic power-up level.
package avatar

import (
	"math"

	"github.com/GauBen/le-pire-cube/internal/config"
	"github.com/GauBen/le-pire-cube/internal/geometry"
	"github.com/GauBen/le-pire-cube/internal/vecmath"
)

// QuarterTurn is the rotation progress of one completed roll.
const QuarterTurn = math.Pi / 2

// Avatar is the cube's full kinematic state. Position is the min
// corner of the resting cube; altitude and rotation progress are
// closed-form functions of their onset timestamps, never integrated.
type Avatar struct {
	pos   vecmath.Vector3
	vel   vecmath.Vector3
	accel vecmath.Vector3

	orientation float64 // heading angle in (-pi, pi], 0 = +x
	rotation    float64 // quarter-turn progress in [0, pi/2]

	level         int
	airborne      bool
	airborneSince float64
	turning       bool
	turningSince  float64
	lastPowerUpAt float64

	side      float64
	jumpVel   vecmath.Vector3
	baseSpeed float64 // camera initial velocity
	speedStep float64 // camera acceleration times power-up interval

	airborneSpeed float64
	angularVel    float64
}

// New creates a grounded, orientation-locked avatar at the configured
// spawn position.
func New(cfg config.Config) *Avatar {
	a := &Avatar{
		pos:       vecmath.New(cfg.Avatar.Position.X, cfg.Avatar.Position.Y, cfg.Avatar.Position.Z),
		accel:     vecmath.New(0, 0, cfg.Physics.Gravity),
		side:      cfg.Avatar.Side,
		jumpVel:   vecmath.New(cfg.Physics.JumpVelocity.X, cfg.Physics.JumpVelocity.Y, cfg.Physics.JumpVelocity.Z),
		baseSpeed: cfg.Camera.Velocity,
		speedStep: cfg.Camera.Acceleration * cfg.PowerUps.Interval,
	}
	a.recomputeSpeeds()
	return a
}

// recomputeSpeeds derives the level-dependent speed constants. The
// avatar always moves a bit faster than the camera expects to, so a
// clean run slowly outpaces the death line.
func (a *Avatar) recomputeSpeeds() {
	a.airborneSpeed = a.baseSpeed + a.speedStep*float64(a.level+2)
	a.angularVel = a.airborneSpeed / a.side * QuarterTurn
}

func (a *Avatar) Position() vecmath.Vector3 { return a.pos }
func (a *Avatar) Velocity() vecmath.Vector3 { return a.vel }
func (a *Avatar) Orientation() float64      { return a.orientation }
func (a *Avatar) Rotation() float64         { return a.rotation }
func (a *Avatar) Level() int                { return a.level }
func (a *Avatar) Airborne() bool            { return a.airborne }
func (a *Avatar) AirborneSince() float64    { return a.airborneSince }
func (a *Avatar) Turning() bool             { return a.turning }
func (a *Avatar) TurningSince() float64     { return a.turningSince }
func (a *Avatar) Side() float64             { return a.side }
func (a *Avatar) AirborneSpeed() float64    { return a.airborneSpeed }
func (a *Avatar) AngularVelocity() float64  { return a.angularVel }
func (a *Avatar) LastPowerUpAt() float64    { return a.lastPowerUpAt }

// Center returns the center of the cube's ground face.
func (a *Avatar) Center() vecmath.Vector3 {
	return a.pos.Add(vecmath.New(a.side/2, a.side/2, 0))
}

// Heading returns the unit direction the avatar currently faces.
func (a *Avatar) Heading() vecmath.Vector3 {
	sin, cos := math.Sincos(a.orientation)
	return vecmath.New(cos, sin, 0)
}

// Jump kicks the avatar off the ground at time t. Only meaningful when
// grounded and not turning; callers gate on that.
func (a *Avatar) Jump(t float64) {
	a.airborne = true
	a.airborneSince = t
	a.vel = a.jumpVel
}

// Fall starts free fall at time t with no vertical velocity, used when
// the ground disappears from under the avatar.
func (a *Avatar) Fall(t float64) {
	a.airborne = true
	a.airborneSince = t
	a.vel = vecmath.Zero
}

// Land puts the avatar back on the ground and cancels all velocity.
func (a *Avatar) Land() {
	a.airborne = false
	a.vel = vecmath.Zero
	a.pos.Z = 0
}

// AltitudeAt returns the closed-form altitude at time t. Takeoff always
// happens at ground level, so no initial altitude term appears.
func (a *Avatar) AltitudeAt(t float64) float64 {
	if !a.airborne {
		return a.pos.Z
	}
	tau := t - a.airborneSince
	return 0.5*a.accel.Z*tau*tau + a.vel.Z*tau
}

// UpdateAltitude moves the avatar to its closed-form altitude for time t.
func (a *Avatar) UpdateAltitude(t float64) {
	a.pos.Z = a.AltitudeAt(t)
}

// TimeToLand returns the time remaining until the trajectory returns to
// ground level. Zero or negative means no landing lies ahead, which is
// the case for a plain fall.
func (a *Avatar) TimeToLand(t float64) float64 {
	if !a.airborne {
		return 0
	}
	// Root of 0.5*g*tau^2 + vz*tau = 0 beyond takeoff.
	landing := -2 * a.vel.Z / a.accel.Z
	return landing - (t - a.airborneSince)
}

// Advance moves the avatar horizontally along its heading, used while
// airborne where motion is not tied to rolling.
func (a *Avatar) Advance(dt float64) {
	a.pos = a.pos.Add(a.Heading().Scale(a.airborneSpeed * dt))
}

// BeginRotation starts a quarter-turn roll at time t.
func (a *Avatar) BeginRotation(t float64) {
	a.turning = true
	a.turningSince = t
	a.rotation = 0
}

// UpdateRotation sets the roll progress for time t, capped at a full
// quarter turn.
func (a *Avatar) UpdateRotation(t float64) {
	a.rotation = math.Min((t-a.turningSince)*a.angularVel, QuarterTurn)
}

// TimeToTurnEnd returns the time remaining until the in-progress roll
// completes.
func (a *Avatar) TimeToTurnEnd(t float64) float64 {
	return QuarterTurn/a.angularVel - (t - a.turningSince)
}

// EndRotation completes the roll: the cube tips onto its next face,
// which advances the position by exactly one side length.
func (a *Avatar) EndRotation() {
	a.turning = false
	a.rotation = 0
	a.pos = a.pos.Add(a.Heading().Scale(a.side))
}

// EatPowerUp raises the level at time t and makes the run strictly
// faster.
func (a *Avatar) EatPowerUp(t float64) {
	a.level++
	a.lastPowerUpAt = t
	a.recomputeSpeeds()
}

// SetOrientation snaps the heading to the given angle.
func (a *Avatar) SetOrientation(angle float64) {
	a.orientation = NormalizeAngle(angle)
}

// RotateToward turns the heading toward target along the shorter arc,
// snapping exactly when the remaining angle fits in this step.
func (a *Avatar) RotateToward(target float64, dt float64) {
	delta := NormalizeAngle(target - a.orientation)
	step := a.angularVel * dt
	if math.Abs(delta) <= step {
		a.orientation = NormalizeAngle(target)
		return
	}
	a.orientation = NormalizeAngle(a.orientation + math.Copysign(step, delta))
}

// TimeToAlign returns the time needed to rotate the heading onto
// target along the shorter arc.
func (a *Avatar) TimeToAlign(target float64) float64 {
	return math.Abs(NormalizeAngle(target-a.orientation)) / a.angularVel
}

// Footprint returns the avatar's ground silhouette: the resting square
// when orientation-locked, or the wider rolling diamond mid-turn. Both
// are rotated by the current orientation about the avatar's center.
func (a *Avatar) Footprint() geometry.Footprint {
	x, y, s := a.pos.X, a.pos.Y, a.side

	var fp geometry.Footprint
	if a.turning {
		// Silhouette of the tipping cube, long axis along the heading.
		half := s * math.Sqrt2 / 2
		fp = geometry.MustFootprint(
			vecmath.New(x+s/2-half, y+s/2, 0),
			vecmath.New(x+s/2, y, 0),
			vecmath.New(x+s/2+half, y+s/2, 0),
			vecmath.New(x+s/2, y+s, 0),
		)
	} else {
		fp = geometry.MustFootprint(
			vecmath.New(x, y, 0),
			vecmath.New(x+s, y, 0),
			vecmath.New(x+s, y+s, 0),
			vecmath.New(x, y+s, 0),
		)
	}

	center := vecmath.New(x+s/2, y+s/2, 0)
	return fp.RotateZ(a.orientation, center)
}

// NormalizeAngle wraps an angle to (-pi, pi].
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	switch {
	case angle <= -math.Pi:
		angle += 2 * math.Pi
	case angle > math.Pi:
		angle -= 2 * math.Pi
	}
	return angle
}
