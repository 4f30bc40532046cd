// Package sim implements the deterministic cube runner simulation: a
// sparse windowed world, the rolling avatar, and an exact next-event
// update loop driven by wall-clock deltas.
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/GauBen/le-pire-cube/internal/avatar"
	"github.com/GauBen/le-pire-cube/internal/collision"
	"github.com/GauBen/le-pire-cube/internal/config"
	"github.com/GauBen/le-pire-cube/internal/vecmath"
	"github.com/GauBen/le-pire-cube/internal/world"
	"github.com/GauBen/le-pire-cube/internal/worldgen"
)

// ErrInvalidConfiguration reports a configuration that cannot drive a
// run.
var ErrInvalidConfiguration = errors.New("sim: invalid configuration")

const (
	// timeEpsilon is the update remainder below which a frame is done.
	timeEpsilon = 1e-9
	// groundEpsilon separates "at ground level" from "fell through".
	groundEpsilon = 1e-6
	// angleEpsilon is the heading alignment tolerance.
	angleEpsilon = 1e-9
	// maxSubSteps caps event resolution within one Update call. Hitting
	// the cap counts as an anomaly and the remaining time only moves
	// the clock.
	maxSubSteps = 128
)

// Input is the live control record shared with the input layer. The
// engine re-reads it at every sub-step, so a held jump fires again on
// the next landing without any queue.
type Input struct {
	Direction vecmath.Vector3
	Jump      bool
}

type eventKind int

const (
	eventNone eventKind = iota
	eventTurnEnd
	eventLand
	eventAlign
)

// Engine advances one run. All state is derived deterministically from
// the seed, the input record, and the sequence of elapsed times fed to
// Update.
type Engine struct {
	cfg   config.Config
	seed  float64
	input *Input

	gen *worldgen.Generator
	wld *world.World
	av  *avatar.Avatar

	t            float64
	bestProgress float64
	score        int
	gameOver     bool
	gameOverAt   float64
	anomalies    int
}

// New creates a run from a validated configuration, a seed, and a live
// input record. A nil input plays a motionless run.
func New(cfg config.Config, seed float64, input *Input) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if input == nil {
		input = &Input{}
	}

	gen := worldgen.New(seed, worldgen.Params{
		CorridorWidth: cfg.World.CorridorWidth,
		WalkZone:      cfg.World.WalkZone,
		Velocity:      cfg.Camera.Velocity,
		Acceleration:  cfg.Camera.Acceleration,
		Interval:      cfg.PowerUps.Interval,
	})

	e := &Engine{
		cfg:   cfg,
		seed:  gen.Seed(),
		input: input,
		gen:   gen,
		wld:   world.New(gen),
		av:    avatar.New(cfg),
	}
	e.bestProgress = e.avatarProgress()
	e.materializeAroundCamera()
	e.updateScore()
	return e, nil
}

func (e *Engine) Time() float64          { return e.t }
func (e *Engine) Score() int             { return e.score }
func (e *Engine) GameOver() bool         { return e.gameOver }
func (e *Engine) GameOverAt() float64    { return e.gameOverAt }
func (e *Engine) Anomalies() int         { return e.anomalies }
func (e *Engine) Seed() float64          { return e.seed }
func (e *Engine) Config() config.Config  { return e.cfg }
func (e *Engine) Avatar() *avatar.Avatar { return e.av }
func (e *Engine) World() *world.World    { return e.wld }

// CameraPosition returns the camera's diagonal progress at time t. It
// is a pure function of time, addressable for any t including the
// future, and continuous through the game-over boundary.
func (e *Engine) CameraPosition(t float64) float64 {
	v0 := e.cfg.Camera.Velocity
	acc := e.cfg.Camera.Acceleration
	if !e.gameOver || t <= e.gameOverAt {
		return 0.5*acc*t*t + v0*t + e.cfg.Camera.Position
	}

	// After game over the camera brakes to a stop over the fall
	// duration, keeping position and velocity continuous at the cut.
	cut := e.gameOverAt
	pos := 0.5*acc*cut*cut + v0*cut + e.cfg.Camera.Position
	vel := v0 + acc*cut
	dur := e.cfg.Camera.FallDuration
	tau := t - cut
	if tau >= dur {
		return pos + vel*dur/2
	}
	return pos + vel*tau - vel/(2*dur)*tau*tau
}

// MaterializeWindow widens the world window, for renderers that draw
// further ahead than the simulation needs.
func (e *Engine) MaterializeWindow(start, end int) {
	e.wld.Materialize(start, end)
}

// Update advances the simulation by elapsed seconds, resolving every
// intervening event (turn completions, landings, heading alignments)
// at its exact time. After game over only the clock advances, so the
// camera's braking segment can still be sampled.
func (e *Engine) Update(elapsed float64) {
	if elapsed < 0 {
		return
	}
	if e.gameOver {
		e.t += elapsed
		return
	}

	remaining := elapsed
	for steps := 0; remaining > timeEpsilon; steps++ {
		if steps >= maxSubSteps {
			e.anomalies++
			break
		}
		remaining -= e.step(remaining)
		if e.gameOver {
			break
		}
	}
	if remaining > 0 {
		e.t += remaining
	}
}

// step advances state by at most budget seconds and returns the time
// consumed. The horizon never overshoots an event, so the avatar can
// never land "into" the floor or roll past a quarter turn.
func (e *Engine) step(budget float64) float64 {
	e.resolveInput()

	dt, event := e.nextHorizon(budget)
	e.advance(dt)

	switch event {
	case eventTurnEnd:
		e.av.EndRotation()
	case eventAlign:
		if target, ok := e.targetHeading(); ok {
			e.av.SetOrientation(target)
		}
	case eventLand, eventNone:
		// Landing is resolved by the support check below.
	}

	e.materializeAroundCamera()
	e.resolveSupport()
	e.updateScore()
	e.checkGameOver()
	return dt
}

// resolveInput applies the live input record at the current time.
// Jumping takes priority over starting a roll; both need the avatar
// grounded and orientation-locked.
func (e *Engine) resolveInput() {
	if e.av.Airborne() || e.av.Turning() {
		return
	}
	if e.input.Jump {
		e.av.Jump(e.t)
		return
	}
	if target, ok := e.targetHeading(); ok && e.aligned(target) {
		e.av.BeginRotation(e.t)
	}
}

// nextHorizon returns the largest step that stops exactly at the next
// pending event, capped by the budget.
func (e *Engine) nextHorizon(budget float64) (float64, eventKind) {
	dt, event := budget, eventNone

	if e.av.Turning() {
		if rem := e.av.TimeToTurnEnd(e.t); rem < dt {
			dt, event = math.Max(rem, 0), eventTurnEnd
		}
	}
	if e.av.Airborne() {
		if rem := e.av.TimeToLand(e.t); rem > timeEpsilon && rem < dt {
			dt, event = rem, eventLand
		}
	}
	if !e.av.Turning() {
		if target, ok := e.targetHeading(); ok && !e.aligned(target) {
			if rem := e.av.TimeToAlign(target); rem < dt {
				dt, event = math.Max(rem, 0), eventAlign
			}
		}
	}
	return dt, event
}

// advance moves all continuous state forward by dt.
func (e *Engine) advance(dt float64) {
	e.t += dt

	if e.av.Turning() {
		e.av.UpdateRotation(e.t)
	} else if target, ok := e.targetHeading(); ok && !e.aligned(target) {
		e.av.RotateToward(target, dt)
	}

	if e.av.Airborne() {
		e.av.Advance(dt)
		e.av.UpdateAltitude(e.t)
	}
}

// targetHeading maps the input direction to the nearest cardinal
// heading. A zero direction requests nothing.
func (e *Engine) targetHeading() (float64, bool) {
	dir := e.input.Direction
	if dir.X == 0 && dir.Y == 0 {
		return 0, false
	}
	angle := math.Atan2(dir.Y, dir.X)
	target := math.Round(angle/avatar.QuarterTurn) * avatar.QuarterTurn
	return avatar.NormalizeAngle(target), true
}

func (e *Engine) aligned(target float64) bool {
	return math.Abs(avatar.NormalizeAngle(target-e.av.Orientation())) <= angleEpsilon
}

// resolveSupport settles the avatar against the ground: landing when a
// walkable cell supports the footprint, free fall when none does, and
// power-up consumption on solid contact outside a roll.
func (e *Engine) resolveSupport() {
	if math.Abs(e.av.Position().Z) > groundEpsilon {
		return
	}
	if e.findSupport() {
		if e.av.Airborne() {
			e.av.Land()
		}
		return
	}
	if !e.av.Airborne() {
		e.av.Fall(e.t)
	}
}

// findSupport tests every materialized cell overlapping the footprint's
// bounding box: the cell supports the avatar when its corner nearest
// the avatar's center lies strictly inside the footprint. Supporting
// power-up cells are consumed along the way.
func (e *Engine) findSupport() bool {
	fp := e.av.Footprint()
	lo, hi := fp.Bounds()
	side := e.cfg.Avatar.Side
	center := e.av.Center()

	x0, x1 := int(math.Floor(lo.X/side)), int(math.Floor(hi.X/side))
	y0, y1 := int(math.Floor(lo.Y/side)), int(math.Floor(hi.Y/side))

	supported := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cell := e.wld.Cell(x, y)
			if cell == nil || !cell.Walkable() {
				continue
			}
			if !collision.PointInside(nearestCorner(x, y, side, center), fp) {
				continue
			}
			supported = true
			if !e.av.Turning() && cell.Consume(e.t) {
				e.av.EatPowerUp(e.t)
			}
		}
	}
	return supported
}

// nearestCorner returns the corner of cell (x, y) closest to p.
func nearestCorner(x, y int, side float64, p vecmath.Vector3) vecmath.Vector3 {
	cx := float64(x) * side
	cy := float64(y) * side
	if cx+side-p.X < p.X-cx {
		cx += side
	}
	if cy+side-p.Y < p.Y-cy {
		cy += side
	}
	return vecmath.New(cx, cy, 0)
}

// materializeAroundCamera keeps the world window covering everything
// from one cell behind the death line up to the viewport look-ahead
// past the camera or the avatar, whichever leads.
func (e *Engine) materializeAroundCamera() {
	pitch := e.cfg.Avatar.Side * math.Sqrt2
	cam := e.CameraPosition(e.t)
	front := math.Max(cam, e.avatarProgress())

	start := int(math.Floor((cam-e.cfg.Camera.DeathZone)/pitch)) - 1
	end := int(math.Floor(front/pitch)) + e.cfg.World.ViewportTiles
	e.wld.Materialize(start, end)
}

// updateScore tracks the floored running maximum of the avatar's
// diagonal progress. The score never decreases.
func (e *Engine) updateScore() {
	if p := e.avatarProgress(); p > e.bestProgress {
		e.bestProgress = p
	}
	e.score = int(math.Floor(e.bestProgress))
}

// checkGameOver ends the run, once, when the avatar either fell
// through the floor or trailed too far behind the camera.
func (e *Engine) checkGameOver() {
	if e.gameOver {
		return
	}
	behind := e.avatarProgress() < e.CameraPosition(e.t)-e.cfg.Camera.DeathZone
	fell := e.av.Position().Z < -groundEpsilon
	if behind || fell {
		e.gameOver = true
		e.gameOverAt = e.t
	}
}

// avatarProgress is the avatar's signed position along the diagonal
// travel axis.
func (e *Engine) avatarProgress() float64 {
	c := e.av.Center()
	return (c.X + c.Y) / math.Sqrt2
}
