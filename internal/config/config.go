// Package config provides YAML-based simulation configuration loading
// for the cube runner.
package config

import (
	"errors"
	"fmt"
)

// Point is a 3D coordinate triple used for positions and velocities.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Config contains all simulation parameters for a run.
type Config struct {
	Avatar   AvatarConfig   `yaml:"avatar"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Camera   CameraConfig   `yaml:"camera"`
	World    WorldConfig    `yaml:"world"`
	PowerUps PowerUpsConfig `yaml:"power_ups"`
}

// AvatarConfig defines the cube avatar's geometry and spawn point.
type AvatarConfig struct {
	Side     float64 `yaml:"side"`     // edge length, also the tile pitch
	Position Point   `yaml:"position"` // spawn position of the cube's min corner
}

// PhysicsConfig defines the airborne motion parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // vertical acceleration, negative
	JumpVelocity Point   `yaml:"jump_velocity"` // velocity kick at takeoff, mostly +z
}

// CameraConfig defines the pursuing camera's motion along the diagonal
// travel axis and the death handling around it.
type CameraConfig struct {
	Velocity     float64 `yaml:"velocity"`      // initial diagonal speed
	Acceleration float64 `yaml:"acceleration"`  // constant diagonal acceleration
	Position     float64 `yaml:"position"`      // initial diagonal offset
	DeathZone    float64 `yaml:"death_zone"`    // max distance the avatar may trail behind
	FallDuration float64 `yaml:"fall_duration"` // camera braking time after game over
}

// WorldConfig defines the procedural track parameters.
type WorldConfig struct {
	CorridorWidth int     `yaml:"corridor_width"` // width of the walkable diagonal strip
	WalkZone      float64 `yaml:"walk_zone"`      // decay length of the guaranteed start area
	ViewportTiles int     `yaml:"viewport_tiles"` // diagonal look-ahead of the cell window
}

// PowerUpsConfig defines the speed boost schedule.
type PowerUpsConfig struct {
	Interval float64 `yaml:"interval"` // target seconds between boosts
}

// Validate reports the first implausible parameter, or nil when the
// configuration can drive a run.
func (c Config) Validate() error {
	switch {
	case c.Avatar.Side <= 0:
		return errors.New("avatar side must be positive")
	case c.Physics.Gravity >= 0:
		return errors.New("gravity must be negative")
	case c.Physics.JumpVelocity.Z <= 0:
		return errors.New("jump velocity must point upward")
	case c.Camera.Velocity <= 0:
		return errors.New("camera velocity must be positive")
	case c.Camera.Acceleration <= 0:
		return errors.New("camera acceleration must be positive")
	case c.Camera.DeathZone <= 0:
		return errors.New("death zone must be positive")
	case c.Camera.FallDuration <= 0:
		return errors.New("fall duration must be positive")
	case c.World.CorridorWidth < 1:
		return fmt.Errorf("corridor width %d leaves no walkable strip", c.World.CorridorWidth)
	case c.World.WalkZone <= 0:
		return errors.New("walk zone must be positive")
	case c.World.ViewportTiles < 1:
		return fmt.Errorf("viewport of %d tiles cannot be drawn", c.World.ViewportTiles)
	case c.PowerUps.Interval <= 0:
		return errors.New("power-up interval must be positive")
	}
	return nil
}
