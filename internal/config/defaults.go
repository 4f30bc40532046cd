package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/cube.yaml
var defaultCubeYAML []byte

// DefaultConfig returns the default cube runner configuration.
func DefaultConfig() Config {
	return Config{
		Avatar: AvatarConfig{
			Side:     1.0,
			Position: Point{X: -0.5, Y: -0.5, Z: 0},
		},
		Physics: PhysicsConfig{
			Gravity:      -30.0,
			JumpVelocity: Point{X: 0, Y: 0, Z: 10.0},
		},
		Camera: CameraConfig{
			Velocity:     math.Sqrt2,
			Acceleration: 0.1 * math.Sqrt2,
			Position:     -2.0,
			DeathZone:    4.0,
			FallDuration: 2.5,
		},
		World: WorldConfig{
			CorridorWidth: 3,
			WalkZone:      20.0,
			ViewportTiles: 24,
		},
		PowerUps: PowerUpsConfig{
			Interval: 10.0,
		},
	}
}
