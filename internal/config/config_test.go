package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v on the default configuration", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultCubeYAML, &cfg); err != nil {
		t.Fatalf("failed to parse embedded defaults: %v", err)
	}

	want := DefaultConfig()
	fields := []struct {
		name string
		got  float64
		want float64
	}{
		{"avatar.side", cfg.Avatar.Side, want.Avatar.Side},
		{"avatar.position.x", cfg.Avatar.Position.X, want.Avatar.Position.X},
		{"avatar.position.y", cfg.Avatar.Position.Y, want.Avatar.Position.Y},
		{"avatar.position.z", cfg.Avatar.Position.Z, want.Avatar.Position.Z},
		{"physics.gravity", cfg.Physics.Gravity, want.Physics.Gravity},
		{"physics.jump_velocity.z", cfg.Physics.JumpVelocity.Z, want.Physics.JumpVelocity.Z},
		{"camera.velocity", cfg.Camera.Velocity, want.Camera.Velocity},
		{"camera.acceleration", cfg.Camera.Acceleration, want.Camera.Acceleration},
		{"camera.position", cfg.Camera.Position, want.Camera.Position},
		{"camera.death_zone", cfg.Camera.DeathZone, want.Camera.DeathZone},
		{"camera.fall_duration", cfg.Camera.FallDuration, want.Camera.FallDuration},
		{"world.walk_zone", cfg.World.WalkZone, want.World.WalkZone},
		{"power_ups.interval", cfg.PowerUps.Interval, want.PowerUps.Interval},
	}
	for _, f := range fields {
		if math.Abs(f.got-f.want) > 1e-12 {
			t.Errorf("%s = %v, expected %v", f.name, f.got, f.want)
		}
	}
	if cfg.World.CorridorWidth != want.World.CorridorWidth {
		t.Errorf("world.corridor_width = %d, expected %d", cfg.World.CorridorWidth, want.World.CorridorWidth)
	}
	if cfg.World.ViewportTiles != want.World.ViewportTiles {
		t.Errorf("world.viewport_tiles = %d, expected %d", cfg.World.ViewportTiles, want.World.ViewportTiles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v on the embedded defaults", err)
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero side", func(c *Config) { c.Avatar.Side = 0 }},
		{"upward gravity", func(c *Config) { c.Physics.Gravity = 9.8 }},
		{"downward jump", func(c *Config) { c.Physics.JumpVelocity.Z = -1 }},
		{"stopped camera", func(c *Config) { c.Camera.Velocity = 0 }},
		{"no acceleration", func(c *Config) { c.Camera.Acceleration = 0 }},
		{"no death zone", func(c *Config) { c.Camera.DeathZone = 0 }},
		{"no fall duration", func(c *Config) { c.Camera.FallDuration = 0 }},
		{"no corridor", func(c *Config) { c.World.CorridorWidth = 0 }},
		{"no walk zone", func(c *Config) { c.World.WalkZone = 0 }},
		{"no viewport", func(c *Config) { c.World.ViewportTiles = 0 }},
		{"no interval", func(c *Config) { c.PowerUps.Interval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.yaml")
	custom := []byte(`
avatar:
  side: 0.5
  position: {x: -0.25, y: -0.25, z: 0}
physics:
  gravity: -20.0
  jump_velocity: {x: 0, y: 0, z: 8.0}
camera:
  velocity: 1.0
  acceleration: 0.2
  position: -1.0
  death_zone: 3.0
  fall_duration: 2.0
world:
  corridor_width: 2
  walk_zone: 15.0
  viewport_tiles: 16
power_ups:
  interval: 5.0
`)
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Avatar.Side != 0.5 {
		t.Errorf("avatar.side = %v, expected 0.5", cfg.Avatar.Side)
	}
	if cfg.Physics.Gravity != -20.0 {
		t.Errorf("physics.gravity = %v, expected -20.0", cfg.Physics.Gravity)
	}
	if cfg.World.ViewportTiles != 16 {
		t.Errorf("world.viewport_tiles = %d, expected 16", cfg.World.ViewportTiles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v on the custom config", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() = nil error for a missing explicit path")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("avatar: ["), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed YAML")
	}
}
