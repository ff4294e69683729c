// Package config handles simulation configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/buoyancy/internal/buoyancy"
	"github.com/Faultbox/buoyancy/internal/water"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all simulation settings.
type Config struct {
	Water      WaterConfig      `yaml:"water" toml:"water"`
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Bodies     []BodyConfig     `yaml:"bodies" toml:"bodies"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// WaterConfig describes the shared wave surface.
type WaterConfig struct {
	Length    float32 `yaml:"length" toml:"length"`
	Amplitude float32 `yaml:"amplitude" toml:"amplitude"`
	Speed     float32 `yaml:"speed" toml:"speed"`
	Phase     float32 `yaml:"phase" toml:"phase"`
}

// Params converts the section to wave field parameters.
func (w WaterConfig) Params() water.Params {
	return water.Params{
		Length:    w.Length,
		Amplitude: w.Amplitude,
		Speed:     w.Speed,
		Phase:     w.Phase,
	}
}

// SimulationConfig holds fixed-step timing and world settings.
type SimulationConfig struct {
	FixedStep float32    `yaml:"fixed_step" toml:"fixed_step"` // Seconds per tick
	Duration  float32    `yaml:"duration" toml:"duration"`     // Seconds to simulate headless
	Gravity   [3]float32 `yaml:"gravity" toml:"gravity"`
	LogEvery  int        `yaml:"log_every" toml:"log_every"` // Ticks between state logs, 0 disables
}

// BodyConfig describes one floating body.
// A zero Scale is read as unit scale so files may omit it.
type BodyConfig struct {
	Name         string     `yaml:"name" toml:"name"`
	Position     [3]float32 `yaml:"position" toml:"position"`
	Rotation     [3]float32 `yaml:"rotation" toml:"rotation"` // Euler degrees: pitch, yaw, roll
	Scale        [3]float32 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Mass         float32    `yaml:"mass" toml:"mass"`
	Static       bool       `yaml:"static,omitempty" toml:"static,omitempty"`
	BoundsCenter [3]float32 `yaml:"bounds_center" toml:"bounds_center"`
	BoundsSize   [3]float32 `yaml:"bounds_size" toml:"bounds_size"`
	Grid         [3]int     `yaml:"grid" toml:"grid"`
	TotalForce   float32    `yaml:"total_force" toml:"total_force"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Water: WaterConfig{
			Length:    2,
			Amplitude: 1,
			Speed:     1,
		},
		Simulation: SimulationConfig{
			FixedStep: 0.02,
			Duration:  10,
			Gravity:   [3]float32{0, -9.81, 0},
			LogEvery:  50,
		},
		Bodies: []BodyConfig{
			{
				Name:       "crate",
				Position:   [3]float32{0, 2, 0},
				Scale:      [3]float32{1, 1, 1},
				Mass:       20000,
				BoundsSize: [3]float32{2, 1, 4},
				Grid:       [3]int{10, 10, 10},
				TotalForce: 500000,
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings that would only fail later as NaN forces.
func (c *Config) Validate() error {
	if err := c.Water.Params().Validate(); err != nil {
		return fmt.Errorf("%w: water: %w", ErrInvalidConfig, err)
	}
	sim := c.Simulation
	if !(sim.FixedStep > 0) || !finite(sim.FixedStep) {
		return fmt.Errorf("%w: simulation.fixed_step must be positive and finite, got %v", ErrInvalidConfig, sim.FixedStep)
	}
	if !(sim.Duration >= 0) || !finite(sim.Duration) {
		return fmt.Errorf("%w: simulation.duration must be finite and not negative, got %v", ErrInvalidConfig, sim.Duration)
	}
	if !finite(sim.Gravity[:]...) {
		return fmt.Errorf("%w: simulation.gravity must be finite, got %v", ErrInvalidConfig, sim.Gravity)
	}

	seen := make(map[string]bool, len(c.Bodies))
	for i, b := range c.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate body name %q", ErrInvalidConfig, name)
		}
		seen[name] = true

		if err := b.validate(); err != nil {
			return fmt.Errorf("%w: body %s: %w", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

func (b BodyConfig) validate() error {
	g := buoyancy.Grid{X: b.Grid[0], Y: b.Grid[1], Z: b.Grid[2]}
	if g.X < 1 || g.Y < 1 || g.Z < 1 {
		return fmt.Errorf("%w: got %v", buoyancy.ErrInvalidGridDimension, b.Grid)
	}
	if !finite(b.TotalForce) {
		return fmt.Errorf("%w: got %v", buoyancy.ErrInvalidForce, b.TotalForce)
	}
	if !finite(b.BoundsCenter[:]...) || !finite(b.BoundsSize[:]...) {
		return fmt.Errorf("%w: center %v size %v", buoyancy.ErrInvalidBounds, b.BoundsCenter, b.BoundsSize)
	}
	if !finite(b.Position[:]...) || !finite(b.Rotation[:]...) {
		return fmt.Errorf("position and rotation must be finite, got %v %v", b.Position, b.Rotation)
	}
	// All zero means unit scale. Otherwise every axis needs a usable factor.
	if b.Scale != ([3]float32{}) {
		for _, v := range b.Scale {
			if v == 0 || !finite(v) {
				return fmt.Errorf("scale components must be nonzero and finite, got %v", b.Scale)
			}
		}
	}
	if !finite(b.Mass) || (!b.Static && b.Mass <= 0) {
		return fmt.Errorf("mass must be positive and finite, got %v", b.Mass)
	}
	return nil
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
