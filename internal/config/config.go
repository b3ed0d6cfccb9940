package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitx/internal/gravity"
)

const (
	DefaultDt       = 1e-3
	DefaultDuration = 100.0
	DefaultG        = 1.0
)

type Config struct {
	Integrator  string         `yaml:"integrator"`
	Dt          float64        `yaml:"dt"`
	Duration    float64        `yaml:"duration"`
	RecordEvery int            `yaml:"record_every"`
	G           float64        `yaml:"g"`
	Softening   float64        `yaml:"softening"`
	Bodies      []BodyConfig   `yaml:"bodies"`
	Effects     []EffectConfig `yaml:"effects"`
}

type BodyConfig struct {
	Mass        float64       `yaml:"mass"`
	Pos         [3]float64    `yaml:"pos,flow"`
	Vel         [3]float64    `yaml:"vel,flow"`
	Variational bool          `yaml:"variational,omitempty"`
	TrackA      *TrackAConfig `yaml:"track_a,omitempty"`
	TrackDist   *TrackDConfig `yaml:"track_distance,omitempty"`
}

// TrackAConfig seeds a body's semi-major-axis bounds. Omitting min and
// max seeds both at infinity so the first valid orbit pins them.
type TrackAConfig struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

type TrackDConfig struct {
	From int      `yaml:"from"`
	Min  *float64 `yaml:"min,omitempty"`
}

type EffectConfig struct {
	Name    string  `yaml:"name"`
	Primary int     `yaml:"primary,omitempty"`
	TauA    float64 `yaml:"tau_a,omitempty"`
	Bodies  []int   `yaml:"bodies,flow,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: "leapfrog",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		G:          DefaultG,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildSimulation constructs a gravity.Simulation from the configured
// bodies, attaching opt-in tracking records where requested.
func (c *Config) BuildSimulation() (*gravity.Simulation, error) {
	if len(c.Bodies) == 0 {
		return nil, gravity.ErrNoBodies
	}

	s := gravity.NewSimulation(c.G)
	s.Softening = c.Softening

	for i, bc := range c.Bodies {
		b := gravity.Body{
			Mass: bc.Mass,
			Pos:  gravity.Vec3{X: bc.Pos[0], Y: bc.Pos[1], Z: bc.Pos[2]},
			Vel:  gravity.Vec3{X: bc.Vel[0], Y: bc.Vel[1], Z: bc.Vel[2]},
		}

		if bc.TrackA != nil {
			b.AxisBounds = &gravity.AxisBounds{
				MinA: orSeed(bc.TrackA.Min, math.Inf(1)),
				MaxA: orSeed(bc.TrackA.Max, math.Inf(-1)),
			}
		}
		if bc.TrackDist != nil {
			if bc.TrackDist.From < 0 || bc.TrackDist.From >= len(c.Bodies) {
				return nil, fmt.Errorf("body %d: track_distance.from %d out of range", i, bc.TrackDist.From)
			}
			b.MinDistance = &gravity.DistanceRecord{
				Min:  orSeed(bc.TrackDist.Min, math.Inf(1)),
				From: bc.TrackDist.From,
			}
		}

		if bc.Variational {
			s.AddVariational(b)
		} else {
			s.Add(b)
		}
	}
	return s, nil
}

func orSeed(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
