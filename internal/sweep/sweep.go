// Package sweep runs the same system across a parameter grid.
package sweep

import (
	"context"
	"sync"

	"github.com/san-kum/orbitx/internal/config"
	"github.com/san-kum/orbitx/internal/effects"
	"github.com/san-kum/orbitx/internal/integrators"
	"github.com/san-kum/orbitx/internal/sim"
)

// Point is the outcome of one sweep run.
type Point struct {
	TauA   float64
	Result *sim.Result
	Err    error
}

// TauA rebuilds the configured system once per timescale value, swaps
// the value into every migration effect, and runs the sweeps
// concurrently. Each run gets its own simulation and operators, so the
// serial-execution contract holds within every run.
func TauA(ctx context.Context, cfg *config.Config, values []float64) []Point {
	points := make([]Point, len(values))

	var wg sync.WaitGroup
	for idx, tau := range values {
		wg.Add(1)
		go func(idx int, tau float64) {
			defer wg.Done()
			points[idx] = Point{TauA: tau}
			points[idx].Result, points[idx].Err = runOne(ctx, cfg, tau)
		}(idx, tau)
	}
	wg.Wait()
	return points
}

func runOne(ctx context.Context, cfg *config.Config, tau float64) (*sim.Result, error) {
	system, err := cfg.BuildSimulation()
	if err != nil {
		return nil, err
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	simulator := sim.New(system, integ)
	registry := effects.NewRegistry()
	for _, ec := range cfg.Effects {
		p := effects.Params{Primary: ec.Primary, TauA: ec.TauA, Bodies: ec.Bodies}
		if ec.Name == "migration" {
			p.TauA = tau
		}
		op, timing, err := registry.Get(ec.Name, p)
		if err != nil {
			return nil, err
		}
		simulator.AddOperator(op, timing)
	}

	return simulator.Run(ctx, sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
		RecordEvery:   cfg.RecordEvery,
	})
}
