package sim

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/orbitx/internal/effects"
	"github.com/san-kum/orbitx/internal/gravity"
	"github.com/san-kum/orbitx/internal/integrators"
)

func testSystem() *gravity.Simulation {
	s := gravity.NewSimulation(1.0)
	s.Add(gravity.Body{Mass: 1.0})
	s.Add(gravity.Body{
		Pos:        gravity.Vec3{X: 1},
		Vel:        gravity.Vec3{Y: 1},
		AxisBounds: &gravity.AxisBounds{MinA: 1.0, MaxA: 1.0},
	})
	return s
}

func TestRunRecordsTrackedAxes(t *testing.T) {
	s := New(testSystem(), integrators.NewLeapfrog())
	s.AddOperator(effects.NewTrackMinMaxA(), gravity.PostStep)

	result, err := s.Run(context.Background(), Config{Dt: 1e-3, Duration: 1.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.StepsTaken != 1000 {
		t.Errorf("expected 1000 steps, got %d", result.StepsTaken)
	}
	if len(result.Axes[1]) == 0 {
		t.Fatal("expected recorded axis series for body 1")
	}
	for _, a := range result.Axes[1] {
		if math.Abs(a-1.0) > 1e-4 {
			t.Errorf("osculating a drifted: %v", a)
		}
	}

	bounds, ok := result.Bounds[1]
	if !ok {
		t.Fatal("expected final bounds for body 1")
	}
	if bounds.MinA > 1.0 || bounds.MaxA < 1.0 {
		t.Errorf("bounds exclude true value: %+v", bounds)
	}
}

func TestRunOperatorOrdering(t *testing.T) {
	var order []string
	pre := opFunc{"pre", func(*gravity.Simulation, float64) { order = append(order, "pre") }}
	post := opFunc{"post", func(*gravity.Simulation, float64) { order = append(order, "post") }}

	s := New(testSystem(), integrators.NewLeapfrog())
	s.AddOperator(post, gravity.PostStep)
	s.AddOperator(pre, gravity.PreStep)

	_, err := s.Run(context.Background(), Config{Dt: 0.1, Duration: 0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(order) != 2 || order[0] != "pre" || order[1] != "post" {
		t.Errorf("wrong operator ordering: %v", order)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	s := New(testSystem(), integrators.NewLeapfrog())

	if _, err := s.Run(context.Background(), Config{Dt: 0, Duration: 1}); err == nil {
		t.Error("expected error for zero dt")
	}
	if _, err := s.Run(context.Background(), Config{Dt: 0.1, Duration: -1}); err == nil {
		t.Error("expected error for negative duration")
	}

	empty := New(gravity.NewSimulation(1.0), integrators.NewLeapfrog())
	if _, err := empty.Run(context.Background(), Config{Dt: 0.1, Duration: 1}); err != gravity.ErrNoBodies {
		t.Errorf("expected ErrNoBodies, got %v", err)
	}
}

func TestRunContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(testSystem(), integrators.NewLeapfrog())
	result, err := s.Run(ctx, Config{Dt: 1e-3, Duration: 10})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result == nil || result.StepsTaken != 0 {
		t.Error("expected partial result with zero steps")
	}
}

func TestRunValidateStateStops(t *testing.T) {
	s := testSystem()
	sim := New(s, integrators.NewLeapfrog())
	poison := opFunc{"poison", func(g *gravity.Simulation, _ float64) {
		g.Bodies[1].Vel.X = math.NaN()
	}}
	sim.AddOperator(poison, gravity.PostStep)

	result, err := sim.Run(context.Background(), Config{Dt: 1e-3, Duration: 1, ValidateState: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected recorded step error")
	}
	if result.StepsTaken != 1 {
		t.Errorf("expected run to stop after first poisoned step, got %d", result.StepsTaken)
	}
}

func TestRunWithCallbackStopsEarly(t *testing.T) {
	s := New(testSystem(), integrators.NewLeapfrog())

	count := 0
	err := s.RunWithCallback(context.Background(), Config{Dt: 1e-3, Duration: 1},
		func(*gravity.Simulation, int) bool {
			count++
			return count < 5
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 callbacks, got %d", count)
	}
}

type opFunc struct {
	name string
	fn   func(*gravity.Simulation, float64)
}

func (o opFunc) Name() string                            { return o.name }
func (o opFunc) Apply(s *gravity.Simulation, dt float64) { o.fn(s, dt) }
