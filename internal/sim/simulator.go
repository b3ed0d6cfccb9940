package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitx/internal/gravity"
	"github.com/san-kum/orbitx/internal/orbit"
)

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
	RecordEvery   int // sample cadence in steps; 0 means every step
}

// Result collects what a run produced: sampled times, per-tracked-body
// osculating semi-major axis series, the final bounds records, and the
// value of every registered metric.
type Result struct {
	Times      []float64
	Axes       map[int][]float64
	Bounds     map[int]gravity.AxisBounds
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

type StepError struct {
	Step    int
	Time    float64
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

// Simulator drives one simulation: pre-step operators, the integrator,
// post-step operators, then metrics, once per step. All execution is
// serialized; operators are never re-entered concurrently.
type Simulator struct {
	sim        *gravity.Simulation
	integrator gravity.Integrator
	pre        []gravity.Operator
	post       []gravity.Operator
	metrics    []gravity.Metric
}

func New(s *gravity.Simulation, integrator gravity.Integrator) *Simulator {
	return &Simulator{
		sim:        s,
		integrator: integrator,
	}
}

// AddOperator registers op at the given step timing. Operators run in
// registration order within their slot.
func (s *Simulator) AddOperator(op gravity.Operator, timing gravity.Timing) {
	if timing == gravity.PreStep {
		s.pre = append(s.pre, op)
	} else {
		s.post = append(s.post, op)
	}
}

func (s *Simulator) AddMetric(m gravity.Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Simulation() *gravity.Simulation { return s.sim }

// Step advances one integration step: pre-step operators, the
// integrator, then post-step operators.
func (s *Simulator) Step(dt float64) {
	for _, op := range s.pre {
		op.Apply(s.sim, dt)
	}
	s.integrator.Step(s.sim, dt)
	for _, op := range s.post {
		op.Apply(s.sim, dt)
	}
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	every := cfg.RecordEvery
	if every <= 0 {
		every = 1
	}

	result := &Result{
		Times:   make([]float64, 0, steps/every+1),
		Axes:    make(map[int][]float64),
		Bounds:  make(map[int]gravity.AxisBounds),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.record(result)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		s.Step(cfg.Dt)
		for _, m := range s.metrics {
			m.Observe(s.sim)
		}

		result.StepsTaken++

		if cfg.ValidateState && !s.sim.IsValid() {
			result.Errors = append(result.Errors,
				StepError{Step: i, Time: s.sim.T, Message: "invalid state (NaN/Inf)"})
			break
		}

		if (i+1)%every == 0 {
			s.record(result)
		}
	}

	s.finish(result)
	return result, nil
}

// RunWithCallback steps the simulation, invoking callback after every
// step until it returns false or the duration elapses.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(*gravity.Simulation, int) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	steps := int(cfg.Duration / cfg.Dt)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Step(cfg.Dt)

		if cfg.ValidateState && !s.sim.IsValid() {
			return StepError{Step: i, Time: s.sim.T, Message: "invalid state (NaN/Inf)"}
		}

		if !callback(s.sim, i) {
			return nil
		}
	}
	return nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if s.sim.N() == 0 {
		return gravity.ErrNoBodies
	}
	return nil
}

// record samples the current time and, for every opted-in body, its
// osculating semi-major axis. A degenerate configuration contributes no
// sample for that body.
func (s *Simulator) record(result *Result) {
	result.Times = append(result.Times, s.sim.T)
	primary := *s.sim.Primary()
	n := s.sim.NActive()
	for i := 1; i < n; i++ {
		if s.sim.Bodies[i].AxisBounds == nil {
			continue
		}
		o, err := orbit.FromState(s.sim.G, s.sim.Bodies[i], primary)
		if err != nil {
			continue
		}
		result.Axes[i] = append(result.Axes[i], o.A)
	}
}

func (s *Simulator) finish(result *Result) {
	n := s.sim.NActive()
	for i := 1; i < n; i++ {
		if b := s.sim.Bodies[i].AxisBounds; b != nil {
			result.Bounds[i] = *b
		}
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
