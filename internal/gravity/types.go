package gravity

// AxisBounds is the opt-in record for semi-major-axis range tracking.
// Callers attach it to a body pre-seeded with starting values; the
// tracking operator only ever widens the stored range in place.
type AxisBounds struct {
	MinA float64
	MaxA float64
}

// DistanceRecord is the opt-in record for minimum-distance tracking
// relative to the body at index From.
type DistanceRecord struct {
	Min  float64
	From int
}

// Body is a point mass. The tracking record pointers are nil unless the
// caller has opted the body in; operators never create or remove them.
type Body struct {
	Pos  Vec3
	Vel  Vec3
	Mass float64

	AxisBounds  *AxisBounds
	MinDistance *DistanceRecord
}

func (b Body) IsValid() bool {
	return b.Pos.IsValid() && b.Vel.IsValid()
}

// Simulation holds the ordered body collection. Index 0 is the
// conventional reference/primary mass. The trailing NVar bodies are
// variational and excluded from all physical tracking.
type Simulation struct {
	Bodies []Body
	NVar   int
	G      float64
	T      float64

	Softening float64
}

func NewSimulation(g float64) *Simulation {
	return &Simulation{G: g}
}

// Add appends a body ahead of the variational block and returns its index.
func (s *Simulation) Add(b Body) int {
	i := len(s.Bodies) - s.NVar
	s.Bodies = append(s.Bodies, Body{})
	copy(s.Bodies[i+1:], s.Bodies[i:])
	s.Bodies[i] = b
	return i
}

// AddVariational appends a body to the trailing variational block.
func (s *Simulation) AddVariational(b Body) int {
	s.Bodies = append(s.Bodies, b)
	s.NVar++
	return len(s.Bodies) - 1
}

// N is the total body count including variational bodies.
func (s *Simulation) N() int { return len(s.Bodies) }

// NActive is the count of physical bodies, primary included.
func (s *Simulation) NActive() int { return len(s.Bodies) - s.NVar }

func (s *Simulation) Primary() *Body { return &s.Bodies[0] }

func (s *Simulation) IsValid() bool {
	for i := range s.Bodies {
		if !s.Bodies[i].IsValid() {
			return false
		}
	}
	return true
}

// Integrator advances the simulation by one step of size dt.
type Integrator interface {
	Step(s *Simulation, dt float64)
}

// Operator is a per-step effect callback. Apply runs exactly once per
// integration step; dt is the step size just taken (or about to be
// taken, for pre-step operators). Tracking operators observe state and
// mutate only their own per-body records; forcing operators may kick
// velocities but never move positions or choose step size.
type Operator interface {
	Name() string
	Apply(s *Simulation, dt float64)
}

// Timing selects where in the step an operator runs.
type Timing int

const (
	PreStep Timing = iota
	PostStep
)

// Metric records a derived scalar over the course of a run.
type Metric interface {
	Name() string
	Observe(s *Simulation)
	Value() float64
	Reset()
}
