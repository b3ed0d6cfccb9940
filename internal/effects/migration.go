package effects

import "github.com/san-kum/orbitx/internal/gravity"

// Migration damps the semi-major axes of the selected bodies on an
// exponential timescale TauA by applying a per-step velocity drag
// relative to the primary. Positive TauA migrates inward. A forcing
// effect: it kicks velocities and never touches positions.
type Migration struct {
	TauA   float64
	Bodies []int
}

func NewMigration(tauA float64, bodies ...int) *Migration {
	return &Migration{TauA: tauA, Bodies: bodies}
}

func (m *Migration) Name() string { return "migration" }

func (m *Migration) Apply(s *gravity.Simulation, dt float64) {
	if m.TauA == 0 {
		return
	}
	primary := s.Primary()

	// |da/a| = 2|dv|/v on a near-circular orbit, so halve the rate
	f := 1 - dt/(2*m.TauA)
	for _, i := range m.Bodies {
		if i <= 0 || i >= s.NActive() {
			continue
		}
		b := &s.Bodies[i]
		rel := b.Vel.Sub(primary.Vel)
		b.Vel = primary.Vel.Add(rel.Scale(f))
	}
}
