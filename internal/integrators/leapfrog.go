package integrators

import "github.com/san-kum/orbitx/internal/gravity"

// Leapfrog is a kick-drift-kick symplectic stepper, the default for
// long gravitational integrations.
type Leapfrog struct {
	acc []gravity.Vec3
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) ensureScratch(n int) {
	if len(l.acc) != n {
		l.acc = make([]gravity.Vec3, n)
	}
}

func (l *Leapfrog) Step(s *gravity.Simulation, dt float64) {
	n := s.N()
	l.ensureScratch(n)
	halfDt := 0.5 * dt

	s.Accelerations(l.acc)
	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.Vel = b.Vel.Add(l.acc[i].Scale(halfDt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}

	s.Accelerations(l.acc)
	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.Vel = b.Vel.Add(l.acc[i].Scale(halfDt))
	}

	s.T += dt
}
