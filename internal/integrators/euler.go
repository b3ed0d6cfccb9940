package integrators

import "github.com/san-kum/orbitx/internal/gravity"

type Euler struct {
	acc []gravity.Vec3
}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(s *gravity.Simulation, dt float64) {
	n := s.N()
	if len(e.acc) != n {
		e.acc = make([]gravity.Vec3, n)
	}

	s.Accelerations(e.acc)
	for i := range s.Bodies {
		b := &s.Bodies[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Vel = b.Vel.Add(e.acc[i].Scale(dt))
	}

	s.T += dt
}
