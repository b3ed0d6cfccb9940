package integrators

import "github.com/san-kum/orbitx/internal/gravity"

type deriv struct {
	dPos, dVel gravity.Vec3
}

// RK4 is a classical fourth-order Runge-Kutta stepper. Not symplectic;
// useful for short runs and cross-checking the leapfrog.
type RK4 struct {
	k1, k2, k3, k4 []deriv
	scratch        []gravity.Body
	acc            []gravity.Vec3
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.scratch) != n {
		r.k1 = make([]deriv, n)
		r.k2 = make([]deriv, n)
		r.k3 = make([]deriv, n)
		r.k4 = make([]deriv, n)
		r.scratch = make([]gravity.Body, n)
		r.acc = make([]gravity.Vec3, n)
	}
}

// stage evaluates derivatives at bodies offset from s.Bodies by h*prev.
func (r *RK4) stage(s *gravity.Simulation, prev []deriv, h float64, out []deriv) {
	copy(r.scratch, s.Bodies)
	if prev != nil {
		for i := range r.scratch {
			r.scratch[i].Pos = s.Bodies[i].Pos.Add(prev[i].dPos.Scale(h))
			r.scratch[i].Vel = s.Bodies[i].Vel.Add(prev[i].dVel.Scale(h))
		}
	}

	gravity.Accel(r.scratch, s.G, s.Softening, r.acc)
	for i := range out {
		out[i] = deriv{dPos: r.scratch[i].Vel, dVel: r.acc[i]}
	}
}

func (r *RK4) Step(s *gravity.Simulation, dt float64) {
	n := s.N()
	r.ensureScratch(n)

	r.stage(s, nil, 0, r.k1)
	r.stage(s, r.k1, dt*0.5, r.k2)
	r.stage(s, r.k2, dt*0.5, r.k3)
	r.stage(s, r.k3, dt, r.k4)

	dt6 := dt / 6.0
	for i := range s.Bodies {
		b := &s.Bodies[i]
		dp := r.k1[i].dPos.Add(r.k2[i].dPos.Scale(2)).Add(r.k3[i].dPos.Scale(2)).Add(r.k4[i].dPos)
		dv := r.k1[i].dVel.Add(r.k2[i].dVel.Scale(2)).Add(r.k3[i].dVel.Scale(2)).Add(r.k4[i].dVel)
		b.Pos = b.Pos.Add(dp.Scale(dt6))
		b.Vel = b.Vel.Add(dv.Scale(dt6))
	}

	s.T += dt
}
