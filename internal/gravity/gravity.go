package gravity

import "math"

// Accel computes direct-sum gravitational accelerations for bodies into
// acc, which must have length len(bodies). Variational bodies feel and
// exert forces like any other body; excluding them is the tracker's job,
// not the force loop's.
func Accel(bodies []Body, g, softening float64, acc []Vec3) {
	n := len(bodies)
	for i := range acc[:n] {
		acc[i] = Vec3{}
	}
	eps2 := softening * softening

	for i := 0; i < n; i++ {
		pi := bodies[i].Pos
		for j := i + 1; j < n; j++ {
			d := bodies[j].Pos.Sub(pi)
			r2 := d.Norm2() + eps2

			rInv := 1.0 / math.Sqrt(r2)
			r3Inv := rInv * rInv * rInv

			acc[i] = acc[i].Add(d.Scale(g * bodies[j].Mass * r3Inv))
			acc[j] = acc[j].Sub(d.Scale(g * bodies[i].Mass * r3Inv))
		}
	}
}

// Accelerations computes accelerations for the simulation's own bodies.
func (s *Simulation) Accelerations(acc []Vec3) {
	Accel(s.Bodies, s.G, s.Softening, acc)
}

// Energy returns the total mechanical energy (kinetic + potential).
func (s *Simulation) Energy() float64 {
	ke := 0.0
	pe := 0.0
	eps2 := s.Softening * s.Softening

	for i := range s.Bodies {
		bi := &s.Bodies[i]
		ke += 0.5 * bi.Mass * bi.Vel.Norm2()

		for j := i + 1; j < len(s.Bodies); j++ {
			r := math.Sqrt(s.Bodies[j].Pos.Sub(bi.Pos).Norm2() + eps2)
			pe -= s.G * bi.Mass * s.Bodies[j].Mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum.
func (s *Simulation) Momentum() Vec3 {
	var p Vec3
	for i := range s.Bodies {
		p = p.Add(s.Bodies[i].Vel.Scale(s.Bodies[i].Mass))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func (s *Simulation) AngularMomentum() Vec3 {
	var l Vec3
	for i := range s.Bodies {
		b := &s.Bodies[i]
		l = l.Add(b.Pos.Cross(b.Vel).Scale(b.Mass))
	}
	return l
}
