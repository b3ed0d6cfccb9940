package gravity

import (
	"math"
	"testing"
)

func TestAddKeepsVariationalBlockTrailing(t *testing.T) {
	s := NewSimulation(1.0)
	s.Add(Body{Mass: 1.0})
	s.AddVariational(Body{Pos: Vec3{X: 9}})
	i := s.Add(Body{Pos: Vec3{X: 1}})

	if i != 1 {
		t.Errorf("expected new body at index 1, got %d", i)
	}
	if s.N() != 3 || s.NActive() != 2 || s.NVar != 1 {
		t.Errorf("counts wrong: N=%d NActive=%d NVar=%d", s.N(), s.NActive(), s.NVar)
	}
	if s.Bodies[2].Pos.X != 9 {
		t.Error("variational body no longer trailing")
	}
}

func TestAccelerationsTwoBody(t *testing.T) {
	s := NewSimulation(1.0)
	s.Add(Body{Mass: 2.0})
	s.Add(Body{Pos: Vec3{X: 2}, Mass: 1.0})

	acc := make([]Vec3, 2)
	s.Accelerations(acc)

	// |a1| = G*m0/r^2 = 2/4, pointed back at the primary
	if math.Abs(acc[1].X+0.5) > 1e-15 {
		t.Errorf("expected a1.x=-0.5, got %v", acc[1].X)
	}
	// |a0| = G*m1/r^2 = 1/4
	if math.Abs(acc[0].X-0.25) > 1e-15 {
		t.Errorf("expected a0.x=0.25, got %v", acc[0].X)
	}
}

func TestEnergyAndMomentum(t *testing.T) {
	s := NewSimulation(1.0)
	s.Add(Body{Mass: 1.0})
	s.Add(Body{Pos: Vec3{X: 1}, Vel: Vec3{Y: 1}, Mass: 1.0})

	// ke = 0.5, pe = -G*m*m/r = -1
	if math.Abs(s.Energy()+0.5) > 1e-15 {
		t.Errorf("expected E=-0.5, got %v", s.Energy())
	}

	p := s.Momentum()
	if p.X != 0 || math.Abs(p.Y-1) > 1e-15 {
		t.Errorf("unexpected momentum: %+v", p)
	}

	l := s.AngularMomentum()
	if math.Abs(l.Z-1) > 1e-15 {
		t.Errorf("expected Lz=1, got %v", l.Z)
	}
}

func TestVecCross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := x.Cross(y)
	if z != (Vec3{Z: 1}) {
		t.Errorf("expected z unit vector, got %+v", z)
	}
}

func TestIsValid(t *testing.T) {
	s := NewSimulation(1.0)
	s.Add(Body{Mass: 1.0})
	if !s.IsValid() {
		t.Error("expected valid state")
	}

	s.Bodies[0].Vel.Z = math.NaN()
	if s.IsValid() {
		t.Error("expected NaN to invalidate state")
	}
}
