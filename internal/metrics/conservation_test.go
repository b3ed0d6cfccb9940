package metrics

import (
	"testing"

	"github.com/san-kum/orbitx/internal/gravity"
	"github.com/san-kum/orbitx/internal/integrators"
)

func orbitingPair() *gravity.Simulation {
	s := gravity.NewSimulation(1.0)
	s.Add(gravity.Body{Mass: 1.0})
	s.Add(gravity.Body{
		Pos:  gravity.Vec3{X: 1},
		Vel:  gravity.Vec3{Y: 1},
		Mass: 1e-3,
	})
	return s
}

func TestEnergyDriftStaysSmallUnderLeapfrog(t *testing.T) {
	s := orbitingPair()
	m := NewEnergyDrift()
	integ := integrators.NewLeapfrog()

	m.Observe(s)
	for i := 0; i < 5000; i++ {
		integ.Step(s, 1e-3)
		m.Observe(s)
	}

	if m.Value() > 1e-4 {
		t.Errorf("energy drift too large: %e", m.Value())
	}
}

func TestEnergyDriftReset(t *testing.T) {
	s := orbitingPair()
	m := NewEnergyDrift()

	m.Observe(s)
	s.Bodies[1].Vel.Y *= 2
	m.Observe(s)
	if m.Value() == 0 {
		t.Error("expected non-zero drift after velocity kick")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestAngularMomentumConserved(t *testing.T) {
	s := orbitingPair()
	m := NewAngularMomentumDrift()
	integ := integrators.NewLeapfrog()

	m.Observe(s)
	for i := 0; i < 5000; i++ {
		integ.Step(s, 1e-3)
		m.Observe(s)
	}

	if m.Value() > 1e-10 {
		t.Errorf("angular momentum drift too large: %e", m.Value())
	}
}
