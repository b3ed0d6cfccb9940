// Package orbit derives osculating two-body elements from Cartesian state.
package orbit

import (
	"errors"
	"math"

	"github.com/san-kum/orbitx/internal/gravity"
)

// Degenerate configurations for which no semi-major axis exists.
var (
	// ErrZeroMu indicates the combined gravitational parameter is not positive.
	ErrZeroMu = errors.New("orbit: gravitational parameter must be positive")

	// ErrCoincident indicates body and primary share a position.
	ErrCoincident = errors.New("orbit: body coincides with primary")

	// ErrParabolic indicates a zero-energy orbit with undefined semi-major axis.
	ErrParabolic = errors.New("orbit: semi-major axis undefined for parabolic orbit")
)

// Orbit is an ephemeral derived value, recomputed fresh from current
// Cartesian state and never persisted.
type Orbit struct {
	A      float64 // semi-major axis; positive for bound elliptical orbits
	E      float64 // eccentricity
	Period float64 // orbital period; zero for unbound orbits
}

// FromState returns the osculating orbit of body b relative to primary,
// given the gravitational constant g. The semi-major axis follows the
// usual sign convention: positive for bound orbits, negative for
// hyperbolic ones.
func FromState(g float64, b, primary gravity.Body) (Orbit, error) {
	mu := g * (b.Mass + primary.Mass)
	if mu <= 0 {
		return Orbit{}, ErrZeroMu
	}

	dp := b.Pos.Sub(primary.Pos)
	dv := b.Vel.Sub(primary.Vel)

	r := dp.Norm()
	if r == 0 {
		return Orbit{}, ErrCoincident
	}

	// specific orbital energy: E = v^2/2 - mu/r, a = -mu/2E
	energy := 0.5*dv.Norm2() - mu/r
	if energy == 0 {
		return Orbit{}, ErrParabolic
	}
	a := -mu / (2 * energy)

	h := dp.Cross(dv)
	e2 := 1 + 2*energy*h.Norm2()/(mu*mu)
	if e2 < 0 {
		e2 = 0 // roundoff for near-circular orbits
	}

	o := Orbit{A: a, E: math.Sqrt(e2)}
	if a > 0 {
		o.Period = 2 * math.Pi * math.Sqrt(a*a*a/mu)
	}
	return o, nil
}

// SemiMajorAxis is a convenience wrapper for callers that only need a.
func SemiMajorAxis(g float64, b, primary gravity.Body) (float64, error) {
	o, err := FromState(g, b, primary)
	if err != nil {
		return 0, err
	}
	return o.A, nil
}
