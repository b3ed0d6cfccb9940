// Package integrators provides steppers for gravity simulations.
package integrators

import (
	"fmt"

	"github.com/san-kum/orbitx/internal/gravity"
)

// New returns the named integrator; the empty name selects leapfrog.
func New(name string) (gravity.Integrator, error) {
	switch name {
	case "leapfrog", "":
		return NewLeapfrog(), nil
	case "rk4":
		return NewRK4(), nil
	case "euler":
		return NewEuler(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}
