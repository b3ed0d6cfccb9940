package gravity

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a body with NaN or Inf components.
	ErrInvalidState = errors.New("gravity: invalid state (NaN or Inf detected)")

	// ErrNoBodies indicates a simulation with no primary body.
	ErrNoBodies = errors.New("gravity: simulation has no bodies")

	// ErrBodyIndex indicates a body index outside the physical range.
	ErrBodyIndex = errors.New("gravity: body index out of range")
)
