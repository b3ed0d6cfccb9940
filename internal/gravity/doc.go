// Package gravity provides the core primitives for N-body gravitational
// simulation with per-step effect operators.
//
// The package defines the fundamental types and interfaces:
//
//   - [Vec3]: Cartesian vector arithmetic
//   - [Body]: point mass with position, velocity and opt-in tracking records
//   - [Simulation]: ordered body collection with primary at index 0
//   - [Integrator]: numerical stepper interface
//   - [Operator]: per-step effect callback interface
//   - [Metric]: per-step derived quantity recorder
//
// # Conventions
//
// Body index 0 is the reference/primary mass. A trailing block of NVar
// variational bodies carries derivative information and is excluded from
// all physical tracking. Units are whatever the caller chooses, as long
// as G is consistent with them.
//
// # Thread Safety
//
// Simulation instances are NOT thread-safe. The step loop serializes all
// operator and metric execution; operators may mutate per-body tracking
// records in place without locking.
package gravity
