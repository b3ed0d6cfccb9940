// Package effects provides per-step operators that run alongside the
// core dynamics.
//
// Each operator implements [gravity.Operator] and is invoked exactly
// once per integration step by the step loop:
//
//   - [TrackMinMaxA]: running min/max bounds on osculating semi-major axis
//   - [TrackMinDistance]: running minimum distance to a designated body
//   - [Migration]: exponential semi-major-axis damping (velocity drag)
//
// Tracking operators are strictly opt-in: a body participates only if
// the caller attached the corresponding record to it beforehand, and
// the operator never creates, removes or re-tightens a record. Forcing
// operators such as [Migration] kick velocities but never move
// positions or choose the step size.
package effects
