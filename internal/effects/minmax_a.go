package effects

import (
	"github.com/san-kum/orbitx/internal/gravity"
	"github.com/san-kum/orbitx/internal/orbit"
)

// TrackMinMaxA maintains running min/max bounds on each opted-in body's
// osculating semi-major axis relative to the primary.
//
// A body opts in by carrying a pre-seeded AxisBounds record; sensible
// starting values are its initial semi-major axis or +/-infinity. The
// operator only ever widens the stored range: MinA is non-increasing
// and MaxA is non-decreasing across invocations. Bodies without a
// record, the primary itself and variational bodies are never touched.
type TrackMinMaxA struct {
	// Primary is the reference body index all semi-major axes are
	// computed relative to. Conventionally 0.
	Primary int
}

func NewTrackMinMaxA() *TrackMinMaxA {
	return &TrackMinMaxA{}
}

func (op *TrackMinMaxA) Name() string { return "track_minmax_a" }

// Apply recomputes each opted-in body's osculating orbit and tightens
// its bounds in place. dt is accepted for interface uniformity; the
// derivation is instantaneous and keeps no cross-step state. A
// degenerate configuration leaves that body's bounds untouched for
// this step, with no diagnostic.
func (op *TrackMinMaxA) Apply(s *gravity.Simulation, dt float64) {
	if op.Primary < 0 || op.Primary >= s.NActive() {
		return
	}
	primary := s.Bodies[op.Primary]

	n := s.NActive()
	for i := 0; i < n; i++ {
		if i == op.Primary {
			continue
		}
		bounds := s.Bodies[i].AxisBounds
		if bounds == nil {
			continue
		}

		o, err := orbit.FromState(s.G, s.Bodies[i], primary)
		if err != nil {
			continue
		}

		// both comparisons run against the pre-update stored values
		if o.A < bounds.MinA {
			bounds.MinA = o.A
		}
		if o.A > bounds.MaxA {
			bounds.MaxA = o.A
		}
	}
}
