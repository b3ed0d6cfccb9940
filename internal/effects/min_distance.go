package effects

import "github.com/san-kum/orbitx/internal/gravity"

// TrackMinDistance maintains a running minimum on each opted-in body's
// distance to a designated body. Opt-in works like TrackMinMaxA: the
// caller attaches a DistanceRecord pre-seeded with a starting value and
// the index of the body to measure from.
type TrackMinDistance struct{}

func NewTrackMinDistance() *TrackMinDistance {
	return &TrackMinDistance{}
}

func (op *TrackMinDistance) Name() string { return "track_min_distance" }

func (op *TrackMinDistance) Apply(s *gravity.Simulation, dt float64) {
	n := s.NActive()
	for i := 1; i < n; i++ {
		rec := s.Bodies[i].MinDistance
		if rec == nil {
			continue
		}
		if rec.From < 0 || rec.From >= n || rec.From == i {
			continue
		}

		d := s.Bodies[i].Pos.Sub(s.Bodies[rec.From].Pos).Norm()
		if d < rec.Min {
			rec.Min = d
		}
	}
}
