package effects

import (
	"fmt"
	"sort"

	"github.com/san-kum/orbitx/internal/gravity"
)

// Params carries the per-effect settings a caller may tune. Fields not
// used by a given effect are ignored.
type Params struct {
	Primary int     // reference body index for trackers
	TauA    float64 // migration timescale
	Bodies  []int   // bodies a forcing effect acts on
}

type entry struct {
	build  func(Params) gravity.Operator
	timing gravity.Timing
}

// Registry maps effect names to factories, with each effect's default
// step timing: trackers observe post-step state, forcing effects kick
// before the step.
type Registry struct {
	effects map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{effects: make(map[string]entry)}

	r.effects["track_minmax_a"] = entry{
		build: func(p Params) gravity.Operator {
			return &TrackMinMaxA{Primary: p.Primary}
		},
		timing: gravity.PostStep,
	}
	r.effects["track_min_distance"] = entry{
		build: func(p Params) gravity.Operator {
			return NewTrackMinDistance()
		},
		timing: gravity.PostStep,
	}
	r.effects["migration"] = entry{
		build: func(p Params) gravity.Operator {
			return NewMigration(p.TauA, p.Bodies...)
		},
		timing: gravity.PreStep,
	}

	return r
}

func (r *Registry) Get(name string, p Params) (gravity.Operator, gravity.Timing, error) {
	e, ok := r.effects[name]
	if !ok {
		return nil, 0, fmt.Errorf("unknown effect: %s", name)
	}
	return e.build(p), e.timing, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.effects))
	for name := range r.effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
