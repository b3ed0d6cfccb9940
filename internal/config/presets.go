package config

func ptr(v float64) *float64 { return &v }

// Presets are ready-made systems in G=1 units with the primary at rest
// at the origin.
var Presets = map[string]*Config{
	"kepler": {
		Integrator: "leapfrog", Dt: 1e-3, Duration: 100.0, G: 1.0,
		Bodies: []BodyConfig{
			{Mass: 1.0},
			{Pos: [3]float64{1, 0, 0}, Vel: [3]float64{0, 1, 0},
				TrackA: &TrackAConfig{Min: ptr(1.0), Max: ptr(1.0)}},
		},
		Effects: []EffectConfig{{Name: "track_minmax_a"}},
	},
	"migrating": {
		Integrator: "leapfrog", Dt: 1e-3, Duration: 200.0, G: 1.0,
		Bodies: []BodyConfig{
			{Mass: 1.0},
			{Pos: [3]float64{1, 0, 0}, Vel: [3]float64{0, 1, 0},
				TrackA: &TrackAConfig{Min: ptr(1.0), Max: ptr(1.0)}},
		},
		Effects: []EffectConfig{
			{Name: "track_minmax_a"},
			{Name: "migration", TauA: 500.0, Bodies: []int{1}},
		},
	},
	"close-encounter": {
		Integrator: "leapfrog", Dt: 1e-4, Duration: 50.0, G: 1.0,
		Bodies: []BodyConfig{
			{Mass: 1.0},
			{Pos: [3]float64{1, 0, 0}, Vel: [3]float64{0, 1, 0},
				TrackA: &TrackAConfig{}},
			{Pos: [3]float64{-1.05, 0, 0}, Vel: [3]float64{0, -0.95, 0},
				TrackA: &TrackAConfig{}, TrackDist: &TrackDConfig{From: 1}},
		},
		Effects: []EffectConfig{
			{Name: "track_minmax_a"},
			{Name: "track_min_distance"},
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
