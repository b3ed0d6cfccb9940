package sweep

import (
	"context"
	"testing"

	"github.com/san-kum/orbitx/internal/config"
)

func TestTauASweep(t *testing.T) {
	cfg := *config.GetPreset("migrating")
	cfg.Duration = 5.0 // keep the test quick

	points := TauA(context.Background(), &cfg, []float64{50, 500})
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	for _, p := range points {
		if p.Err != nil {
			t.Fatalf("tau=%v: %v", p.TauA, p.Err)
		}
		if _, ok := p.Result.Bounds[1]; !ok {
			t.Fatalf("tau=%v: no bounds recorded", p.TauA)
		}
	}

	// stronger drag (smaller tau) migrates further inward
	fast := points[0].Result.Bounds[1].MinA
	slow := points[1].Result.Bounds[1].MinA
	if fast >= slow {
		t.Errorf("expected tau=50 to migrate below tau=500: %v vs %v", fast, slow)
	}
}

func TestSweepPropagatesBuildErrors(t *testing.T) {
	cfg := config.DefaultConfig() // no bodies

	points := TauA(context.Background(), cfg, []float64{100})
	if points[0].Err == nil {
		t.Error("expected build error for empty system")
	}
}
