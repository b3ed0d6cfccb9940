package analysis

import (
	"math"
	"testing"
)

func TestAnalyzeLinearTrend(t *testing.T) {
	times := make([]float64, 100)
	values := make([]float64, 100)
	for i := range times {
		times[i] = float64(i) * 0.1
		values[i] = 2.0 - 0.5*times[i]
	}

	stats, err := Analyze(times, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(stats.DriftRate+0.5) > 1e-12 {
		t.Errorf("expected drift -0.5, got %v", stats.DriftRate)
	}
	if stats.Amplitude > 1e-12 {
		t.Errorf("expected no residual on a pure trend, got %v", stats.Amplitude)
	}
	if stats.Max != 2.0 {
		t.Errorf("expected max 2.0, got %v", stats.Max)
	}
}

func TestAnalyzeOscillation(t *testing.T) {
	n := 1000
	times := make([]float64, n)
	values := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * 0.01
		values[i] = 1.0 + 0.05*math.Sin(2*math.Pi*times[i])
	}

	stats, err := Analyze(times, values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(stats.DriftRate) > 1e-3 {
		t.Errorf("expected negligible drift, got %v", stats.DriftRate)
	}
	if math.Abs(stats.Amplitude-0.05) > 5e-3 {
		t.Errorf("expected amplitude near 0.05, got %v", stats.Amplitude)
	}
	if math.Abs(stats.Range-0.1) > 1e-3 {
		t.Errorf("expected range near 0.1, got %v", stats.Range)
	}
}

func TestAnalyzeTooShort(t *testing.T) {
	if _, err := Analyze([]float64{0}, []float64{1}); err != ErrTooShort {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
	if _, err := Analyze([]float64{0, 1}, []float64{1}); err != ErrTooShort {
		t.Errorf("expected ErrTooShort for mismatched lengths, got %v", err)
	}
}
