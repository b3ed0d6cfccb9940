// Package analysis provides statistics over recorded element series.
package analysis

import (
	"errors"
	"math"
)

var ErrTooShort = errors.New("analysis: series needs at least two samples")

// SeriesStats summarizes a sampled scalar series such as a body's
// osculating semi-major axis over a run.
type SeriesStats struct {
	Min, Max  float64
	Range     float64
	Mean      float64
	DriftRate float64 // secular trend per unit time, least squares
	Amplitude float64 // largest deviation from the trend line
}

// Analyze fits a linear trend to values over times and reports range,
// drift rate and residual oscillation amplitude. Both slices must have
// the same length; series shorter than two samples carry no trend.
func Analyze(times, values []float64) (SeriesStats, error) {
	n := len(values)
	if n < 2 || len(times) != n {
		return SeriesStats{}, ErrTooShort
	}

	stats := SeriesStats{Min: math.Inf(1), Max: math.Inf(-1)}

	var sumT, sumV float64
	for i, v := range values {
		stats.Min = math.Min(stats.Min, v)
		stats.Max = math.Max(stats.Max, v)
		sumT += times[i]
		sumV += v
	}
	stats.Range = stats.Max - stats.Min
	stats.Mean = sumV / float64(n)

	meanT := sumT / float64(n)
	var covTV, varT float64
	for i, v := range values {
		dt := times[i] - meanT
		covTV += dt * (v - stats.Mean)
		varT += dt * dt
	}
	if varT > 0 {
		stats.DriftRate = covTV / varT
	}

	for i, v := range values {
		trend := stats.Mean + stats.DriftRate*(times[i]-meanT)
		stats.Amplitude = math.Max(stats.Amplitude, math.Abs(v-trend))
	}
	return stats, nil
}
