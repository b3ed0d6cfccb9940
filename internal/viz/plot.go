// Package viz renders tracked element series in the terminal.
package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlotAxes renders one graph per tracked body from a run's sampled
// semi-major-axis series.
func PlotAxes(times []float64, axes map[int][]float64) string {
	bodies := make([]int, 0, len(axes))
	for i := range axes {
		bodies = append(bodies, i)
	}
	sort.Ints(bodies)

	var sb strings.Builder
	for _, i := range bodies {
		series := axes[i]
		if len(series) < 2 {
			continue
		}

		caption := fmt.Sprintf("body %d: semi-major axis", i)
		if len(times) > 0 {
			caption = fmt.Sprintf("body %d: semi-major axis, t=[%.2f, %.2f]",
				i, times[0], times[len(times)-1])
		}
		graph := asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
