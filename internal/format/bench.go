package format

import (
	"fmt"
	"strings"

	"verdle/internal/benchmark"
)

// BenchmarkTable renders aggregated benchmark stats as a table.
func BenchmarkTable(stats []benchmark.Stats, mode Mode) string {
	t := NewTable(mode)
	t.Header("Solver", "Runs", "Success", "Avg ms", "Max ms", "Avg expanded", "Max frontier")
	for _, s := range stats {
		t.Row(
			strings.ToUpper(s.Solver),
			s.Runs,
			fmt.Sprintf("%.0f%%", s.SuccessRate*100),
			fmt.Sprintf("%.2f", s.AvgMillis),
			fmt.Sprintf("%.2f", s.MaxMillis),
			fmt.Sprintf("%.1f", s.AvgExpanded),
			s.MaxFrontier,
		)
	}
	return t.String()
}
