package format

import (
	"fmt"
	"strings"

	"verdle/pkg/search"
)

// SolvedMark returns "✓" for true and "✗" for false.
func SolvedMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

// ResultLines renders a solver result as printable report lines: the
// summary counters followed by the guess history with symbol feedback.
func ResultLines(r *search.Result) []string {
	solved := "no"
	if r.Success {
		solved = "yes"
	}
	lines := []string{
		fmt.Sprintf("Solved: %s", solved),
		fmt.Sprintf("Guesses: %d", len(r.History)),
		fmt.Sprintf("Nodes expanded: %d", r.Expanded),
		fmt.Sprintf("Nodes generated: %d", r.Generated),
		fmt.Sprintf("Max frontier size: %d", r.FrontierMax),
	}
	if len(r.Explored) > 0 {
		lines = append(lines, fmt.Sprintf("Words explored: %d", len(r.Explored)))
	}
	if len(r.FinalPath) > 0 {
		upper := make([]string, len(r.FinalPath))
		for i, w := range r.FinalPath {
			upper[i] = strings.ToUpper(w)
		}
		lines = append(lines, fmt.Sprintf("Final path: %s", strings.Join(upper, " -> ")))
	}
	for _, step := range r.History {
		lines = append(lines, fmt.Sprintf("  %s -> %s", strings.ToUpper(step.Guess), step.Feedback.String()))
	}
	return lines
}
