package search

import (
	"fmt"
	"math"
	"sort"
)

// CostFunc scores one guess step from the candidate counts before and
// after the guess. Costs must be non-negative for UCS and A* to keep
// their ordering guarantees.
type CostFunc func(before, after int) float64

// HeuristicFunc estimates the remaining cost from a state with the given
// candidate count. A* optimality requires the estimate never to exceed the
// true remaining cost.
type HeuristicFunc func(remaining int) float64

// CostConstant charges 1 per guess regardless of outcome. Under it UCS
// degenerates to breadth-first ordering.
func CostConstant(before, after int) float64 { return 1.0 }

// CostReduction charges 1 + after/before, rewarding guesses that shrink
// the candidate pool more.
func CostReduction(before, after int) float64 {
	if before == 0 {
		return 1.0
	}
	return 1.0 + float64(after)/float64(before)
}

// HeuristicLog2 is the information-theoretic floor: log2 of the remaining
// candidate count is the minimum number of binary splits needed to isolate
// one word, so it never overestimates.
func HeuristicLog2(remaining int) float64 {
	if remaining < 1 {
		remaining = 1
	}
	return math.Log2(float64(remaining))
}

var costFuncs = map[string]CostFunc{
	"constant":  CostConstant,
	"reduction": CostReduction,
}

var heuristicFuncs = map[string]HeuristicFunc{
	"log2": HeuristicLog2,
}

// CostByName resolves a cost function. Known names: constant, reduction.
func CostByName(name string) (CostFunc, error) {
	fn, ok := costFuncs[name]
	if !ok {
		return nil, fmt.Errorf("search: unknown cost function %q (available: %v)", name, CostNames())
	}
	return fn, nil
}

// HeuristicByName resolves a heuristic. Known names: log2. Only admissible
// heuristics are registered.
func HeuristicByName(name string) (HeuristicFunc, error) {
	fn, ok := heuristicFuncs[name]
	if !ok {
		return nil, fmt.Errorf("search: unknown heuristic %q (available: %v)", name, HeuristicNames())
	}
	return fn, nil
}

// CostNames lists the registered cost functions, sorted.
func CostNames() []string { return sortedKeys(costFuncs) }

// HeuristicNames lists the registered heuristics, sorted.
func HeuristicNames() []string { return sortedKeys(heuristicFuncs) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
