package search

import (
	"math"
	"testing"
)

func TestCostConstant(t *testing.T) {
	if got := CostConstant(1000, 1); got != 1.0 {
		t.Errorf("CostConstant = %v, want 1.0", got)
	}
}

func TestCostReduction(t *testing.T) {
	tests := []struct {
		before, after int
		want          float64
	}{
		{100, 50, 1.5},
		{100, 100, 2.0},
		{10, 0, 1.0},
		{0, 0, 1.0}, // guarded division
	}
	for _, tt := range tests {
		if got := CostReduction(tt.before, tt.after); got != tt.want {
			t.Errorf("CostReduction(%d, %d) = %v, want %v", tt.before, tt.after, got, tt.want)
		}
	}
}

func TestHeuristicLog2(t *testing.T) {
	if got := HeuristicLog2(1); got != 0 {
		t.Errorf("HeuristicLog2(1) = %v, want 0", got)
	}
	if got := HeuristicLog2(8); got != 3 {
		t.Errorf("HeuristicLog2(8) = %v, want 3", got)
	}
	if got := HeuristicLog2(0); got != 0 {
		t.Errorf("HeuristicLog2(0) = %v, want 0 (clamped)", got)
	}
}

func TestHeuristicLog2_Admissible(t *testing.T) {
	// Each guess splits the pool into at most 3^length feedback classes,
	// but admissibility only needs: log2(n) <= n-1 guesses for n >= 2, and
	// monotone growth.
	for n := 2; n <= 1024; n *= 2 {
		if h := HeuristicLog2(n); h > float64(n-1) {
			t.Errorf("HeuristicLog2(%d) = %v overestimates worst-case %d", n, h, n-1)
		}
	}
	if math.IsInf(HeuristicLog2(1<<30), 0) {
		t.Error("HeuristicLog2 overflowed")
	}
}

func TestByName(t *testing.T) {
	if _, err := CostByName("constant"); err != nil {
		t.Errorf("CostByName(constant): %v", err)
	}
	if _, err := CostByName("reduction"); err != nil {
		t.Errorf("CostByName(reduction): %v", err)
	}
	if _, err := CostByName("nope"); err == nil {
		t.Error("CostByName(nope) succeeded, want error")
	}
	if _, err := HeuristicByName("log2"); err != nil {
		t.Errorf("HeuristicByName(log2): %v", err)
	}
	if _, err := HeuristicByName("nope"); err == nil {
		t.Error("HeuristicByName(nope) succeeded, want error")
	}
}

func TestNames_Sorted(t *testing.T) {
	costs := CostNames()
	if len(costs) != 2 || costs[0] != "constant" || costs[1] != "reduction" {
		t.Errorf("CostNames = %v", costs)
	}
	hs := HeuristicNames()
	if len(hs) != 1 || hs[0] != "log2" {
		t.Errorf("HeuristicNames = %v", hs)
	}
}
