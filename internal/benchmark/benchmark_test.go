package benchmark

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"verdle/pkg/feedback"
)

var benchWords = []string{"allow", "alloy", "apple", "angel", "ankle"}

func TestLoadSuite_Embedded(t *testing.T) {
	s, err := LoadSuite("default")
	if err != nil {
		t.Fatal(err)
	}
	if s.Samples <= 0 {
		t.Error("default suite has no samples")
	}
	if len(s.Solvers) == 0 {
		t.Error("default suite has no solvers")
	}
	for _, spec := range s.Solvers {
		if _, err := engineFor(spec, feedback.BuildTable(benchWords, 0)); err != nil {
			t.Errorf("solver %q does not resolve: %v", spec.Name, err)
		}
	}
}

func TestLoadSuite_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	doc := `
name: tiny
samples: 2
seed: 9
opening: 5
max_attempts: 6
parallel: 1
solvers:
  - name: bfs
    strategy: bfs
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSuite(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "tiny" || s.Samples != 2 || s.Seed != 9 {
		t.Errorf("parsed suite = %+v", s)
	}
}

func TestLoadSuite_Errors(t *testing.T) {
	if _, err := LoadSuite("no-such-suite"); err == nil {
		t.Error("expected error for unknown suite")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("name: bad\nsamples: 0\nsolvers:\n  - name: x\n    strategy: bfs\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSuite(path); err == nil || !strings.Contains(err.Error(), "samples") {
		t.Errorf("zero samples: got %v", err)
	}

	path = filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("name: empty\nsamples: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSuite(path); err == nil || !strings.Contains(err.Error(), "solvers") {
		t.Errorf("no solvers: got %v", err)
	}
}

func TestListSuites(t *testing.T) {
	names := ListSuites()
	found := false
	for _, n := range names {
		if n == "default" {
			found = true
		}
	}
	if !found {
		t.Errorf("embedded suites %v missing default", names)
	}
}

func TestRun(t *testing.T) {
	suite := &Suite{
		Name:        "unit",
		Samples:     3,
		Seed:        7,
		Opening:     10,
		MaxAttempts: 6,
		Parallel:    2,
		Solvers: []SolverSpec{
			{Name: "bfs", Strategy: "bfs"},
			{Name: "astar", Strategy: "astar", Cost: "constant", Heuristic: "log2"},
		},
	}
	table := feedback.BuildTable(benchWords, 0)

	stats, err := Run(suite, benchWords, table, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != len(suite.Solvers) {
		t.Fatalf("stats for %d solvers, want %d", len(stats), len(suite.Solvers))
	}
	for _, s := range stats {
		if s.Runs != suite.Samples {
			t.Errorf("%s: runs = %d, want %d", s.Solver, s.Runs, suite.Samples)
		}
		// Opening exceeds the vocabulary, so every answer is reachable
		// at the root and every run should solve.
		if s.Successes != s.Runs {
			t.Errorf("%s: %d/%d successes, want all", s.Solver, s.Successes, s.Runs)
		}
		if s.SuccessRate != 1.0 {
			t.Errorf("%s: success rate = %v, want 1.0", s.Solver, s.SuccessRate)
		}
		if s.MaxFrontier < 1 {
			t.Errorf("%s: max frontier = %d", s.Solver, s.MaxFrontier)
		}
	}
}

func TestRun_BadSolver(t *testing.T) {
	suite := &Suite{
		Name:        "broken",
		Samples:     1,
		MaxAttempts: 6,
		Solvers:     []SolverSpec{{Name: "x", Strategy: "dijkstra"}},
	}
	if _, err := Run(suite, benchWords, feedback.BuildTable(benchWords, 0), nil); err == nil {
		t.Error("expected error for unknown strategy")
	}
}
