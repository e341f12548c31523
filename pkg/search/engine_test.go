package search

import (
	"errors"
	"testing"

	"verdle/pkg/feedback"
)

var pool = []string{"allow", "alloy", "apple", "angel", "ankle"}

func newEngine(t *testing.T, pool []string, opts ...Option) *Engine {
	t.Helper()
	return New(feedback.BuildTable(pool, 0), opts...)
}

func allStrategies() []Strategy {
	return []Strategy{BFS, DFS, UCS, AStar}
}

func TestSolve_BFSFindsAnswer(t *testing.T) {
	e := newEngine(t, pool, WithStrategy(BFS))
	res, err := e.Solve("allow", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Fatal("BFS failed to find the answer")
	}
	last := res.History[len(res.History)-1]
	if last.Guess != "allow" {
		t.Errorf("final guess = %q, want allow", last.Guess)
	}
	if !last.Feedback.AllCorrect() {
		t.Errorf("final feedback = %s, want all correct", last.Feedback)
	}
}

func TestSolve_FeedbackAgainstAnswer(t *testing.T) {
	e := newEngine(t, pool, WithStrategy(BFS))
	res, err := e.Solve("allow", pool, 6, []string{"alloy"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	first := res.History[0]
	if first.Guess != "alloy" {
		t.Fatalf("first guess = %q, want alloy", first.Guess)
	}
	if got := first.Feedback.String(); got != "GGGG-" {
		t.Errorf("feedback for alloy vs allow = %s, want GGGG-", got)
	}
}

func TestSolve_SingleWordPool(t *testing.T) {
	single := []string{"rebut"}
	for _, s := range allStrategies() {
		e := newEngine(t, single, WithStrategy(s))
		res, err := e.Solve("rebut", single, 6, nil)
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if !res.Success {
			t.Errorf("%v: failed on single-word pool", s)
		}
		if len(res.History) != 1 {
			t.Errorf("%v: took %d guesses, want 1", s, len(res.History))
		}
	}
}

func TestSolve_AllStrategiesSucceed(t *testing.T) {
	for _, s := range allStrategies() {
		e := newEngine(t, pool, WithStrategy(s))
		res, err := e.Solve("angel", pool, 6, nil)
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if !res.Success {
			t.Errorf("%v: failed to solve", s)
		}
	}
}

func TestSolve_BFSShortestHistory(t *testing.T) {
	bfs := newEngine(t, pool, WithStrategy(BFS))
	base, err := bfs.Solve("ankle", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !base.Success {
		t.Fatal("BFS failed")
	}
	for _, s := range []Strategy{DFS, UCS, AStar} {
		res, err := newEngine(t, pool, WithStrategy(s)).Solve("ankle", pool, 6, nil)
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if res.Success && len(base.History) > len(res.History) {
			t.Errorf("BFS history %d longer than %v history %d",
				len(base.History), s, len(res.History))
		}
	}
}

func TestSolve_AStarNoWorseThanUCS(t *testing.T) {
	// Under the constant cost function accumulated cost equals guess
	// count, so history length compares the costs directly.
	ucs, err := newEngine(t, pool, WithStrategy(UCS), WithCost(CostConstant)).Solve("apple", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	astar, err := newEngine(t, pool, WithStrategy(AStar), WithCost(CostConstant), WithHeuristic(HeuristicLog2)).Solve("apple", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ucs.Success || !astar.Success {
		t.Fatalf("ucs success=%v astar success=%v, want both", ucs.Success, astar.Success)
	}
	if len(astar.History) > len(ucs.History) {
		t.Errorf("A* cost %d exceeds UCS cost %d", len(astar.History), len(ucs.History))
	}
}

func TestSolve_AttemptLimitWithoutAnswerInStarting(t *testing.T) {
	e := newEngine(t, pool, WithStrategy(BFS))
	res, err := e.Solve("allow", pool, 1, []string{"apple"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Error("success with 1 attempt and answer outside starting candidates")
	}
	if res.Expanded == 0 {
		t.Error("expected at least the root to be expanded")
	}
}

func TestSolve_InputValidation(t *testing.T) {
	e := newEngine(t, pool)
	if _, err := e.Solve("zzzzz", pool, 6, nil); !errors.Is(err, ErrAnswerNotInPool) {
		t.Errorf("absent answer: got %v, want ErrAnswerNotInPool", err)
	}
	if _, err := e.Solve("allow", nil, 6, nil); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("empty pool: got %v, want ErrEmptyPool", err)
	}
	uneven := []string{"allow", "all"}
	if _, err := e.Solve("allow", uneven, 6, nil); !errors.Is(err, ErrUnevenPool) {
		t.Errorf("uneven pool: got %v, want ErrUnevenPool", err)
	}
}

func TestSolve_CountsAreCoherent(t *testing.T) {
	e := newEngine(t, pool, WithStrategy(BFS))
	res, err := e.Solve("alloy", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Expanded <= 0 {
		t.Error("expanded count not tracked")
	}
	if res.Generated < len(res.History) {
		t.Errorf("generated %d < history length %d", res.Generated, len(res.History))
	}
	if res.FrontierMax < 1 {
		t.Errorf("frontier max = %d, want >= 1", res.FrontierMax)
	}
	if len(res.FinalPath) != len(res.History) {
		t.Errorf("final path %v does not mirror history", res.FinalPath)
	}
}

func TestSolve_StartingCandidatesIntersected(t *testing.T) {
	e := newEngine(t, pool, WithStrategy(BFS))
	res, err := e.Solve("allow", pool, 6, []string{"allow", "zzzzz"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success {
		t.Fatal("expected success with the answer in starting candidates")
	}
	if len(res.StartingCandidates) != 1 || res.StartingCandidates[0] != "allow" {
		t.Errorf("starting candidates = %v, want [allow]", res.StartingCandidates)
	}
	if len(res.History) != 1 {
		t.Errorf("history length = %d, want 1", len(res.History))
	}
}

func TestSolve_DeterministicOpenings(t *testing.T) {
	a, err := newEngine(t, pool, WithSeed(7)).Solve("angel", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newEngine(t, pool, WithSeed(7)).Solve("angel", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.StartingCandidates) != len(b.StartingCandidates) {
		t.Fatal("same seed produced different opening sets")
	}
	for i := range a.StartingCandidates {
		if a.StartingCandidates[i] != b.StartingCandidates[i] {
			t.Fatal("same seed produced different opening sets")
		}
	}
}

func TestSolve_SparseTableSameOutcomeAsDense(t *testing.T) {
	// The sparse table falls back to direct evaluation on misses, so the
	// search outcome is identical to the dense table's.
	dense, err := New(feedback.BuildTable(pool, 0), WithStrategy(BFS)).Solve("ankle", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	sparse, err := New(feedback.BuildTable(pool, 2), WithStrategy(BFS)).Solve("ankle", pool, 6, nil)
	if err != nil {
		t.Fatal(err)
	}
	if dense.Success != sparse.Success || len(dense.History) != len(sparse.History) {
		t.Errorf("sparse table changed the outcome: dense %d guesses, sparse %d",
			len(dense.History), len(sparse.History))
	}
}
