package benchmark

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"verdle/internal/words"
	"verdle/pkg/feedback"
	"verdle/pkg/search"
)

// Stats aggregates one solver's performance across all sampled answers.
type Stats struct {
	Solver      string
	Runs        int
	Successes   int
	SuccessRate float64
	AvgMillis   float64
	MaxMillis   float64
	AvgExpanded float64
	MaxFrontier int
}

type runOutcome struct {
	millis   float64
	expanded int
	frontier int
	success  bool
}

// Run executes every solver in the suite against the same sampled answers.
// Starting candidates are fixed per answer before any solver runs, so all
// strategies see identical openings. Answers are processed by an errgroup
// pool bounded by the suite's parallel setting; the table is shared
// read-only across workers.
func Run(suite *Suite, list []string, table *feedback.Table, logger *slog.Logger) ([]Stats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	answers := words.Sample(list, suite.Samples, suite.Seed)
	opening := suite.Opening
	if opening <= 0 {
		opening = search.DefaultOpening
	}
	starting := make(map[string][]string, len(answers))
	for i, answer := range answers {
		starting[answer] = words.Sample(list, opening, suite.Seed+int64(i)+1)
	}
	logger.Info("benchmarking", "suite", suite.Name, "answers", len(answers), "solvers", len(suite.Solvers))

	var stats []Stats
	for _, spec := range suite.Solvers {
		engine, err := engineFor(spec, table)
		if err != nil {
			return nil, err
		}

		outcomes := make([]runOutcome, len(answers))
		var g errgroup.Group
		parallel := suite.Parallel
		if parallel < 1 {
			parallel = 1
		}
		g.SetLimit(parallel)

		var mu sync.Mutex
		for i, answer := range answers {
			g.Go(func() error {
				start := time.Now()
				res, err := engine.Solve(answer, list, suite.MaxAttempts, starting[answer])
				if err != nil {
					return fmt.Errorf("benchmark: %s on %q: %w", spec.Name, answer, err)
				}
				out := runOutcome{
					millis:   float64(time.Since(start).Microseconds()) / 1000.0,
					expanded: res.Expanded,
					frontier: res.FrontierMax,
					success:  res.Success,
				}
				mu.Lock()
				outcomes[i] = out
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		stats = append(stats, aggregate(spec.Name, outcomes))
		logger.Debug("solver benchmarked", "solver", spec.Name)
	}
	return stats, nil
}

func engineFor(spec SolverSpec, table *feedback.Table) (*search.Engine, error) {
	strategy, err := search.ParseStrategy(spec.Strategy)
	if err != nil {
		return nil, err
	}
	opts := []search.Option{search.WithStrategy(strategy)}
	if spec.Cost != "" {
		cost, err := search.CostByName(spec.Cost)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithCost(cost))
	}
	if spec.Heuristic != "" {
		h, err := search.HeuristicByName(spec.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithHeuristic(h))
	}
	if spec.Branching > 0 {
		opts = append(opts, search.WithBranching(spec.Branching))
	}
	return search.New(table, opts...), nil
}

func aggregate(name string, outcomes []runOutcome) Stats {
	s := Stats{Solver: name, Runs: len(outcomes)}
	var sumMillis, sumExpanded float64
	for _, o := range outcomes {
		if o.success {
			s.Successes++
		}
		sumMillis += o.millis
		sumExpanded += float64(o.expanded)
		if o.millis > s.MaxMillis {
			s.MaxMillis = o.millis
		}
		if o.frontier > s.MaxFrontier {
			s.MaxFrontier = o.frontier
		}
	}
	if s.Runs > 0 {
		s.SuccessRate = float64(s.Successes) / float64(s.Runs)
		s.AvgMillis = sumMillis / float64(s.Runs)
		s.AvgExpanded = sumExpanded / float64(s.Runs)
	}
	return s
}
