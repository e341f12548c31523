package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"verdle/internal/format"
	"verdle/internal/logging"
	"verdle/internal/store"
	"verdle/pkg/feedback"
	"verdle/pkg/search"
)

var solveFlags struct {
	strategy  string
	cost      string
	heuristic string
	attempts  int
	branching int
	opening   int
	seed      int64
	starting  []string
}

var solveCmd = &cobra.Command{
	Use:   "solve <answer>",
	Short: "Search for an answer and print the guess history",
	Long: `Run one solver strategy against a hidden answer from the word list.

Usage:
  verdle solve allow
  verdle solve crane --strategy astar --cost reduction --heuristic log2
  verdle solve crane --starting slate,crate`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&solveFlags.strategy, "strategy", "bfs", "Frontier strategy: bfs, dfs, ucs, astar")
	f.StringVar(&solveFlags.cost, "cost", "constant", "Step cost function: constant, reduction")
	f.StringVar(&solveFlags.heuristic, "heuristic", "log2", "A* heuristic: log2")
	f.IntVar(&solveFlags.attempts, "attempts", search.DefaultMaxAttempts, "Per-branch guess limit")
	f.IntVar(&solveFlags.branching, "branching", search.DefaultBranching, "Max children per expansion")
	f.IntVar(&solveFlags.opening, "opening", search.DefaultOpening, "Sampled opening candidates when --starting is not given")
	f.Int64Var(&solveFlags.seed, "seed", 42, "Opening sample seed")
	f.StringSliceVar(&solveFlags.starting, "starting", nil, "Comma-separated starting candidate words")
}

func runSolve(_ *cobra.Command, args []string) error {
	list, err := loadWordList()
	if err != nil {
		return err
	}

	st := openStore()
	defer closeStore(st)

	logger := logging.New("solve")
	table := store.LoadOrBuild(st, list, rootFlags.sparsity, logger)

	engine, err := buildEngine(table)
	if err != nil {
		return err
	}

	var starting []string
	if len(solveFlags.starting) > 0 {
		starting = solveFlags.starting
	}
	res, err := engine.Solve(args[0], list, solveFlags.attempts, starting)
	if err != nil {
		return err
	}

	for _, line := range format.ResultLines(res) {
		fmt.Println(line)
	}
	return nil
}

func buildEngine(table *feedback.Table) (*search.Engine, error) {
	strategy, err := search.ParseStrategy(solveFlags.strategy)
	if err != nil {
		return nil, err
	}
	cost, err := search.CostByName(solveFlags.cost)
	if err != nil {
		return nil, err
	}
	heuristic, err := search.HeuristicByName(solveFlags.heuristic)
	if err != nil {
		return nil, err
	}
	return search.New(table,
		search.WithStrategy(strategy),
		search.WithCost(cost),
		search.WithHeuristic(heuristic),
		search.WithBranching(solveFlags.branching),
		search.WithOpening(solveFlags.opening),
		search.WithSeed(solveFlags.seed),
	), nil
}
