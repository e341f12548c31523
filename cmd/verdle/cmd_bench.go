package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"verdle/internal/benchmark"
	"verdle/internal/format"
	"verdle/internal/logging"
	"verdle/internal/store"
)

var benchFlags struct {
	suite    string
	markdown bool
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark solver strategies over sampled answers",
	Long: fmt.Sprintf(`Run a benchmark suite and print aggregated stats per solver.
Suites are YAML files; embedded suites: %s.

Usage:
  verdle bench
  verdle bench --suite path/to/suite.yaml --markdown`, strings.Join(benchmark.ListSuites(), ", ")),
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchFlags.suite, "suite", "default", "Embedded suite name or YAML file path")
	f.BoolVar(&benchFlags.markdown, "markdown", false, "Render the stats table as Markdown")
}

func runBench(_ *cobra.Command, _ []string) error {
	suite, err := benchmark.LoadSuite(benchFlags.suite)
	if err != nil {
		return err
	}

	list, err := loadWordList()
	if err != nil {
		return err
	}

	st := openStore()
	defer closeStore(st)

	logger := logging.New("bench")
	table := store.LoadOrBuild(st, list, rootFlags.sparsity, logger)

	stats, err := benchmark.Run(suite, list, table, logger)
	if err != nil {
		return err
	}

	mode := format.ASCII
	if benchFlags.markdown {
		mode = format.Markdown
	}
	fmt.Println(format.BenchmarkTable(stats, mode))
	return nil
}
