package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"verdle/internal/format"
	"verdle/internal/logging"
	"verdle/internal/store"
	"verdle/pkg/feedback"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Build and inspect the persisted feedback cache",
}

var cacheBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Precompute the sparse feedback cache and persist it",
	Long: `Build the sparse feedback table for the word list and save it to the
cache DB so later runs start fast. An existing cache for the same
vocabulary and sparsity is reused.`,
	Args: cobra.NoArgs,
	RunE: runCacheBuild,
}

var cacheEstimateFlags struct {
	seed  int64
	sizes []int
}

var cacheEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate cache hit rates for typical candidate pool sizes",
	Long: `Sample candidate pools of several sizes and measure which (guess, target)
pairs the sparse cache covers. Real play narrows the pool quickly, so the
hit rate for small pools is what matters.`,
	Args: cobra.NoArgs,
	RunE: runCacheEstimate,
}

func init() {
	f := cacheEstimateCmd.Flags()
	f.Int64Var(&cacheEstimateFlags.seed, "seed", 123, "Candidate pool sample seed")
	f.IntSliceVar(&cacheEstimateFlags.sizes, "sizes", []int{10, 50, 100, 500, 1000}, "Candidate pool sizes to simulate")

	cacheCmd.AddCommand(cacheBuildCmd)
	cacheCmd.AddCommand(cacheEstimateCmd)
}

func runCacheBuild(_ *cobra.Command, _ []string) error {
	list, err := loadWordList()
	if err != nil {
		return err
	}

	st := openStore()
	defer closeStore(st)

	logger := logging.New("cache")
	logger.Info("building feedback cache", "words", len(list), "sparsity", rootFlags.sparsity)
	table := store.LoadOrBuild(st, list, rootFlags.sparsity, logger)

	fmt.Printf("Feedback cache ready: %d pairs for %d words (sparsity %d)\n",
		table.Len(), len(list), rootFlags.sparsity)
	fmt.Printf("Vocabulary hash: %s\n", table.Hash())
	return nil
}

func runCacheEstimate(_ *cobra.Command, _ []string) error {
	list, err := loadWordList()
	if err != nil {
		return err
	}

	table := feedback.BuildTable(list, rootFlags.sparsity)
	rng := rand.New(rand.NewSource(cacheEstimateFlags.seed))

	out := format.NewTable(format.ASCII)
	out.Header("Pool size", "Pairs", "Hits", "Misses", "Hit rate")

	for _, size := range cacheEstimateFlags.sizes {
		if size > len(list) {
			size = len(list)
		}
		pool := make([]string, 0, size)
		for _, i := range rng.Perm(len(list))[:size] {
			pool = append(pool, list[i])
		}

		hits, misses := 0, 0
		for _, guess := range pool {
			for _, target := range pool {
				if table.Contains(guess, target) {
					hits++
				} else {
					misses++
				}
			}
		}
		total := hits + misses
		rate := 0.0
		if total > 0 {
			rate = float64(hits) / float64(total)
		}
		out.Row(size, total, hits, misses, fmt.Sprintf("%.1f%%", rate*100))
	}

	fmt.Println(out.String())
	return nil
}
