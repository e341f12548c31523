package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"verdle/internal/game"
	"verdle/internal/logging"
	"verdle/internal/store"
	"verdle/internal/words"
)

var playFlags struct {
	answer   string
	guesses  []string
	attempts int
	seed     int64
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a scripted game and print the board",
	Long: `Apply a sequence of guesses to a game and print the feedback for each.
With no --guesses, the BFS solver plays its own final path.

Usage:
  verdle play --answer allow --guesses alloy,allow
  verdle play                      # random answer, solver plays itself`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	f := playCmd.Flags()
	f.StringVar(&playFlags.answer, "answer", "", "Hidden answer (default: seeded random pick)")
	f.StringSliceVar(&playFlags.guesses, "guesses", nil, "Comma-separated guesses to play")
	f.IntVar(&playFlags.attempts, "attempts", 6, "Attempt budget")
	f.Int64Var(&playFlags.seed, "seed", 7, "Answer pick seed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	list, err := loadWordList()
	if err != nil {
		return err
	}

	answer := playFlags.answer
	if answer == "" {
		answer = words.Sample(list, 1, playFlags.seed)[0]
	}

	g, err := game.New(list, answer, playFlags.attempts)
	if err != nil {
		return err
	}

	guesses := playFlags.guesses
	if len(guesses) == 0 {
		st := openStore()
		defer closeStore(st)
		table := store.LoadOrBuild(st, list, rootFlags.sparsity, logging.New("play"))
		engine, err := buildEngine(table)
		if err != nil {
			return err
		}
		res, err := engine.Solve(answer, list, playFlags.attempts, nil)
		if err != nil {
			return err
		}
		if !res.Success {
			fmt.Printf("solver found no path to %s\n", strings.ToUpper(answer))
			return nil
		}
		guesses = res.FinalPath
	}

	for _, guess := range guesses {
		fb, err := g.Apply(guess)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s  (candidates left: %d)\n",
			strings.ToUpper(guess), fb.String(), len(g.Candidates()))
		if g.Won() || g.Lost() {
			break
		}
	}

	switch {
	case g.Won():
		fmt.Printf("Solved in %d/%d guesses.\n", len(g.History()), playFlags.attempts)
	case g.Lost():
		fmt.Printf("Out of attempts. The answer was %s.\n", strings.ToUpper(g.Answer()))
	default:
		fmt.Printf("%d attempts remaining.\n", g.Remaining())
	}
	return nil
}
