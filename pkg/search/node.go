package search

import (
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"verdle/pkg/feedback"
	"verdle/pkg/knowledge"
)

// Step is one guess and the feedback it earned.
type Step struct {
	Guess    string
	Feedback feedback.Feedback
}

// node is a frontier record: the knowledge accumulated on this branch, the
// guess history that produced it, and the surviving candidate set as a
// bitset over vocabulary indices. Nodes are owned by the frontier until
// popped and are never shared between branches.
type node struct {
	knowledge  *knowledge.State
	history    []Step
	candidates *bitset.BitSet
	guessed    map[string]bool
	cost       float64
	depth      int
}

// visitKey canonicalizes the node for deduplication: the knowledge
// signature plus the sorted set of words guessed so far. Two branches that
// learned the same constraints from the same guesses collapse to one.
func (n *node) visitKey() string {
	guesses := make([]string, 0, len(n.guessed))
	for g := range n.guessed {
		guesses = append(guesses, g)
	}
	sort.Strings(guesses)
	return n.knowledge.Signature() + "#" + strings.Join(guesses, ",")
}

func (n *node) child(guess string, fb feedback.Feedback, words []string) *node {
	k := n.knowledge.Clone()
	k.Incorporate(guess, fb)

	survivors := bitset.New(uint(len(words)))
	for i, ok := n.candidates.NextSet(0); ok; i, ok = n.candidates.NextSet(i + 1) {
		if k.Possible(words[i]) {
			survivors.Set(i)
		}
	}

	history := make([]Step, len(n.history), len(n.history)+1)
	copy(history, n.history)
	history = append(history, Step{Guess: guess, Feedback: fb})

	guessed := make(map[string]bool, len(n.guessed)+1)
	for g := range n.guessed {
		guessed[g] = true
	}
	guessed[guess] = true

	return &node{
		knowledge:  k,
		history:    history,
		candidates: survivors,
		guessed:    guessed,
		depth:      n.depth + 1,
	}
}

// Result is the immutable outcome summary of one solver run.
type Result struct {
	Success            bool
	History            []Step
	Expanded           int // nodes dequeued and processed
	Generated          int // children produced, including later-discarded ones
	FrontierMax        int // peak frontier size observed
	Explored           []string
	FinalPath          []string
	StartingCandidates []string
}

// Guesses returns the number of guesses in the winning (or final) history.
func (r *Result) Guesses() int { return len(r.History) }
