// Package search drives guess selection as state-space graph search over
// knowledge states, with pluggable frontier strategies and cost models.
package search

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"verdle/pkg/feedback"
	"verdle/pkg/knowledge"
)

var (
	// ErrEmptyPool is returned when Solve is called without a vocabulary.
	ErrEmptyPool = errors.New("search: empty word pool")

	// ErrAnswerNotInPool is returned when the answer is not a pool member;
	// cache lookups would be undefined otherwise.
	ErrAnswerNotInPool = errors.New("search: answer not in word pool")

	// ErrUnevenPool is returned when pool words differ in length.
	ErrUnevenPool = errors.New("search: pool words differ in length")
)

// Defaults for engine knobs. Branching and opening sizes bound memory
// growth together with visited-state deduplication.
const (
	DefaultMaxAttempts = 6
	DefaultBranching   = 30
	DefaultOpening     = 30
	defaultSeed        = 42
)

// Engine runs one frontier strategy over a shared feedback table. An Engine
// is stateless across Solve calls and safe for concurrent use as long as
// the table is not mutated, which Table guarantees after construction.
type Engine struct {
	table     *feedback.Table
	strategy  Strategy
	cost      CostFunc
	heuristic HeuristicFunc
	branching int
	opening   int
	seed      int64
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithStrategy selects the frontier discipline. Default BFS.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithCost sets the step cost function consumed by UCS and A*.
func WithCost(fn CostFunc) Option {
	return func(e *Engine) { e.cost = fn }
}

// WithHeuristic sets the A* remaining-cost estimate. It must stay
// admissible for A* to return optimal-cost histories.
func WithHeuristic(fn HeuristicFunc) Option {
	return func(e *Engine) { e.heuristic = fn }
}

// WithBranching caps children generated per expansion. Values < 1 keep the
// default.
func WithBranching(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.branching = n
		}
	}
}

// WithOpening sets how many starting candidates are sampled when the
// caller supplies none.
func WithOpening(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.opening = n
		}
	}
}

// WithSeed fixes the opening-sample sequence for reproducible runs.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// New returns an Engine reading feedback from table.
func New(table *feedback.Table, opts ...Option) *Engine {
	e := &Engine{
		table:     table,
		strategy:  BFS,
		cost:      CostConstant,
		heuristic: HeuristicLog2,
		branching: DefaultBranching,
		opening:   DefaultOpening,
		seed:      defaultSeed,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strategy returns the frontier discipline this engine runs.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Solve searches for answer within pool, bounded by maxAttempts guesses per
// branch. starting restricts the root expansion; nil samples an opening set
// from the pool with the engine's seed. Exhausting the frontier is not an
// error: it returns Result{Success: false}.
func (e *Engine) Solve(answer string, pool []string, maxAttempts int, starting []string) (*Result, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	words := make([]string, len(pool))
	index := make(map[string]int, len(pool))
	wordLength := len(pool[0])
	for i, w := range pool {
		w = strings.ToLower(w)
		if len(w) != wordLength {
			return nil, fmt.Errorf("%w: %q vs %q", ErrUnevenPool, pool[0], w)
		}
		words[i] = w
		index[w] = i
	}

	answer = strings.ToLower(answer)
	if _, ok := index[answer]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrAnswerNotInPool, answer)
	}

	opening, openingWords := e.openingSet(words, index, starting)

	all := bitset.New(uint(len(words)))
	for i := range words {
		all.Set(uint(i))
	}

	root := &node{
		knowledge:  knowledge.New(wordLength),
		candidates: all,
		guessed:    map[string]bool{},
	}

	fr := e.strategy.newFrontier()
	fr.push(root, 0)

	visited := make(map[string]bool)
	exploredSet := make(map[string]bool)
	var explored []string
	expanded, generated, frontierMax := 0, 0, 1

	for !fr.empty() {
		n := fr.pop()
		key := n.visitKey()
		if visited[key] {
			continue
		}
		visited[key] = true
		expanded++

		if len(n.history) > 0 && n.history[len(n.history)-1].Guess == answer {
			return e.result(true, n, expanded, generated, frontierMax, explored, openingWords), nil
		}
		if n.depth >= maxAttempts {
			continue
		}

		for _, gi := range e.selectGuesses(n, opening) {
			guess := words[gi]
			if n.guessed[guess] {
				continue
			}
			if !exploredSet[guess] {
				exploredSet[guess] = true
				explored = append(explored, guess)
			}

			fb := e.table.Feedback(guess, answer)
			child := n.child(guess, fb, words)
			generated++

			after := int(child.candidates.Count())
			if after == 0 {
				continue
			}
			before := int(n.candidates.Count())
			child.cost = n.cost + e.cost(before, after)
			fr.push(child, e.priority(child, after))
		}
		if s := fr.size(); s > frontierMax {
			frontierMax = s
		}
	}

	return e.result(false, nil, expanded, generated, frontierMax, explored, openingWords), nil
}

// openingSet resolves the root-depth guess pool: the supplied starting
// candidates intersected with the vocabulary, or a seeded
// without-replacement sample when none are supplied.
func (e *Engine) openingSet(words []string, index map[string]int, starting []string) (*bitset.BitSet, []string) {
	set := bitset.New(uint(len(words)))
	var kept []string

	if starting == nil {
		rng := rand.New(rand.NewSource(e.seed))
		n := e.opening
		if n > len(words) {
			n = len(words)
		}
		for _, i := range rng.Perm(len(words))[:n] {
			set.Set(uint(i))
		}
		for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
			kept = append(kept, words[i])
		}
		return set, kept
	}

	for _, w := range starting {
		if i, ok := index[strings.ToLower(w)]; ok {
			set.Set(uint(i))
		}
	}
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		kept = append(kept, words[i])
	}
	return set, kept
}

// selectGuesses returns candidate indices for expansion in vocabulary
// order: the opening set at the root, the node's surviving candidates
// below it, capped at the branching limit.
func (e *Engine) selectGuesses(n *node, opening *bitset.BitSet) []uint {
	source := n.candidates
	if n.depth == 0 {
		source = opening
	}
	out := make([]uint, 0, e.branching)
	for i, ok := source.NextSet(0); ok; i, ok = source.NextSet(i + 1) {
		out = append(out, i)
		if len(out) >= e.branching {
			break
		}
	}
	return out
}

func (e *Engine) priority(n *node, remaining int) float64 {
	switch e.strategy {
	case UCS:
		return n.cost
	case AStar:
		return n.cost + e.heuristic(remaining)
	default:
		return float64(n.depth)
	}
}

func (e *Engine) result(success bool, n *node, expanded, generated, frontierMax int, explored, opening []string) *Result {
	r := &Result{
		Success:            success,
		Expanded:           expanded,
		Generated:          generated,
		FrontierMax:        frontierMax,
		Explored:           explored,
		StartingCandidates: opening,
	}
	if n != nil {
		r.History = n.history
		for _, s := range n.history {
			r.FinalPath = append(r.FinalPath, s.Guess)
		}
	}
	return r
}
