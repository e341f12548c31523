// Package game tracks the observable state of one puzzle: guesses made,
// feedback earned and the accumulated knowledge.
package game

import (
	"errors"
	"fmt"
	"strings"

	"verdle/pkg/feedback"
	"verdle/pkg/knowledge"
)

var (
	// ErrInvalidGuess is returned for guesses outside the word list.
	ErrInvalidGuess = errors.New("game: guess not in word list")

	// ErrFinished is returned when a guess is applied to a decided game.
	ErrFinished = errors.New("game: already finished")
)

// Step is one applied guess with its feedback.
type Step struct {
	Guess    string
	Feedback feedback.Feedback
}

// Game is the progression of one puzzle against a fixed answer.
type Game struct {
	words       []string
	wordSet     map[string]bool
	answer      string
	maxAttempts int
	history     []Step
	knowledge   *knowledge.State
}

// New starts a game over list with the given answer and attempt budget.
func New(list []string, answer string, maxAttempts int) (*Game, error) {
	if len(list) == 0 {
		return nil, errors.New("game: empty word list")
	}
	g := &Game{
		words:       list,
		wordSet:     make(map[string]bool, len(list)),
		maxAttempts: maxAttempts,
	}
	for _, w := range list {
		g.wordSet[strings.ToLower(w)] = true
	}
	answer = strings.ToLower(answer)
	if !g.wordSet[answer] {
		return nil, fmt.Errorf("%w: answer %q", ErrInvalidGuess, answer)
	}
	g.answer = answer
	g.knowledge = knowledge.New(len(answer))
	return g, nil
}

// Reset clears the history and knowledge for a fresh run. An empty answer
// keeps the current one; otherwise the new answer must be in the word list.
func (g *Game) Reset(answer string) error {
	if answer != "" {
		answer = strings.ToLower(answer)
		if !g.wordSet[answer] {
			return fmt.Errorf("%w: answer %q", ErrInvalidGuess, answer)
		}
		g.answer = answer
	}
	g.history = nil
	g.knowledge = knowledge.New(len(g.answer))
	return nil
}

// Valid reports whether guess is playable.
func (g *Game) Valid(guess string) bool { return g.wordSet[strings.ToLower(guess)] }

// Apply plays one guess, updates the knowledge state and returns the
// feedback.
func (g *Game) Apply(guess string) (feedback.Feedback, error) {
	guess = strings.ToLower(guess)
	if !g.Valid(guess) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	if g.Won() || g.Lost() {
		return nil, ErrFinished
	}
	fb, err := feedback.Evaluate(g.answer, guess)
	if err != nil {
		return nil, err
	}
	g.knowledge.Incorporate(guess, fb)
	g.history = append(g.history, Step{Guess: guess, Feedback: fb})
	return fb, nil
}

// Won reports whether the last guess hit the answer.
func (g *Game) Won() bool {
	return len(g.history) > 0 && g.history[len(g.history)-1].Guess == g.answer
}

// Lost reports whether the attempt budget is spent without a win.
func (g *Game) Lost() bool {
	return !g.Won() && len(g.history) >= g.maxAttempts
}

// Remaining returns the number of guesses still available.
func (g *Game) Remaining() int { return g.maxAttempts - len(g.history) }

// History returns the applied steps in order.
func (g *Game) History() []Step { return g.history }

// Answer returns the hidden answer.
func (g *Game) Answer() string { return g.answer }

// Candidates returns the words still consistent with everything learned.
func (g *Game) Candidates() []string { return g.knowledge.Filter(g.words) }
