// Package feedback implements the per-letter guess evaluation primitive
// and the sparse feedback lookup table shared by all solver strategies.
package feedback

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch is returned when a guess and answer differ in length.
var ErrLengthMismatch = errors.New("feedback: guess and answer length mismatch")

// Mark is the feedback category for a single letter position.
type Mark uint8

const (
	// Absent means the letter does not occur in the remaining letter budget.
	Absent Mark = iota
	// Present means the letter occurs in the answer but at another position.
	Present
	// Correct means the letter matches the answer at this position.
	Correct
)

// Symbol returns the compact single-character rendering of the mark.
func (m Mark) Symbol() string {
	switch m {
	case Correct:
		return "G"
	case Present:
		return "Y"
	default:
		return "-"
	}
}

// Feedback is the ordered per-position marks for one guess.
type Feedback []Mark

// String renders the feedback as a compact symbol string, e.g. "GY--G".
// Two feedbacks are equal iff their strings are equal, so the rendering
// doubles as a map key.
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, m := range f {
		b.WriteString(m.Symbol())
	}
	return b.String()
}

// Equal reports whether two feedbacks have identical marks.
func (f Feedback) Equal(other Feedback) bool {
	if len(f) != len(other) {
		return false
	}
	for i, m := range f {
		if m != other[i] {
			return false
		}
	}
	return true
}

// AllCorrect reports whether every position is marked Correct.
func (f Feedback) AllCorrect() bool {
	for _, m := range f {
		if m != Correct {
			return false
		}
	}
	return len(f) > 0
}

// Parse converts a symbol string ("G", "Y", "-") back into a Feedback.
func Parse(s string) (Feedback, error) {
	f := make(Feedback, 0, len(s))
	for _, r := range s {
		switch r {
		case 'G':
			f = append(f, Correct)
		case 'Y':
			f = append(f, Present)
		case '-':
			f = append(f, Absent)
		default:
			return nil, fmt.Errorf("feedback: invalid mark symbol %q", r)
		}
	}
	return f, nil
}

// Evaluate computes the feedback for guess against answer. Both words are
// case-insensitive and must have equal length.
//
// The two-pass rule handles duplicate letters: pass one marks exact matches
// and consumes the answer's letter budget, pass two awards Present only
// while the budget for that letter lasts. A guess with two of a letter when
// the answer holds one therefore yields exactly one Correct/Present and one
// Absent.
func Evaluate(answer, guess string) (Feedback, error) {
	if len(answer) != len(guess) {
		return nil, fmt.Errorf("%w: answer %d, guess %d", ErrLengthMismatch, len(answer), len(guess))
	}
	answer = strings.ToLower(answer)
	guess = strings.ToLower(guess)

	remaining := make(map[byte]int, len(answer))
	for i := 0; i < len(answer); i++ {
		remaining[answer[i]]++
	}

	f := make(Feedback, len(guess))
	for i := 0; i < len(guess); i++ {
		if guess[i] == answer[i] {
			f[i] = Correct
			remaining[guess[i]]--
		}
	}
	for i := 0; i < len(guess); i++ {
		if f[i] == Correct {
			continue
		}
		if remaining[guess[i]] > 0 {
			f[i] = Present
			remaining[guess[i]]--
		} else {
			f[i] = Absent
		}
	}
	return f, nil
}
