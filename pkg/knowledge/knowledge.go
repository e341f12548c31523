// Package knowledge accumulates letter constraints from guess feedback and
// prunes candidate vocabularies against them.
package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"verdle/pkg/feedback"
)

// State captures everything learned from previous guesses: pinned letters,
// per-position exclusions, per-letter occurrence bounds and globally
// excluded letters. A State is owned by a single search branch; branching
// requires Clone.
type State struct {
	wordLength int
	known      map[int]byte          // position -> pinned letter
	excludedAt map[int]map[byte]bool // position -> letters ruled out there
	minCounts  map[byte]int
	maxCounts  map[byte]int // absent key = unbounded
	excluded   map[byte]bool
}

// New returns an empty state for words of the given length.
func New(wordLength int) *State {
	return &State{
		wordLength: wordLength,
		known:      make(map[int]byte),
		excludedAt: make(map[int]map[byte]bool),
		minCounts:  make(map[byte]int),
		maxCounts:  make(map[byte]int),
		excluded:   make(map[byte]bool),
	}
}

// WordLength returns the word length this state constrains.
func (s *State) WordLength() int { return s.wordLength }

// Incorporate folds one guess/feedback pair into the state.
//
// Per position: Correct pins the letter, Present and Absent exclude it at
// that position; Correct and Present both count as a positive sighting.
// Afterwards each distinct guessed letter reconciles its counts: zero
// positives excludes the letter outright (max 0), otherwise the positive
// total raises the letter's minimum and tightens its maximum. The tighten
// step is what narrows counts when a guess repeats a letter and only some
// copies are confirmed.
func (s *State) Incorporate(guess string, fb feedback.Feedback) {
	guess = strings.ToLower(guess)
	positives := make(map[byte]int)

	for i := 0; i < len(guess) && i < len(fb); i++ {
		letter := guess[i]
		switch fb[i] {
		case feedback.Correct:
			s.known[i] = letter
			positives[letter]++
		case feedback.Present:
			s.excludeAt(i, letter)
			positives[letter]++
		default:
			s.excludeAt(i, letter)
		}
	}

	totals := make(map[byte]int)
	for i := 0; i < len(guess); i++ {
		totals[guess[i]]++
	}
	for letter := range totals {
		positive := positives[letter]
		if positive == 0 {
			s.excluded[letter] = true
			s.maxCounts[letter] = 0
			continue
		}
		if positive > s.minCounts[letter] {
			s.minCounts[letter] = positive
		}
		if current, ok := s.maxCounts[letter]; !ok || positive < current {
			s.maxCounts[letter] = positive
		}
	}
}

func (s *State) excludeAt(pos int, letter byte) {
	set, ok := s.excludedAt[pos]
	if !ok {
		set = make(map[byte]bool)
		s.excludedAt[pos] = set
	}
	set[letter] = true
}

// Possible reports whether word is consistent with every constraint.
// A position pinned by a Correct mark overrides stale positional
// exclusions recorded for the same letter by earlier guesses.
func (s *State) Possible(word string) bool {
	if len(word) != s.wordLength {
		return false
	}
	word = strings.ToLower(word)

	for pos, letter := range s.known {
		if word[pos] != letter {
			return false
		}
	}

	for i := 0; i < len(word); i++ {
		letter := word[i]
		if s.excluded[letter] {
			return false
		}
		if _, pinned := s.known[i]; pinned {
			continue
		}
		if s.excludedAt[i][letter] {
			return false
		}
	}

	counts := make(map[byte]int, len(word))
	for i := 0; i < len(word); i++ {
		counts[word[i]]++
	}
	for letter, minimum := range s.minCounts {
		if counts[letter] < minimum {
			return false
		}
	}
	for letter, maximum := range s.maxCounts {
		if counts[letter] > maximum {
			return false
		}
	}
	return true
}

// Filter returns the subset of words consistent with the state, preserving
// order.
func (s *State) Filter(words []string) []string {
	var out []string
	for _, w := range words {
		if s.Possible(w) {
			out = append(out, w)
		}
	}
	return out
}

// Clone returns a deep, independent copy for branching.
func (s *State) Clone() *State {
	c := &State{
		wordLength: s.wordLength,
		known:      make(map[int]byte, len(s.known)),
		excludedAt: make(map[int]map[byte]bool, len(s.excludedAt)),
		minCounts:  make(map[byte]int, len(s.minCounts)),
		maxCounts:  make(map[byte]int, len(s.maxCounts)),
		excluded:   make(map[byte]bool, len(s.excluded)),
	}
	for k, v := range s.known {
		c.known[k] = v
	}
	for pos, set := range s.excludedAt {
		copied := make(map[byte]bool, len(set))
		for l := range set {
			copied[l] = true
		}
		c.excludedAt[pos] = copied
	}
	for k, v := range s.minCounts {
		c.minCounts[k] = v
	}
	for k, v := range s.maxCounts {
		c.maxCounts[k] = v
	}
	for k := range s.excluded {
		c.excluded[k] = true
	}
	return c
}

// Signature returns a canonical string for the constraint set. States that
// learned identical constraints in any order produce equal signatures, which
// is what the search engine deduplicates on.
func (s *State) Signature() string {
	var b strings.Builder

	positions := make([]int, 0, len(s.known))
	for pos := range s.known {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	b.WriteString("k:")
	for _, pos := range positions {
		fmt.Fprintf(&b, "%d=%c,", pos, s.known[pos])
	}

	positions = positions[:0]
	for pos := range s.excludedAt {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	b.WriteString("|x:")
	for _, pos := range positions {
		fmt.Fprintf(&b, "%d=%s,", pos, sortedletters(s.excludedAt[pos]))
	}

	b.WriteString("|min:")
	b.WriteString(sortedCounts(s.minCounts))
	b.WriteString("|max:")
	b.WriteString(sortedCounts(s.maxCounts))
	b.WriteString("|out:")
	b.WriteString(sortedletters(s.excluded))
	return b.String()
}

func sortedletters(set map[byte]bool) string {
	letters := make([]byte, 0, len(set))
	for l := range set {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

func sortedCounts(counts map[byte]int) string {
	letters := make([]byte, 0, len(counts))
	for l := range counts {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	var b strings.Builder
	for _, l := range letters {
		fmt.Fprintf(&b, "%c=%d,", l, counts[l])
	}
	return b.String()
}
