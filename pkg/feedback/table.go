package feedback

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// sampleSeed pins the pseudo-random sequence used to pick cache partners.
// The sparse graph must be reproducible across runs: a single source seeded
// with this value is consumed while iterating words in vocabulary order.
const sampleSeed = 42

type pair struct {
	guess  string
	target string
}

// Entry is one persisted cache row: the feedback for guess against target,
// rendered as a symbol string.
type Entry struct {
	Guess  string
	Target string
	Marks  string
}

// Table is a sparse precomputed feedback lookup over (guess, target) pairs.
// Every word carries its self-pair plus up to sparsity-1 sampled partners.
// A Table is immutable after construction and safe for concurrent readers.
type Table struct {
	words     []string
	sparsity  int
	hash      string
	entries   map[pair]Feedback
	fallbacks atomic.Int64
}

// VocabHash returns the hex SHA-256 of the sorted, lower-cased vocabulary.
// It identifies a word set independently of its load order, so persisted
// caches keyed on it go stale the moment the vocabulary changes.
func VocabHash(words []string) string {
	sorted := make([]string, len(words))
	for i, w := range words {
		sorted[i] = strings.ToLower(w)
	}
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "\n")))
	return hex.EncodeToString(sum[:])
}

// BuildTable computes the sparse feedback table for words. Each word is
// paired with itself and with up to sparsity-1 other words chosen by a
// partial Fisher-Yates pass over the remaining indices in vocabulary
// order, all driven by one fixed-seed source. sparsity <= 0 means dense.
func BuildTable(words []string, sparsity int) *Table {
	t := &Table{
		words:    normalize(words),
		sparsity: sparsity,
		entries:  make(map[pair]Feedback),
	}
	t.hash = VocabHash(t.words)

	rng := rand.New(rand.NewSource(sampleSeed))
	for wi, word := range t.words {
		self, _ := Evaluate(word, word)
		t.entries[pair{word, word}] = self

		others := make([]int, 0, len(t.words)-1)
		for i := range t.words {
			if i != wi {
				others = append(others, i)
			}
		}
		k := len(others)
		if sparsity > 0 && sparsity-1 < k {
			k = sparsity - 1
		}
		for j := 0; j < k; j++ {
			r := j + rng.Intn(len(others)-j)
			others[j], others[r] = others[r], others[j]
			target := t.words[others[j]]
			fb, _ := Evaluate(target, word)
			t.entries[pair{word, target}] = fb
		}
	}
	return t
}

// RestoreTable rebuilds a Table from persisted entries without recomputing
// feedback. Self-pairs missing from entries are filled in to preserve the
// table invariant.
func RestoreTable(words []string, sparsity int, entries []Entry) (*Table, error) {
	t := &Table{
		words:    normalize(words),
		sparsity: sparsity,
		entries:  make(map[pair]Feedback, len(entries)),
	}
	t.hash = VocabHash(t.words)
	for _, e := range entries {
		fb, err := Parse(e.Marks)
		if err != nil {
			return nil, err
		}
		t.entries[pair{strings.ToLower(e.Guess), strings.ToLower(e.Target)}] = fb
	}
	for _, word := range t.words {
		if _, ok := t.entries[pair{word, word}]; !ok {
			self, _ := Evaluate(word, word)
			t.entries[pair{word, word}] = self
		}
	}
	return t, nil
}

func normalize(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

// Words returns the vocabulary backing this table, in load order.
func (t *Table) Words() []string { return t.words }

// Sparsity returns the per-word partner budget the table was built with.
func (t *Table) Sparsity() int { return t.sparsity }

// Hash returns the vocabulary content hash.
func (t *Table) Hash() string { return t.hash }

// Len returns the number of cached pairs.
func (t *Table) Len() int { return len(t.entries) }

// Fallbacks returns how many lookups missed the cache and fell back to
// direct evaluation.
func (t *Table) Fallbacks() int64 { return t.fallbacks.Load() }

// Contains reports whether the (guess, target) pair is cached.
func (t *Table) Contains(guess, target string) bool {
	_, ok := t.entries[pair{strings.ToLower(guess), strings.ToLower(target)}]
	return ok
}

// Feedback returns the marks for guess against target. Misses never fail:
// they fall back to a direct Evaluate call at O(word length) cost.
func (t *Table) Feedback(guess, target string) Feedback {
	guess = strings.ToLower(guess)
	target = strings.ToLower(target)
	if fb, ok := t.entries[pair{guess, target}]; ok {
		return fb
	}
	t.fallbacks.Add(1)
	fb, err := Evaluate(target, guess)
	if err != nil {
		return nil
	}
	return fb
}

// Snapshot returns all cached pairs as persistable entries, in unspecified
// order.
func (t *Table) Snapshot() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for p, fb := range t.entries {
		out = append(out, Entry{Guess: p.guess, Target: p.target, Marks: fb.String()})
	}
	return out
}

// BuildFunc produces a Table for a vocabulary and sparsity. It lets Shared
// route construction through a persistent store without depending on one.
type BuildFunc func(words []string, sparsity int) (*Table, error)

// Shared is a double-checked, mutex-guarded lazy Table holder. Concurrent
// solvers over the same vocabulary get one build; a different vocabulary or
// sparsity triggers a rebuild. It replaces hidden process-wide singletons:
// construct one Shared and pass it to whoever needs the table.
type Shared struct {
	mu       sync.Mutex
	table    *Table
	hash     string
	sparsity int
}

// Get returns the table for words, building it at most once per
// (vocabulary, sparsity) via build. A nil build uses BuildTable.
func (s *Shared) Get(words []string, sparsity int, build BuildFunc) (*Table, error) {
	hash := VocabHash(words)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table != nil && s.hash == hash && s.sparsity == sparsity {
		return s.table, nil
	}

	var (
		t   *Table
		err error
	)
	if build != nil {
		t, err = build(words, sparsity)
	} else {
		t = BuildTable(words, sparsity)
	}
	if err != nil {
		return nil, err
	}
	s.table, s.hash, s.sparsity = t, hash, sparsity
	return t, nil
}
