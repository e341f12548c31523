// Package store persists sparse feedback caches keyed by vocabulary
// identity, with a SQLite-backed implementation and an in-memory one for
// tests. Store failures are recoverable by design: callers rebuild the
// cache and keep solving.
package store

import (
	"errors"

	"verdle/pkg/feedback"
)

// DefaultDBPath is the default relative path for the SQLite DB.
// Open() creates the parent dir (e.g. .verdle).
const DefaultDBPath = ".verdle/cache.db"

// ErrNotFound is returned when no cache matches the requested key.
var ErrNotFound = errors.New("store: cache not found")

// CacheKey identifies one persisted feedback cache. Any vocabulary change
// flips the content hash, so stale entries can never be served.
type CacheKey struct {
	WordCount int
	Hash      string
	Sparsity  int
}

// KeyFor derives the persistence key for a built table.
func KeyFor(t *feedback.Table) CacheKey {
	return CacheKey{
		WordCount: len(t.Words()),
		Hash:      t.Hash(),
		Sparsity:  t.Sparsity(),
	}
}

// Store is the persistence boundary for feedback caches. CLI and solver
// wiring use only this interface; implementation is SQLite or in-memory.
type Store interface {
	// SaveCache writes all entries under key, replacing any previous cache
	// saved with the same key.
	SaveCache(key CacheKey, entries []feedback.Entry) error
	// LoadCache returns the entries saved under key, or ErrNotFound.
	LoadCache(key CacheKey) ([]feedback.Entry, error)
	Close() error
}
