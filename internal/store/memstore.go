package store

import (
	"sync"

	"verdle/pkg/feedback"
)

// MemStore is an in-memory Store for tests and cache-less runs.
type MemStore struct {
	mu     sync.Mutex
	caches map[CacheKey][]feedback.Entry
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{caches: make(map[CacheKey][]feedback.Entry)}
}

// SaveCache implements Store.
func (s *MemStore) SaveCache(key CacheKey, entries []feedback.Entry) error {
	copied := make([]feedback.Entry, len(entries))
	copy(copied, entries)
	s.mu.Lock()
	s.caches[key] = copied
	s.mu.Unlock()
	return nil
}

// LoadCache implements Store.
func (s *MemStore) LoadCache(key CacheKey) ([]feedback.Entry, error) {
	s.mu.Lock()
	entries, ok := s.caches[key]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	copied := make([]feedback.Entry, len(entries))
	copy(copied, entries)
	return copied, nil
}

// Close implements Store.
func (s *MemStore) Close() error { return nil }
