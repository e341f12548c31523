package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"verdle/pkg/feedback"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS caches (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	word_count   INTEGER NOT NULL,
	content_hash TEXT    NOT NULL,
	sparsity     INTEGER NOT NULL,
	created_at   TEXT    NOT NULL,
	UNIQUE(word_count, content_hash, sparsity)
);
CREATE TABLE IF NOT EXISTS cache_entries (
	cache_id INTEGER NOT NULL,
	guess    TEXT    NOT NULL,
	target   TEXT    NOT NULL,
	marks    TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cache_entries_cache ON cache_entries(cache_id);
`

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite DB at path and applies the schema.
// The parent directory is created if needed.
func Open(path string) (*SqlStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &SqlStore{db: db}, nil
}

// SaveCache implements Store. The write is transactional: a reader either
// sees the previous cache or the complete new one.
func (s *SqlStore) SaveCache(key CacheKey, entries []feedback.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin save: %w", err)
	}
	defer tx.Rollback()

	var prev int64
	err = tx.QueryRow(
		`SELECT id FROM caches WHERE word_count = ? AND content_hash = ? AND sparsity = ?`,
		key.WordCount, key.Hash, key.Sparsity,
	).Scan(&prev)
	switch {
	case err == nil:
		if _, err := tx.Exec(`DELETE FROM cache_entries WHERE cache_id = ?`, prev); err != nil {
			return fmt.Errorf("store: clear previous entries: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM caches WHERE id = ?`, prev); err != nil {
			return fmt.Errorf("store: clear previous cache: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		// first save for this key
	default:
		return fmt.Errorf("store: probe previous cache: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO caches (word_count, content_hash, sparsity, created_at) VALUES (?, ?, ?, ?)`,
		key.WordCount, key.Hash, key.Sparsity, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store: insert cache: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("store: cache id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO cache_entries (cache_id, guess, target, marks) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: prepare entry insert: %w", err)
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.Exec(id, e.Guess, e.Target, e.Marks); err != nil {
			return fmt.Errorf("store: insert entry (%s,%s): %w", e.Guess, e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit save: %w", err)
	}
	return nil
}

// LoadCache implements Store.
func (s *SqlStore) LoadCache(key CacheKey) ([]feedback.Entry, error) {
	var id int64
	err := s.db.QueryRow(
		`SELECT id FROM caches WHERE word_count = ? AND content_hash = ? AND sparsity = ?`,
		key.WordCount, key.Hash, key.Sparsity,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: lookup cache: %w", err)
	}

	rows, err := s.db.Query(`SELECT guess, target, marks FROM cache_entries WHERE cache_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("store: load entries: %w", err)
	}
	defer rows.Close()

	var entries []feedback.Entry
	for rows.Next() {
		var e feedback.Entry
		if err := rows.Scan(&e.Guess, &e.Target, &e.Marks); err != nil {
			return nil, fmt.Errorf("store: scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate entries: %w", err)
	}
	return entries, nil
}

// Close implements Store.
func (s *SqlStore) Close() error { return s.db.Close() }
