package store

import (
	"errors"
	"log/slog"

	"verdle/pkg/feedback"
)

// LoadOrBuild returns the feedback table for list, preferring a persisted
// cache. Every store failure is absorbed: a missing, unreadable or corrupt
// cache falls back to a fresh build, and save failures only cost the next
// startup. Solving never fails because of cache I/O.
func LoadOrBuild(st Store, list []string, sparsity int, logger *slog.Logger) *feedback.Table {
	if logger == nil {
		logger = slog.Default()
	}
	key := CacheKey{WordCount: len(list), Hash: feedback.VocabHash(list), Sparsity: sparsity}

	if st != nil {
		entries, err := st.LoadCache(key)
		switch {
		case err == nil:
			t, rerr := feedback.RestoreTable(list, sparsity, entries)
			if rerr == nil {
				logger.Debug("feedback cache loaded", "pairs", t.Len(), "hash", key.Hash[:12])
				return t
			}
			logger.Warn("persisted feedback cache corrupt, rebuilding", "error", rerr)
		case errors.Is(err, ErrNotFound):
			logger.Debug("no persisted feedback cache", "hash", key.Hash[:12], "sparsity", sparsity)
		default:
			logger.Warn("feedback cache load failed, rebuilding", "error", err)
		}
	}

	t := feedback.BuildTable(list, sparsity)
	if st != nil {
		if err := st.SaveCache(key, t.Snapshot()); err != nil {
			logger.Warn("feedback cache save failed, continuing without persistence", "error", err)
		} else {
			logger.Debug("feedback cache saved", "pairs", t.Len())
		}
	}
	return t
}

// Builder adapts LoadOrBuild to feedback.BuildFunc so a feedback.Shared
// can route its one-time build through the store.
func Builder(st Store, logger *slog.Logger) feedback.BuildFunc {
	return func(list []string, sparsity int) (*feedback.Table, error) {
		return LoadOrBuild(st, list, sparsity, logger), nil
	}
}
