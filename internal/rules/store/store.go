// Package store holds the current immutable rule corpus behind an atomically
// swappable snapshot. Readers never block and never observe a partially
// replaced corpus; reload is single-writer.
package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"permitly/internal/rules"
	dErrors "permitly/pkg/domain-errors"
)

// Store is the shared rule corpus. Concurrent requests read the snapshot
// without coordination; Reload swaps the whole snapshot atomically.
type Store struct {
	snap   atomic.Pointer[[]rules.Rule]
	loader Loader
	logger *slog.Logger

	// reloadMu serializes writers only; the read path is lock-free.
	reloadMu sync.Mutex
}

// New creates a store and performs the initial load. If the initial load
// fails, the builtin baseline corpus is installed instead so the engine never
// starts empty; the load error is logged, not returned.
func New(loader Loader, logger *slog.Logger) *Store {
	s := &Store{loader: loader, logger: logger}

	corpus, err := loader.Load(context.Background())
	if err != nil {
		logger.Warn("initial rule corpus load failed, using builtin baseline", "error", err)
		corpus = rules.Builtin()
	}
	s.snap.Store(&corpus)

	logger.Info("rule corpus loaded", "rules", len(corpus))
	return s
}

// Snapshot returns the current corpus. The returned slice is immutable by
// convention: it is replaced wholesale on reload, never mutated in place, so
// callers may keep reading it across a concurrent reload.
func (s *Store) Snapshot() []rules.Rule {
	return *s.snap.Load()
}

// Count returns the number of rules in the current snapshot.
func (s *Store) Count() int {
	return len(s.Snapshot())
}

// Reload re-reads the corpus source and atomically replaces the snapshot,
// returning the new rule count. On failure the previous corpus is retained
// and the error is reported to the caller.
func (s *Store) Reload(ctx context.Context) (int, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	corpus, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "rule corpus reload failed, retaining previous snapshot",
			"error", err,
			"rules", s.Count(),
		)
		return 0, dErrors.Wrap(err, dErrors.CodeRuleLoad, "rule corpus reload failed")
	}

	s.snap.Store(&corpus)
	s.logger.InfoContext(ctx, "rule corpus reloaded", "rules", len(corpus))
	return len(corpus), nil
}

// HealthCheck reports whether the store holds a non-empty corpus.
func (s *Store) HealthCheck() error {
	if s.Count() == 0 {
		return dErrors.New(dErrors.CodeRuleLoad, "rule corpus is empty")
	}
	return nil
}
