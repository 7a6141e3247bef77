// SPDX-License-Identifier: MIT
// Package: polyomino/catalog
//
// catalog.go — Enumerator: recursive catalog computation over an explicit
// (policy, order) memo table.

package catalog

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/polyomino/shape"
)

// memoKey identifies one memoized catalog.
type memoKey struct {
	policy shape.Policy
	order  int
}

// Enumerator computes and memoizes catalogs. The zero value is not usable;
// construct with New. The mutex only makes one *Enumerator safe to share
// between goroutines; results are the same with or without it.
type Enumerator struct {
	mu   sync.Mutex
	cfg  config
	memo map[memoKey]shape.Set
}

// New returns an Enumerator configured by opts, applied left to right.
func New(opts ...Option) *Enumerator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Enumerator{
		cfg:  cfg,
		memo: make(map[memoKey]shape.Set),
	}
}

// MaxOrder reports the largest order e will compute.
func (e *Enumerator) MaxOrder() int { return e.cfg.maxOrder }

// Catalog returns the deduplicated canonical catalog of order-n shapes under
// policy p. The result is a read-only snapshot.
//
// Implementation:
//   - Stage 1: validate n and p.
//   - Stage 2: return the memoized set if present.
//   - Stage 3: n == 1 → Monomino(); otherwise Grow(Catalog(n-1, p), p).
//   - Stage 4: memoize (unless WithoutMemo) and log at debug level.
//
// Errors:
//   - ErrInvalidOrder if n < 1.
//   - ErrOrderTooLarge if n > MaxOrder().
//   - shape.ErrUnknownPolicy if p is not valid.
func (e *Enumerator) Catalog(n int, p shape.Policy) (shape.Set, error) {
	if n < 1 {
		return shape.Set{}, fmt.Errorf("catalog(%d, %v): %w", n, p, ErrInvalidOrder)
	}
	if n > e.cfg.maxOrder {
		return shape.Set{}, fmt.Errorf("catalog(%d, %v): max %d: %w", n, p, e.cfg.maxOrder, ErrOrderTooLarge)
	}
	if !p.Valid() {
		return shape.Set{}, fmt.Errorf("catalog(%d, %v): %w", n, p, shape.ErrUnknownPolicy)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.catalogLocked(n, p)
}

// MustCatalog is like Catalog but panics on error.
func (e *Enumerator) MustCatalog(n int, p shape.Policy) shape.Set {
	s, err := e.Catalog(n, p)
	if err != nil {
		panic(err)
	}
	return s
}

// catalogLocked recurses down to the monomino; e.mu must be held.
// Recursion depth is n.
func (e *Enumerator) catalogLocked(n int, p shape.Policy) (shape.Set, error) {
	key := memoKey{policy: p, order: n}
	if s, ok := e.memo[key]; ok {
		e.cfg.logger.Debug("catalog cache hit", "policy", p.String(), "order", n, "size", s.Len())
		return s, nil
	}

	start := time.Now()
	var (
		s   shape.Set
		err error
	)
	if n == 1 {
		s = Monomino()
	} else {
		var parents shape.Set
		parents, err = e.catalogLocked(n-1, p)
		if err != nil {
			return shape.Set{}, err
		}
		s, err = Grow(parents, p)
		if err != nil {
			return shape.Set{}, fmt.Errorf("catalog(%d, %v): %w", n, p, err)
		}
	}

	if e.cfg.memo {
		e.memo[key] = s
	}
	e.cfg.logger.Debug("catalog computed",
		slog.String("policy", p.String()),
		slog.Int("order", n),
		slog.Int("size", s.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return s, nil
}

// Cached reports whether catalog(n, p) is in the memo table.
func (e *Enumerator) Cached(n int, p shape.Policy) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.memo[memoKey{policy: p, order: n}]
	return ok
}

// Len returns the number of memoized catalogs.
func (e *Enumerator) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.memo)
}

// Clear empties the memo table.
func (e *Enumerator) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	clear(e.memo)
	e.cfg.logger.Debug("catalog memo cleared")
}

// Verify computes, or reads the memoized, catalog(n, p) and checks growth
// reachability: every member of catalog(n, p) must be Reachable from
// catalog(n-1, p). For n == 1 the catalog must be exactly the monomino.
//
// Errors:
//   - any error from Catalog.
//   - ErrUnreachable wrapped with the offending shape.
func (e *Enumerator) Verify(n int, p shape.Policy) error {
	children, err := e.Catalog(n, p)
	if err != nil {
		return err
	}
	if n == 1 {
		if !children.Equal(Monomino()) {
			return fmt.Errorf("catalog(1, %v) is not the monomino: %w", p, ErrUnreachable)
		}
		return nil
	}
	parents, err := e.Catalog(n-1, p)
	if err != nil {
		return err
	}
	for _, child := range children.Sorted() {
		if !Reachable(child, parents, p) {
			e.cfg.logger.Warn("unreachable shape", "policy", p.String(), "order", n, "shape", child.String())
			return fmt.Errorf("catalog(%d, %v): %v: %w", n, p, child, ErrUnreachable)
		}
	}
	e.cfg.logger.Debug("catalog verified", "policy", p.String(), "order", n, "size", children.Len())
	return nil
}
