// SPDX-License-Identifier: MIT
// Package: polyomino/catalog
//
// Package catalog enumerates polyominoes of a given order under a symmetry
// policy and memoizes the results.
//
// 🚀 What is a catalog?
//
//	catalog(n, policy) is the deduplicated set of canonical order-n shapes:
//
//	  order     1  2  3  4   5   6
//	  fixed     1  2  6  19  63  216
//	  one-sided 1  1  2  7   18  60
//	  free      1  1  2  5   12  35
//
// ⚙️ Algorithm:
//
//	catalog(1) is the monomino. catalog(n+1) = Grow(catalog(n)): for every
//	shape, every cell and every cardinal step of that cell that is not
//	already occupied, canonicalize shape ∪ {step} under the policy and
//	collect the results into a shape.Set. Duplicates reached from different
//	parents or growth cells collapse through the canonical shape.Key.
//
//	Correctness is reachability: every member of catalog(n+1) has a cell whose
//	removal leaves a connected shape that canonicalizes into catalog(n).
//	Enumerator.Verify checks exactly that.
//
// Memoization:
//
//	An Enumerator owns a table keyed by (policy, order). It is inspectable
//	(Cached, Len) and clearable (Clear); WithoutMemo turns it off. Results are
//	identical with or without it.
//
// Complexity:
//
//	Intentionally naive: Grow costs O(|catalog(n)| · n · 4 · g·n log n) with
//	g the policy's group order. Meant for order ≤ ~8, i.e. game piece sets.
//
// Errors:
//
//	ErrInvalidOrder  - order ≤ 0.
//	ErrOrderTooLarge - order above the configured maximum (WithMaxOrder).
//	ErrUnreachable   - Verify found a shape with no parent in catalog(n-1).
//
// Concurrency:
//
//	Enumerator methods are safe to call from multiple goroutines; the
//	computation itself is synchronous and single-threaded. Returned sets are
//	read-only snapshots.
package catalog
