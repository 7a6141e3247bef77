// SPDX-License-Identifier: MIT
// Package: polyomino/catalog
//
// grow.go — single-cell extension and its inverse (reachability).

package catalog

import (
	"fmt"

	"github.com/katalvlaran/polyomino/cell"
	"github.com/katalvlaran/polyomino/shape"
)

// Monomino returns the order-1 catalog: the single cell at the origin.
// It is the same under every policy.
func Monomino() shape.Set {
	return shape.NewSet(shape.MustNew(shape.Fixed, cell.Zero))
}

// Grow produces the order-(n+1) catalog from an order-n catalog.
//
// For every shape, every cell and every cardinal step of that cell not
// already in the shape, the extended cell set is canonicalized under p.
// Candidates are collected by canonical key, so different parents or growth
// cells that reach the same shape contribute one entry.
//
// Errors:
//   - shape.ErrUnknownPolicy if p is not valid.
//
// Complexity: O(|parents| · n · 4) canonicalizations.
func Grow(parents shape.Set, p shape.Policy) (shape.Set, error) {
	if !p.Valid() {
		return shape.Set{}, fmt.Errorf("grow under %v: %w", p, shape.ErrUnknownPolicy)
	}
	seen := make(map[shape.Key]struct{})
	var out []shape.Shape
	for parent := range parents.All() {
		cells := parent.Cells()
		grown := make([]cell.Vec, len(cells)+1)
		copy(grown, cells)
		for _, c := range cells {
			for _, step := range c.Steps() {
				if parent.Contains(step) {
					continue
				}
				grown[len(cells)] = step
				child, err := shape.Canonicalize(grown, p)
				if err != nil {
					return shape.Set{}, err
				}
				if _, dup := seen[child.Key()]; dup {
					continue
				}
				seen[child.Key()] = struct{}{}
				out = append(out, child)
			}
		}
	}
	return shape.NewSet(out...), nil
}

// Reachable reports whether child can be grown from some member of parents
// under p: some cell of child can be removed so that the rest stays
// connected and canonicalizes to a member of parents.
func Reachable(child shape.Shape, parents shape.Set, p shape.Policy) bool {
	for c := range child.All() {
		rest, ok := child.Without(c)
		if !ok || !rest.Connected() {
			continue
		}
		canon, err := shape.Canonicalize(rest.Cells(), p)
		if err != nil {
			return false
		}
		if parents.Contains(canon) {
			return true
		}
	}
	return false
}
