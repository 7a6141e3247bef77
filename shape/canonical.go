package shape

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/polyomino/cell"
)

// Canonicalize returns the canonical representative of the equivalence class
// of cells under policy p.
//
// Implementation:
//   - Stage 1: translate cells so that min X = min Y = 0 (duplicates collapse).
//   - Stage 2: build SymmetrySet of the translated shape under p; each member
//     is itself re-translated to the origin.
//   - Stage 3: select the member that is smallest under Compare.
//
// The input slice is neither retained nor modified. Canonicalize is
// idempotent: feeding the cells of a result back yields the same result,
// and translating the input by any vector does not change the result.
//
// Errors:
//   - ErrEmptyCells if cells is empty.
//   - ErrUnknownPolicy if p is not valid.
//
// Complexity: O(g · n log n) with g = p.GroupOrder().
func Canonicalize(cells []cell.Vec, p Policy) (Shape, error) {
	if !p.Valid() {
		return Shape{}, fmt.Errorf("canonicalize %d cells: %w", len(cells), ErrUnknownPolicy)
	}
	if len(cells) == 0 {
		return Shape{}, ErrEmptyCells
	}
	syms, err := SymmetrySet(positional(cells), p)
	if err != nil {
		return Shape{}, err
	}
	return slices.MinFunc(syms, Compare), nil
}

// New canonicalizes the given cells under p. See Canonicalize.
func New(p Policy, cells ...cell.Vec) (Shape, error) {
	return Canonicalize(cells, p)
}

// MustNew is like New but panics on error. Intended for static tables,
// tests and examples.
func MustNew(p Policy, cells ...cell.Vec) Shape {
	s, err := Canonicalize(cells, p)
	if err != nil {
		panic(err)
	}
	return s
}

// SymmetrySet returns the shapes that p treats as equivalent to s:
//   - Fixed:    {s}
//   - OneSided: s.Rotations()
//   - Free:     the union of r.Rotations() over r in s.Reflections()
//
// The result holds no duplicates; its length divides p.GroupOrder().
// The Empty sentinel is its own and only symmetry under every policy.
func SymmetrySet(s Shape, p Policy) ([]Shape, error) {
	if !p.Valid() {
		return nil, ErrUnknownPolicy
	}
	if s.IsEmpty() {
		return []Shape{s}, nil
	}
	switch p {
	case OneSided:
		return s.Rotations(), nil
	case Free:
		out := make([]Shape, 0, 8)
		for _, r := range s.Reflections() {
			for _, q := range r.Rotations() {
				out = appendUnique(out, q)
			}
		}
		return out, nil
	default:
		return []Shape{s}, nil
	}
}
