// Package polyomino enumerates polyominoes: connected shapes made of unit
// squares joined edge to edge.
//
// 🚀 What is in the module?
//
//	• cell/      — integer grid vectors, step directions and rectangle ranges
//	• gridgraph/ — 4/8-connected occupancy grids on roaring bitmaps
//	• shape/     — immutable cell sets, rotations, reflections, canonical forms
//	• catalog/   — memoized growth engine: all shapes of order n under a policy
//	• piece/     — table-driven spawn orientations for falling-block games
//	• cmd/polyominoes — prints fixed counts for orders 1..6
//
// ✨ Symmetry policies
//
//   - Fixed     – translation only              (1, 2, 6, 19, 63, 216 …)
//   - OneSided  – translation + rotation        (1, 1, 2, 7, 18, 60 …)
//   - Free      – rotation + reflection as well (1, 1, 2, 5, 12, 35 …)
//
// Quick ASCII example (the T tetromino, y grows downward):
//
//	.#.
//	###
//
//	e := catalog.New()
//	tets, _ := e.Catalog(4, shape.OneSided)
//	fmt.Println(tets.Len()) // 7
//
//	go get github.com/katalvlaran/polyomino
package polyomino
