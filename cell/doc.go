// Package cell provides the integer grid coordinate used by every other
// package of github.com/katalvlaran/polyomino.
//
// What:
//
//   - Vec is an immutable (X, Y) pair with value equality; it is comparable
//     and may be used directly as a map key.
//   - Componentwise arithmetic: Add, Sub, Scale, plus the generic Apply.
//   - Axis helpers: MapBoth applies one function to both axes, MapAxes applies
//     it to each axis separately and returns both results.
//   - Steps returns the four cardinal neighbours; it is the only primitive the
//     growth engine uses to propose new cells.
//   - Range lazily yields every vector of a w×h box and can be ranged over
//     any number of times.
//
// Ordering:
//
//	Compare orders vectors by X, then by Y. Shape canonicalization sorts
//	cells with this order before comparing shapes lexicographically.
//
// Complexity:
//
//   - All Vec operations are O(1) and allocation-free (Steps returns an array).
//   - Range: O(w·h) over a full iteration, O(1) memory.
package cell
