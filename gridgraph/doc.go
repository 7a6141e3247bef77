// Package gridgraph treats a finite set of grid cells as a graph, enabling
// connectivity checks on polyomino cell sets.
//
// What:
//
//   - Grid is the bounding box of a cell set; occupied ("land") cells are
//     stored in a roaring bitmap of row-major indices.
//   - NewGrid builds a Grid from arbitrary cells; From2D builds one from a
//     rectangular [][]int picture (values ≥ 1 are land), which keeps tests
//     and examples readable.
//   - ConnectedComponents finds the contiguous regions of land cells.
//   - Connected reports whether all land forms a single region.
//
// Why:
//
//   - Polyomino invariant: every shape is one 4-connected region. The
//     growth engine guarantees it by construction; this package verifies it
//     independently in reachability checks and tests.
//
// Complexity:
//
//   - NewGrid:             O(n) time, Memory: O(n)          (n = cell count).
//   - ConnectedComponents: O(n×d) time, Memory: O(n)        (d = 4 or 8).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: no cells, or a picture with no rows or no columns.
//   - ErrNonRectangular: picture rows have differing lengths.
//   - ErrGridTooLarge: the bounding box has more than MaxCells cells.
package gridgraph
