// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/polyomino.
package gridgraph

import (
	"errors"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/polyomino/cell"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input has no cells, rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGridTooLarge indicates a bounding box with more than MaxCells cells.
	ErrGridTooLarge = errors.New("gridgraph: bounding box exceeds MaxCells")
)

// MaxCells is the largest bounding-box area a Grid can index: every
// row-major index must fit in a uint32 bitmap key.
const MaxCells uint64 = math.MaxUint32 + 1

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W. Polyominoes use this.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is the bounding box of a set of cells, viewed as a graph whose
// vertices are the occupied cells. It is immutable once built.
//
// Origin is the minimum corner of the box in the caller's coordinates;
// grid coordinates (x, y) correspond to Origin + (x, y).
type Grid struct {
	Width, Height int
	Origin        cell.Vec
	Conn          Connectivity

	land    *roaring.Bitmap
	offsets []cell.Vec
}
