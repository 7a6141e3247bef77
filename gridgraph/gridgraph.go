// Package gridgraph provides utilities to treat a set of grid cells as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Construction from raw cells or from a 2D picture
//   - Identification of connected components of occupied cells
package gridgraph

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/polyomino/cell"
)

var (
	offsets4 = []cell.Vec{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	offsets8 = []cell.Vec{
		{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
	}
)

// NewGrid constructs a Grid covering the bounding box of cells.
// Duplicate cells are ignored. The input slice is not retained.
// Returns ErrEmptyGrid if cells is empty, ErrGridTooLarge if the box holds
// more than MaxCells cells.
// Algorithmic complexity: O(n) time and memory.
func NewGrid(cells []cell.Vec, opts GridOptions) (*Grid, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyGrid
	}
	lo := cell.New(math.MaxInt, math.MaxInt)
	hi := cell.New(math.MinInt, math.MinInt)
	for _, c := range cells {
		lo = lo.Apply(c, func(a, b int) int { return min(a, b) })
		hi = hi.Apply(c, func(a, b int) int { return max(a, b) })
	}
	// Unsigned differences are exact even when hi-lo overflows int.
	w, h, ok := boxSize(uint64(hi.X)-uint64(lo.X), uint64(hi.Y)-uint64(lo.Y))
	if !ok {
		return nil, fmt.Errorf("box from %v to %v: %w", lo, hi, ErrGridTooLarge)
	}
	g := newGrid(w, h, opts.Conn)
	g.Origin = lo
	for _, c := range cells {
		d := c.Sub(lo)
		g.land.Add(g.index(d.X, d.Y))
	}

	return g, nil
}

// From2D constructs a Grid from a non-empty, rectangular picture where
// values[y][x] ≥ 1 marks an occupied cell. Origin is (0, 0).
// Returns ErrEmptyGrid if the picture has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrGridTooLarge if the
// picture holds more than MaxCells cells.
// Algorithmic complexity: O(W×H) time.
func From2D(values [][]int, conn Connectivity) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if _, _, ok := boxSize(uint64(w-1), uint64(h-1)); !ok {
		return nil, ErrGridTooLarge
	}
	g := newGrid(w, h, conn)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] >= 1 {
				g.land.Add(g.index(x, y))
			}
		}
	}

	return g, nil
}

// boxSize turns coordinate spans into a width and height, reporting false
// when the area would exceed MaxCells.
func boxSize(dx, dy uint64) (w, h int, ok bool) {
	if dx >= MaxCells || dy >= MaxCells || dx+1 > MaxCells/(dy+1) {
		return 0, 0, false
	}
	return int(dx + 1), int(dy + 1), true
}

func newGrid(w, h int, conn Connectivity) *Grid {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	return &Grid{
		Width:   w,
		Height:  h,
		Conn:    conn,
		land:    roaring.New(),
		offsets: offsets,
	}
}

// InBounds reports whether grid coordinate (x,y) lies within the box.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsLand reports whether grid coordinate (x,y) is an occupied cell.
// Complexity: O(log n).
func (g *Grid) IsLand(x, y int) bool {
	return g.InBounds(x, y) && g.land.Contains(g.index(x, y))
}

// LandCount returns the number of occupied cells.
func (g *Grid) LandCount() int {
	return int(g.land.GetCardinality())
}

// NeighborOffsets returns the neighbor offsets for g.Conn.
// The returned slice is shared and must not be modified.
func (g *Grid) NeighborOffsets() []cell.Vec {
	return g.offsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) uint32 {
	return uint32(y*g.Width + x)
}

// Coordinate converts a row‑major index back to grid coordinates (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Cell converts a row-major index back to a cell in the caller's
// coordinates, i.e. Origin + Coordinate(idx).
func (g *Grid) Cell(idx int) cell.Vec {
	x, y := g.Coordinate(idx)
	return g.Origin.Add(cell.New(x, y))
}
