// SPDX-License-Identifier: MIT
// Package: polyomino/piece
//
// piece.go — a canonical shape placed at an integer position.

package piece

import (
	"fmt"

	"github.com/katalvlaran/polyomino/cell"
	"github.com/katalvlaran/polyomino/shape"
)

// Piece is a shape placed on a board. Shape stays in canonical position;
// Position is added to every cell when the piece is drawn or tested.
type Piece struct {
	Shape    shape.Shape
	Position cell.Vec
}

// New places s at pos.
func New(s shape.Shape, pos cell.Vec) Piece {
	return Piece{Shape: s, Position: pos}
}

// Cells returns the board cells covered by p, in the shape's cell order.
func (p Piece) Cells() []cell.Vec {
	out := p.Shape.Cells()
	for i := range out {
		out[i] = out[i].Add(p.Position)
	}
	return out
}

// Move returns p shifted by d.
func (p Piece) Move(d cell.Vec) Piece {
	return Piece{Shape: p.Shape, Position: p.Position.Add(d)}
}

// RotateRight returns p with its shape rotated once; Position is kept, so
// the rotated shape stays anchored at the same bounding-box corner.
func (p Piece) RotateRight() Piece {
	return Piece{Shape: p.Shape.RotateRight(), Position: p.Position}
}

// RotateLeft is the inverse of RotateRight.
func (p Piece) RotateLeft() Piece {
	return Piece{Shape: p.Shape.RotateLeft(), Position: p.Position}
}

// Fits reports whether every cell of p satisfies free. Games pass their
// board's emptiness test.
func (p Piece) Fits(free func(cell.Vec) bool) bool {
	for c := range p.Shape.All() {
		if !free(c.Add(p.Position)) {
			return false
		}
	}
	return true
}

func (p Piece) String() string {
	return fmt.Sprintf("%v@%v", p.Shape, p.Position)
}
