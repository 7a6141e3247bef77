// SPDX-License-Identifier: MIT
// Package: polyomino/piece
//
// reorient.go — table-driven mapping from canonical one-sided shapes to
// named spawn orientations.

package piece

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polyomino/catalog"
	"github.com/katalvlaran/polyomino/cell"
	"github.com/katalvlaran/polyomino/shape"
)

// ErrUnknownIdentity indicates a shape or label missing from a table.
var ErrUnknownIdentity = errors.New("piece: unknown identity")

// ErrTableMismatch indicates a label list whose length differs from the
// catalog it labels.
var ErrTableMismatch = errors.New("piece: label count does not match catalog size")

// IdentityTable labels canonical shapes by key.
type IdentityTable map[shape.Key]string

// RotationTable gives, per label, how many RotateRight steps turn the
// canonical shape into its spawn orientation. Negative values rotate left.
type RotationTable map[string]int

// OffsetTable gives, per label, the spawn Position.
type OffsetTable map[string]cell.Vec

// NewIdentityTable assigns labels[i] to the i-th member of set in sorted
// (shape.Compare) order.
func NewIdentityTable(set shape.Set, labels []string) (IdentityTable, error) {
	if len(labels) != set.Len() {
		return nil, fmt.Errorf("%d labels for %d shapes: %w", len(labels), set.Len(), ErrTableMismatch)
	}
	t := make(IdentityTable, len(labels))
	for i, s := range set.Sorted() {
		t[s.Key()] = labels[i]
	}
	return t, nil
}

// Label returns the label of s.
func (t IdentityTable) Label(s shape.Shape) (string, bool) {
	l, ok := t[s.Key()]
	return l, ok
}

// Reorient looks up the label of the canonical shape s, rotates it by the
// label's start rotation and places it at the label's offset.
// A label with no offset entry spawns at the origin.
//
// Errors:
//   - ErrUnknownIdentity if s is not in ids, or its label is not in rots.
func Reorient(s shape.Shape, ids IdentityTable, rots RotationTable, offs OffsetTable) (Piece, error) {
	label, ok := ids.Label(s)
	if !ok {
		return Piece{}, fmt.Errorf("shape %v: %w", s, ErrUnknownIdentity)
	}
	k, ok := rots[label]
	if !ok {
		return Piece{}, fmt.Errorf("rotation for %q: %w", label, ErrUnknownIdentity)
	}
	oriented := s
	for i := 0; i < ((k%4)+4)%4; i++ {
		oriented = oriented.RotateRight()
	}
	return New(oriented, offs[label]), nil
}

// TetrominoLabels names the one-sided tetrominoes in sorted catalog order.
var TetrominoLabels = []string{"I", "J", "T", "L", "O", "S", "Z"}

// GuidelineRotations turns each canonical tetromino into its Guideline
// spawn orientation (flat side down, y pointing down).
func GuidelineRotations() RotationTable {
	return RotationTable{"I": 3, "J": 1, "T": 1, "L": 1, "O": 0, "S": 1, "Z": 0}
}

// GuidelineOffsets spawns tetrominoes in the middle of a 10-column board.
func GuidelineOffsets() OffsetTable {
	return OffsetTable{
		"I": {X: 3, Y: 0},
		"J": {X: 3, Y: 0},
		"T": {X: 3, Y: 0},
		"L": {X: 3, Y: 0},
		"O": {X: 4, Y: 0},
		"S": {X: 3, Y: 0},
		"Z": {X: 3, Y: 0},
	}
}

// Tetrominoes returns the seven one-sided tetrominoes from e, labelled and
// reoriented with the Guideline tables.
func Tetrominoes(e *catalog.Enumerator) (map[string]Piece, error) {
	set, err := e.Catalog(4, shape.OneSided)
	if err != nil {
		return nil, err
	}
	ids, err := NewIdentityTable(set, TetrominoLabels)
	if err != nil {
		return nil, err
	}
	rots, offs := GuidelineRotations(), GuidelineOffsets()
	out := make(map[string]Piece, set.Len())
	for s := range set.All() {
		p, err := Reorient(s, ids, rots, offs)
		if err != nil {
			return nil, err
		}
		label, _ := ids.Label(s)
		out[label] = p
	}
	return out, nil
}
