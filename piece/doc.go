// SPDX-License-Identifier: MIT
// Package: polyomino/piece
//
// Package piece places canonical shapes on a board and maps catalog members
// to conventional, named spawn orientations.
//
// What:
//
//   - Piece is a shape.Shape at an integer Position. Cells returns the
//     translated cells; Move, RotateRight and RotateLeft return new Pieces,
//     so a game can try a rotation and discard it if it does not fit.
//   - Reorient is a table-driven adapter: an IdentityTable labels each
//     one-sided catalog member, a RotationTable gives the number of
//     RotateRight steps to the label's spawn orientation, and an OffsetTable
//     gives the spawn position.
//   - Tetrominoes wires the adapter to the one-sided order-4 catalog with the
//     Guideline tables (I, J, T, L, O, S, Z; 10-column board, y down).
//
// Errors:
//
//	ErrUnknownIdentity - the shape (or label) is not in the given tables.
//	ErrTableMismatch   - label count differs from catalog size.
package piece
