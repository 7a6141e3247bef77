// Package shape implements the polyomino value type and its canonical forms.
//
// 🚀 What is a Shape?
//
//	A Shape is an immutable, non-empty set of unit cells in canonical position:
//	the minimum X over its cells is 0 and the minimum Y is 0 (the corner of the
//	bounding box, not necessarily an occupied cell). Equality, hashing and the
//	total order all operate on that normalized cell set through an explicit
//	canonical Key, so deduplication never depends on a collection's notion of
//	deep equality.
//
// ✨ Canonicalization:
//
//	Canonicalize(cells, policy) runs three steps:
//	  1. translate the cells to the origin;
//	  2. enumerate the policy's symmetry set (every member re-translated);
//	  3. keep the member that is smallest under Compare.
//
//	Policies:
//	  • Fixed    — symmetry set is the shape itself (translation only)
//	  • OneSided — the rotations of the shape (mirror images stay distinct)
//	  • Free     — rotations of every reflection (full dihedral group)
//
// ⚙️ Transforms:
//
//	RotateRight, RotateLeft, Reflections, Rotations and Transform always return
//	positionally canonical shapes and never apply a policy, so a one-sided
//	catalog member can be turned into its other orientations by a game.
//
// The zero Shape is the order-0 empty sentinel; it is never a catalog member.
//
// Errors:
//
//	ErrEmptyCells    - canonicalization requested for an empty cell set.
//	ErrUnknownPolicy - a Policy outside {Fixed, OneSided, Free}.
package shape
