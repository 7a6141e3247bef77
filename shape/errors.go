package shape

import "errors"

var (
	// ErrEmptyCells indicates canonicalization of an empty cell set. Only the
	// Empty sentinel may have no cells.
	ErrEmptyCells = errors.New("shape: cell set must not be empty")

	// ErrUnknownPolicy indicates a Policy value outside Fixed, OneSided, Free.
	ErrUnknownPolicy = errors.New("shape: unknown symmetry policy")
)
