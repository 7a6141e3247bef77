// SPDX-License-Identifier: MIT
// Package: polyomino/catalog
//
// errors.go — sentinel errors for the catalog package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (order, policy, offending shape) is attached with %w wrapping.
//   • Option constructors (WithX) panic on meaningless input; catalog
//     computation never panics.

package catalog

import "errors"

// ErrInvalidOrder indicates a requested order below 1.
var ErrInvalidOrder = errors.New("catalog: order must be at least 1")

// ErrOrderTooLarge indicates a requested order above the Enumerator's
// configured maximum (see WithMaxOrder).
var ErrOrderTooLarge = errors.New("catalog: order exceeds configured maximum")

// ErrUnreachable indicates that Verify found a catalog member that cannot be
// produced from the previous order by adding one adjacent cell.
var ErrUnreachable = errors.New("catalog: shape not reachable from previous order")
