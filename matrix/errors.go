// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations return
// them wrapped with an operation tag; tests match them via errors.Is.
// No operation panics on user-triggered conditions; panics are reserved for
// programmer errors (an invalid dim marker, a nonsensical option value).

package matrix

import "errors"

var (
	// ErrBadShape is the panic value when a dimension marker reports a
	// non-positive size.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row/Col/SwapRows) return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDivisionByZero is returned by DivElem when T is integral and a
	// divisor element is zero (Go would panic). Float division never fails.
	ErrDivisionByZero = errors.New("matrix: integer division by zero")

	// ErrSingular is returned by Inverse when no nonzero pivot exists at or
	// below the diagonal in some column. The accompanying matrix holds the
	// partially reduced state.
	ErrSingular = errors.New("matrix: singular matrix")
)
