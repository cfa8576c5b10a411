// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Operations wrap these with an operation tag; match them with errors.Is.

package vector

import "errors"

var (
	// ErrBadShape is the panic value when a length marker reports a
	// non-positive size.
	ErrBadShape = errors.New("vector: invalid shape")

	// ErrOutOfRange indicates an element index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDivisionByZero is returned when T is integral and a divisor is zero.
	ErrDivisionByZero = errors.New("vector: integer division by zero")

	// ErrZeroNorm is returned by Normalized for a vector whose norm is zero.
	ErrZeroNorm = errors.New("vector: zero norm")
)
