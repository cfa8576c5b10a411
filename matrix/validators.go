// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the runtime checks that the type system
//     cannot express: index ranges and integral zero divisors.
//   - Return plain sentinels wrapped with a validator tag; call sites wrap
//     again with their operation tag.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
	"github.com/katalvlaran/fixedla/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeLen returns rows*cols for markers R, C.
// Panics with ErrBadShape when a marker is non-positive (programmer error).
func shapeLen[R, C dim.Dim]() int {
	rows, cols := dim.Size[R](), dim.Size[C]()
	if !dim.Valid[R]() || !dim.Valid[C]() {
		panic(fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols))
	}

	return rows * cols
}

// validateIndex checks 0 <= i < n.
// Complexity: O(1).
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("validateIndex", ErrOutOfRange)
	}

	return nil
}

// validateDivisor rejects zero elements of b when T is integral.
// Float T always passes: IEEE division yields ±Inf/NaN instead of faulting.
// Complexity: O(n) for integral T, O(1) otherwise.
func validateDivisor[T scalar.Number](b []T) error {
	if !scalar.IsIntegral[T]() {
		return nil
	}
	if i := kernel.FirstZero(b); i >= 0 {
		return validatorErrorf(fmt.Sprintf("validateDivisor: offset %d", i), ErrDivisionByZero)
	}

	return nil
}
