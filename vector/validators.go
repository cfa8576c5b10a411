// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
	"github.com/katalvlaran/fixedla/scalar"
)

// vectorErrorf wraps err with an operation tag, preserving it via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// length returns N.Size(), panicking with ErrBadShape if it is not positive.
func length[N dim.Dim]() int {
	n := dim.Size[N]()
	if !dim.Valid[N]() {
		panic(fmt.Errorf("%w: %d", ErrBadShape, n))
	}

	return n
}

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return vectorErrorf("validateIndex", ErrOutOfRange)
	}

	return nil
}

// validateDivisor rejects zero elements of b when T is integral.
func validateDivisor[T scalar.Number](b []T) error {
	if !scalar.IsIntegral[T]() {
		return nil
	}
	if i := kernel.FirstZero(b); i >= 0 {
		return vectorErrorf(fmt.Sprintf("validateDivisor: index %d", i), ErrDivisionByZero)
	}

	return nil
}
