// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/scalar"
)

// Vector is an N-element dense vector of T.
// A nil data slice (zero value) reads as all zeros; only Set allocates it.
type Vector[T scalar.Number, N dim.Dim] struct {
	data []T // len == N.Size()
}

// BinaryOp combines two scalars into one; see Apply.
type BinaryOp[T scalar.Number] func(x, y T) T

var _ fmt.Stringer = (*Vector[float64, dim.D3])(nil)
