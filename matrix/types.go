// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the container and view types; constructors live in
// api.go, storage accessors in impl_dense.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/scalar"
)

// Matrix is an R×C dense row-major matrix of T.
//   - data holds exactly R.Size()*C.Size() elements once allocated.
//   - A nil data slice (zero value) reads as all zeros; it is allocated by
//     the first write (Set, Row, SwapRows), never by a read.
type Matrix[T scalar.Number, R, C dim.Dim] struct {
	data []T // row-major; len == rows*cols
}

// Row is a non-owning view of one matrix row. It aliases the owner's
// storage: writes through the view mutate the matrix. A view is valid until
// the owner is swapped or reassigned (Swap/Assign). Plain indexing r[c] is
// Go-bounds-checked; At/Set return ErrOutOfRange instead of panicking.
type Row[T scalar.Number] []T

// BinaryOp combines two scalars into one; see Apply.
type BinaryOp[T scalar.Number] func(x, y T) T

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Matrix[float64, dim.D2, dim.D2])(nil)
)
