// SPDX-License-Identifier: MIT
// Package matrix - public constructors and comparison facades.
//
// Purpose:
//   - Provide the factory surface (New/Zeros/Identity/FromValues/FromRows).
//   - Provide Equal/AllClose so callers can verify results such as inverses.
//
// Determinism & Policy:
//   - Every constructor allocates exactly once; literal constructors copy in
//     row-major order and never read past either buffer.

package matrix

import (
	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
	"github.com/katalvlaran/fixedla/scalar"
)

// ---------- Constructors ----------

// New returns an R×C matrix with every element at T's zero value.
// Panics with ErrBadShape if a marker reports a non-positive size.
// Complexity: O(r*c) zero-init.
func New[T scalar.Number, R, C dim.Dim]() *Matrix[T, R, C] {
	return &Matrix[T, R, C]{data: make([]T, shapeLen[R, C]())}
}

// Zeros returns an R×C matrix of zeros.
// It is a thin alias of New with an intention-revealing name.
func Zeros[T scalar.Number, R, C dim.Dim]() *Matrix[T, R, C] {
	return New[T, R, C]()
}

// Identity returns the N×N identity (ones on the diagonal, zeros elsewhere).
// Square shape is enforced by the signature.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T scalar.Number, N dim.Dim]() *Matrix[T, N, N] {
	m := New[T, N, N]()
	n := dim.Size[N]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = scalar.One[T]()
	}

	return m
}

// FromValues builds a matrix from a row-major literal.
// The first min(len(vals), R*C) values are copied; extra values are ignored
// and missing ones stay zero.
//
//	m := matrix.FromValues[float64, dim.D2, dim.D2](1, 2, 3, 4) // [[1 2] [3 4]]
func FromValues[T scalar.Number, R, C dim.Dim](vals ...T) *Matrix[T, R, C] {
	m := New[T, R, C]()
	copy(m.data, vals) // copy stops at the shorter buffer

	return m
}

// FromRows builds a matrix from a literal given row by row.
// At most R rows are read; each row copies min(len(row), C) values.
func FromRows[T scalar.Number, R, C dim.Dim](rows ...[]T) *Matrix[T, R, C] {
	m := New[T, R, C]()
	nr, nc := dim.Size[R](), dim.Size[C]()
	for r := 0; r < nr && r < len(rows); r++ {
		copy(m.data[r*nc:(r+1)*nc], rows[r])
	}

	return m
}

// ---------- Comparison ----------

// Equal reports whether a and b hold identical elements.
// NaN compares unequal to everything, including itself.
func Equal[T scalar.Number, R, C dim.Dim](a, b *Matrix[T, R, C]) bool {
	return kernel.Equal(a.view(), b.view())
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds elementwise.
// Negative tolerances are taken by absolute value; +Inf equals +Inf; NaN
// never matches.
//
// AI-Hints: the cheapest way to validate an Inverse result is
// AllClose(Mul(m, inv), Identity[T, N](), 0, 1e-9).
func AllClose[T scalar.Number, R, C dim.Dim](a, b *Matrix[T, R, C], rtol, atol float64) bool {
	return kernel.AllClose(a.view(), b.view(), rtol, atol)
}
