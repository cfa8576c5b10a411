// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels: matrix product,
// transpose and Gauss-Jordan inversion.
//
// Purpose:
//   - Keep every loop order fixed and documented; floating-point results
//     depend on it and are reproducible bit-for-bit for identical inputs.
//   - Operate directly on the flat row-major buffers; no interface dispatch.
//
// Notes:
//   - Shape agreement is enforced by the type parameters, so these kernels
//     never validate dimensions at run time.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opDivElem = "DivElem"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a·b of an R×K and a K×C matrix.
//
// Implementation:
//   - Stage 1: allocate a zero R×C result.
//   - Stage 2: for r, then c, then i (all ascending) accumulate
//     out[r,c] += a[r,i]*b[i,c].
//
// Behavior highlights:
//   - Inner-dimension agreement is a compile-time property of K.
//   - The sum for each entry starts at zero and adds terms in i order; other
//     summation orders can differ in the last bits for float T.
//   - Integral T wraps on overflow as Go integer arithmetic does.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul[T scalar.Number, R, K, C dim.Dim](a *Matrix[T, R, K], b *Matrix[T, K, C]) *Matrix[T, R, C] {
	out := New[T, R, C]()
	rows, inner, cols := dim.Size[R](), dim.Size[K](), dim.Size[C]()
	ad, bd := a.view(), b.view()

	var r, c, i, baseA, baseOut int // loop iterators and row offsets
	for r = 0; r < rows; r++ {
		baseA = r * inner
		baseOut = r * cols
		for c = 0; c < cols; c++ {
			for i = 0; i < inner; i++ {
				out.data[baseOut+c] += ad[baseA+i] * bd[i*cols+c]
			}
		}
	}

	return out
}

// Transpose returns a new C×R matrix with out(c,r) = m(r,c).
// Complexity: O(r*c). The receiver is never mutated.
func (m *Matrix[T, R, C]) Transpose() *Matrix[T, C, R] {
	out := New[T, C, R]()
	rows, cols := m.Rows(), m.Cols()
	src := m.view()

	var r, c, base int
	for r = 0; r < rows; r++ {
		base = r * cols
		for c = 0; c < cols; c++ {
			out.data[c*rows+r] = src[base+c]
		}
	}

	return out
}

// Inverse returns m⁻¹ by Gauss-Jordan elimination on two parallel buffers:
// origin (a copy of m) and result (initially the identity). Every row
// operation applied to origin is applied to result as well.
//
// Implementation:
//   - Stage 1 (forward): for each pivot row r = 0..n-1
//     a. if origin(r,r) == 0, swap in the first row nr > r with
//     origin(nr,r) != 0 (both buffers); if there is none, stop;
//     b. divide row r of both buffers by origin(r,r);
//     c. for every nr > r subtract origin(nr,r) × row r from row nr.
//   - Stage 2 (backward): for r = n-1 down to 1 and every nr < r subtract
//     origin(nr,r) × result row r from result row nr. origin is unit upper
//     triangular at this point and is only read.
//
// Behavior highlights:
//   - Pivoting is limited to "first nonzero below"; no magnitude search.
//     Ill-conditioned inputs lose precision accordingly.
//   - Integral T truncates at every division; use a float type for exact
//     inverses of non-unimodular matrices.
//
// Returns:
//   - (inverse, nil) on success.
//   - (partial, ErrSingular) when step a finds no pivot: partial is result in
//     the state reached so far (the untouched identity if column 0 is all
//     zero). It is not an inverse.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the two working buffers.
func Inverse[T scalar.Number, N dim.Dim](m *Matrix[T, N, N]) (*Matrix[T, N, N], error) {
	n := dim.Size[N]()
	origin := m.Clone()
	result := Identity[T, N]()
	o, inv := origin.data, result.data

	var (
		r, nr, c    int // loop iterators
		base, nbase int // row offsets
		w           T   // pivot or elimination weight
	)
	for r = 0; r < n; r++ {
		base = r * n
		if o[base+r] == 0 {
			nr = pivotBelow(o, n, r)
			if nr < 0 {
				return result, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", r, ErrSingular))
			}
			swapRows(o, n, r, nr)
			swapRows(inv, n, r, nr)
		}

		// Normalize the pivot row.
		w = o[base+r]
		for c = 0; c < n; c++ {
			o[base+c] /= w
			inv[base+c] /= w
		}

		// Eliminate column r below the pivot.
		for nr = r + 1; nr < n; nr++ {
			nbase = nr * n
			w = o[nbase+r]
			for c = 0; c < n; c++ {
				o[nbase+c] -= w * o[base+c]
				inv[nbase+c] -= w * inv[base+c]
			}
		}
	}

	// Back substitution above the diagonal, result only.
	for r = n - 1; r >= 1; r-- {
		base = r * n
		for nr = r - 1; nr >= 0; nr-- {
			nbase = nr * n
			w = o[nbase+r]
			for c = 0; c < n; c++ {
				inv[nbase+c] -= w * inv[base+c]
			}
		}
	}

	return result, nil
}

// pivotBelow returns the first row index nr > r with data(nr,r) != 0, or -1.
func pivotBelow[T scalar.Number](data []T, n, r int) int {
	for nr := r + 1; nr < n; nr++ {
		if data[nr*n+r] != 0 {
			return nr
		}
	}

	return -1
}
