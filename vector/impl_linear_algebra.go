// SPDX-License-Identifier: MIT
// Package vector: inner product, cross product, norm and resize.
//
// Determinism:
//   - Dot and Norm accumulate index-ascending from zero.
//   - Norm takes the square root in float64; integral T truncates.

package vector

import (
	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
	"github.com/katalvlaran/fixedla/scalar"
)

// Dot returns Σ v[i]*rhs[i], accumulated in ascending i.
// Complexity: O(n).
func (v *Vector[T, N]) Dot(rhs *Vector[T, N]) T {
	return kernel.Dot(v.view(), rhs.view())
}

// Norm returns the Euclidean norm sqrt(Σ v[i]²).
// The sum of squares is formed in T (integral T may overflow), then the
// root is taken in float64 and converted back, truncating for integral T.
func (v *Vector[T, N]) Norm() T {
	d := v.view()

	return scalar.Sqrt(kernel.Dot(d, d))
}

// Normalized returns v / Norm(v).
//
// Errors:
//   - ErrZeroNorm when Norm(v) == 0 (the zero vector, or an integral vector
//     whose norm truncates to zero).
//
// Notes:
//   - For integral T the quotient truncates elementwise; unit vectors only
//     make sense for float T.
func (v *Vector[T, N]) Normalized() (*Vector[T, N], error) {
	n := v.Norm()
	if n == 0 {
		return nil, vectorErrorf(opNormalized, ErrZeroNorm)
	}

	return v.DivScalar(n)
}

// Cross returns the 3-D cross product a × b:
//
//	(a1·b2 − a2·b1, a2·b0 − a0·b2, a0·b1 − a1·b0)
//
// Only 3-vectors are accepted; other lengths do not compile.
func Cross[T scalar.Number](a, b *Vector[T, dim.D3]) *Vector[T, dim.D3] {
	x, y := a.view(), b.view()

	return FromValues[T, dim.D3](
		x[1]*y[2]-x[2]*y[1],
		x[2]*y[0]-x[0]*y[2],
		x[0]*y[1]-x[1]*y[0],
	)
}

// Head returns an NN-vector holding the first min(N, NN) elements of v.
// When NN > N the tail is zero. NN is named explicitly, the rest is inferred:
//
//	xy := vector.Head[dim.D2](v3)
func Head[NN dim.Dim, T scalar.Number, N dim.Dim](v *Vector[T, N]) *Vector[T, NN] {
	return FromValues[T, NN](v.view()...)
}
