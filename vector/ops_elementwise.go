// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/fixedla/internal/kernel"

const (
	opDivElem    = "DivElem"
	opDivScalar  = "DivScalar"
	opNormalized = "Normalized"
)

// Neg returns -v. Unsigned T wraps modulo 2^bits.
func (v *Vector[T, N]) Neg() *Vector[T, N] {
	out := New[T, N]()
	kernel.Negate(out.data, v.view())

	return out
}

// Apply returns out[i] = op(v[i], rhs[i]).
func (v *Vector[T, N]) Apply(rhs *Vector[T, N], op BinaryOp[T]) *Vector[T, N] {
	out := New[T, N]()
	kernel.Apply(out.data, v.view(), rhs.view(), kernel.BinaryOp[T](op))

	return out
}

// Add returns v + rhs.
func (v *Vector[T, N]) Add(rhs *Vector[T, N]) *Vector[T, N] {
	out := New[T, N]()
	kernel.Add(out.data, v.view(), rhs.view())

	return out
}

// Sub returns v - rhs.
func (v *Vector[T, N]) Sub(rhs *Vector[T, N]) *Vector[T, N] {
	out := New[T, N]()
	kernel.Sub(out.data, v.view(), rhs.view())

	return out
}

// MulElem returns the elementwise product. For the inner product use Dot.
func (v *Vector[T, N]) MulElem(rhs *Vector[T, N]) *Vector[T, N] {
	out := New[T, N]()
	kernel.Hadamard(out.data, v.view(), rhs.view())

	return out
}

// DivElem returns v / rhs elementwise.
// Errors: ErrDivisionByZero for integral T with a zero in rhs.
func (v *Vector[T, N]) DivElem(rhs *Vector[T, N]) (*Vector[T, N], error) {
	b := rhs.view()
	if err := validateDivisor(b); err != nil {
		return nil, vectorErrorf(opDivElem, err)
	}
	out := New[T, N]()
	kernel.Div(out.data, v.view(), b)

	return out, nil
}

// Scale returns s*v.
func (v *Vector[T, N]) Scale(s T) *Vector[T, N] {
	out := New[T, N]()
	kernel.Scale(out.data, v.view(), s)

	return out
}

// DivScalar returns v / s, broadcasting s over every element.
// Errors: ErrDivisionByZero for integral T and s == 0.
func (v *Vector[T, N]) DivScalar(s T) (*Vector[T, N], error) {
	if err := validateDivisor([]T{s}); err != nil {
		return nil, vectorErrorf(opDivScalar, err)
	}
	out := New[T, N]()
	kernel.DivScalar(out.data, v.view(), s)

	return out, nil
}
