// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise (position-by-position) arithmetic between equally-shaped
//     matrices, plus negation and scalar scaling.
//   - MulElem/DivElem are Hadamard operations, NOT the matrix product; see Mul.
//
// Determinism & Performance:
//   - One flat loop 0..n-1 per operation through internal/kernel.
//   - Exactly one allocation (the result); operands are never mutated.
//   - float64 MulElem uses the algo-vecmath MulBlock kernel.

package matrix

import "github.com/katalvlaran/fixedla/internal/kernel"

// Neg returns -m elementwise. Unsigned T wraps modulo 2^bits.
func (m *Matrix[T, R, C]) Neg() *Matrix[T, R, C] {
	out := New[T, R, C]()
	kernel.Negate(out.data, m.view())

	return out
}

// Apply returns out[i] = op(m[i], rhs[i]) for every position.
// Complexity: O(r*c).
func (m *Matrix[T, R, C]) Apply(rhs *Matrix[T, R, C], op BinaryOp[T]) *Matrix[T, R, C] {
	out := New[T, R, C]()
	kernel.Apply(out.data, m.view(), rhs.view(), kernel.BinaryOp[T](op))

	return out
}

// Add returns m + rhs elementwise.
func (m *Matrix[T, R, C]) Add(rhs *Matrix[T, R, C]) *Matrix[T, R, C] {
	out := New[T, R, C]()
	kernel.Add(out.data, m.view(), rhs.view())

	return out
}

// Sub returns m - rhs elementwise.
func (m *Matrix[T, R, C]) Sub(rhs *Matrix[T, R, C]) *Matrix[T, R, C] {
	out := New[T, R, C]()
	kernel.Sub(out.data, m.view(), rhs.view())

	return out
}

// MulElem returns the Hadamard product m ⊙ rhs. For the matrix product use Mul.
func (m *Matrix[T, R, C]) MulElem(rhs *Matrix[T, R, C]) *Matrix[T, R, C] {
	out := New[T, R, C]()
	kernel.Hadamard(out.data, m.view(), rhs.view())

	return out
}

// DivElem returns m / rhs elementwise.
//
// Errors:
//   - ErrDivisionByZero when T is integral and rhs holds a zero. Float T
//     never fails; x/0 yields ±Inf or NaN per IEEE-754.
func (m *Matrix[T, R, C]) DivElem(rhs *Matrix[T, R, C]) (*Matrix[T, R, C], error) {
	b := rhs.view()
	if err := validateDivisor(b); err != nil {
		return nil, matrixErrorf(opDivElem, err)
	}
	out := New[T, R, C]()
	kernel.Div(out.data, m.view(), b)

	return out, nil
}

// Scale returns s*m.
func (m *Matrix[T, R, C]) Scale(s T) *Matrix[T, R, C] {
	out := New[T, R, C]()
	kernel.Scale(out.data, m.view(), s)

	return out
}
