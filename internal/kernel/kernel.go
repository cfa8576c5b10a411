// SPDX-License-Identifier: MIT

// Package kernel holds the flat-slice loops shared by matrix and vector.
//
// Contract:
//   - dst, a and b have identical lengths; callers guarantee it through the
//     dimension markers, so kernels never re-check.
//   - dst may alias a or b; every loop reads index i before writing index i.
//   - Loops run index-ascending 0..n-1; accumulation order is part of the
//     numeric contract (floating-point sums depend on it).
//
// Fast paths:
//   - Hadamard on []float64 dispatches to algo-vecmath MulBlock, which picks
//     a SIMD implementation for the running CPU. Elementwise products are
//     order-independent, so the result is bit-identical to the generic loop.
package kernel

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/fixedla/scalar"
)

// BinaryOp combines two scalars into one.
type BinaryOp[T scalar.Number] func(x, y T) T

// Apply writes op(a[i], b[i]) into dst[i].
// Complexity: O(n).
func Apply[T scalar.Number](dst, a, b []T, op BinaryOp[T]) {
	for i := range dst {
		dst[i] = op(a[i], b[i])
	}
}

// Negate writes -src[i] into dst[i]. Unsigned T wraps modulo 2^bits.
func Negate[T scalar.Number](dst, src []T) {
	for i := range dst {
		dst[i] = -src[i]
	}
}

// Add writes a[i] + b[i] into dst[i].
func Add[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub writes a[i] - b[i] into dst[i].
func Sub[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Hadamard writes a[i] * b[i] into dst[i].
// []float64 operands take the algo-vecmath path.
func Hadamard[T scalar.Number](dst, a, b []T) {
	if df, ok := any(dst).([]float64); ok {
		vecmath.MulBlock(df, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div writes a[i] / b[i] into dst[i].
// Integral callers must reject zero divisors first (see FirstZero).
func Div[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// Scale writes s * src[i] into dst[i].
func Scale[T scalar.Number](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] * s
	}
}

// DivScalar writes src[i] / s into dst[i].
func DivScalar[T scalar.Number](dst, src []T, s T) {
	for i := range dst {
		dst[i] = src[i] / s
	}
}

// Dot returns sum(a[i] * b[i]) accumulated index-ascending from zero.
func Dot[T scalar.Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// FirstZero returns the index of the first zero element, or -1.
func FirstZero[T scalar.Number](s []T) int {
	for i, v := range s {
		if v == 0 {
			return i
		}
	}

	return -1
}

// Equal reports exact elementwise equality (NaN never equals NaN).
func Equal[T scalar.Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether |a[i]-b[i]| <= atol + rtol*|b[i]| for every i.
// Tolerances are taken by absolute value. Comparisons run in float64.
func AllClose[T scalar.Number](a, b []T, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	rtol, atol = scalar.Abs(rtol), scalar.Abs(atol)
	var x, y float64
	for i := range a {
		x, y = float64(a[i]), float64(b[i])
		if x == y { // covers equal infinities
			continue
		}
		if !(scalar.Abs(x-y) <= atol+rtol*scalar.Abs(y)) { // NaN fails here
			return false
		}
	}

	return true
}
