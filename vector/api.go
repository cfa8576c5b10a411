// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/internal/kernel"
	"github.com/katalvlaran/fixedla/scalar"
)

// New returns an N-vector with every element at T's zero value.
// Panics with ErrBadShape if N reports a non-positive size.
func New[T scalar.Number, N dim.Dim]() *Vector[T, N] {
	return &Vector[T, N]{data: make([]T, length[N]())}
}

// Zeros returns the zero N-vector; an intention-revealing alias of New.
func Zeros[T scalar.Number, N dim.Dim]() *Vector[T, N] {
	return New[T, N]()
}

// FromValues copies the first min(len(vals), N) values; missing ones stay zero.
func FromValues[T scalar.Number, N dim.Dim](vals ...T) *Vector[T, N] {
	v := New[T, N]()
	copy(v.data, vals)

	return v
}

// Equal reports exact elementwise equality (NaN never equal).
func Equal[T scalar.Number, N dim.Dim](a, b *Vector[T, N]) bool {
	return kernel.Equal(a.view(), b.view())
}

// AllClose reports whether |a-b| <= atol + rtol*|b| elementwise.
func AllClose[T scalar.Number, N dim.Dim](a, b *Vector[T, N], rtol, atol float64) bool {
	return kernel.AllClose(a.view(), b.view(), rtol, atol)
}
