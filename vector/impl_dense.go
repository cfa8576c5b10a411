// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/scalar"
)

// storage returns the backing buffer, allocating it for the zero value.
func (v *Vector[T, N]) storage() []T {
	if v.data == nil {
		v.data = make([]T, length[N]())
	}

	return v.data
}

// view returns the backing buffer for read-only use without allocating
// into the receiver.
func (v *Vector[T, N]) view() []T {
	if v.data == nil {
		return make([]T, length[N]())
	}

	return v.data
}

// Len returns N.Size().
func (v *Vector[T, N]) Len() int { return dim.Size[N]() }

// At returns element i.
// Errors: ErrOutOfRange.
func (v *Vector[T, N]) At(i int) (T, error) {
	if err := validateIndex(i, v.Len()); err != nil {
		return scalar.Zero[T](), fmt.Errorf("Vector.At(%d): %w", i, err)
	}
	if v.data == nil {
		return scalar.Zero[T](), nil
	}

	return v.data[i], nil
}

// Set assigns x to element i.
// Errors: ErrOutOfRange.
func (v *Vector[T, N]) Set(i int, x T) error {
	if err := validateIndex(i, v.Len()); err != nil {
		return fmt.Errorf("Vector.Set(%d): %w", i, err)
	}
	v.storage()[i] = x

	return nil
}

// Values returns a copy of the elements.
func (v *Vector[T, N]) Values() []T {
	out := make([]T, v.Len())
	copy(out, v.view())

	return out
}

// Clone returns a deep copy.
func (v *Vector[T, N]) Clone() *Vector[T, N] {
	return &Vector[T, N]{data: v.Values()}
}

// Swap exchanges the storage of v and other in O(1).
func (v *Vector[T, N]) Swap(other *Vector[T, N]) {
	v.data, other.data = other.data, v.data
}

// Assign makes v an independent copy of src (copy-and-swap) and returns v.
func (v *Vector[T, N]) Assign(src *Vector[T, N]) *Vector[T, N] {
	tmp := src.Clone()
	v.Swap(tmp)

	return v
}
