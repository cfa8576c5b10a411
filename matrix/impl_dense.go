// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide the flat row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Provide value plumbing: Clone (copy), Swap (O(1) exchange), Assign (copy-and-swap).
//
// Complexity quicksheet:
//   - At/Set/Row: O(1); Col: O(rows); Clone/Values: O(r*c); Swap: O(1); SwapRows: O(cols).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxSwapRows = "SwapRows"
)

// denseErrorf wraps an error with a uniform Matrix context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// storage returns the backing buffer, allocating it on first use so the
// zero value behaves as a zero matrix.
func (m *Matrix[T, R, C]) storage() []T {
	if m.data == nil {
		m.data = make([]T, shapeLen[R, C]())
	}

	return m.data
}

// view returns the backing buffer for read-only use. On the zero value it
// returns a fresh zero buffer without storing it, so concurrent readers of
// one matrix never write to it.
func (m *Matrix[T, R, C]) view() []T {
	if m.data == nil {
		return make([]T, shapeLen[R, C]())
	}

	return m.data
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T, R, C]) Rows() int { return dim.Size[R]() }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T, R, C]) Cols() int { return dim.Size[C]() }

// Len returns Rows()*Cols(). Complexity: O(1).
func (m *Matrix[T, R, C]) Len() int { return m.Rows() * m.Cols() }

// indexOf computes the flat offset of (row, col) or returns ErrOutOfRange.
func (m *Matrix[T, R, C]) indexOf(method string, row, col int) (int, error) {
	cols := m.Cols()
	if err := validateIndex(row, m.Rows()); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}
	if err := validateIndex(col, cols); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}

	return row*cols + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange.
func (m *Matrix[T, R, C]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return scalar.Zero[T](), err
	}
	if m.data == nil {
		return scalar.Zero[T](), nil
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange.
func (m *Matrix[T, R, C]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.storage()[idx] = v

	return nil
}

// Row returns a mutable view of row r aliasing the matrix storage.
// The view's capacity is clipped to the row so append never clobbers the
// next row.
//
// Errors: ErrOutOfRange.
// Complexity: O(1), no allocation.
func (m *Matrix[T, R, C]) Row(r int) (Row[T], error) {
	if err := validateIndex(r, m.Rows()); err != nil {
		return nil, denseErrorf(ctxRow, r, 0, err)
	}
	cols := m.Cols()
	lo, hi := r*cols, (r+1)*cols
	data := m.storage()

	return Row[T](data[lo:hi:hi]), nil
}

// Col returns a copy of column c (top to bottom).
// Errors: ErrOutOfRange.
func (m *Matrix[T, R, C]) Col(c int) ([]T, error) {
	cols := m.Cols()
	if err := validateIndex(c, cols); err != nil {
		return nil, denseErrorf(ctxCol, 0, c, err)
	}
	rows := m.Rows()
	data := m.view()
	out := make([]T, rows)
	for r := 0; r < rows; r++ {
		out[r] = data[r*cols+c]
	}

	return out, nil
}

// Values returns a row-major copy of all elements.
func (m *Matrix[T, R, C]) Values() []T {
	out := make([]T, m.Len())
	copy(out, m.view())

	return out
}

// Clone returns a deep copy.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T, R, C]) Clone() *Matrix[T, R, C] {
	return &Matrix[T, R, C]{data: m.Values()}
}

// Swap exchanges the storage of m and other in O(1).
// Row views taken before the swap keep pointing at the old buffers.
func (m *Matrix[T, R, C]) Swap(other *Matrix[T, R, C]) {
	m.data, other.data = other.data, m.data
}

// Assign makes m an independent copy of src (copy-and-swap) and returns m.
// src is cloned first, so m is untouched if anything goes wrong and
// self-assignment is harmless.
func (m *Matrix[T, R, C]) Assign(src *Matrix[T, R, C]) *Matrix[T, R, C] {
	tmp := src.Clone()
	m.Swap(tmp)

	return m
}

// SwapRows exchanges rows a and b in place.
// Errors: ErrOutOfRange.
// Complexity: O(cols).
func (m *Matrix[T, R, C]) SwapRows(a, b int) error {
	rows := m.Rows()
	if err := validateIndex(a, rows); err != nil {
		return denseErrorf(ctxSwapRows, a, b, err)
	}
	if err := validateIndex(b, rows); err != nil {
		return denseErrorf(ctxSwapRows, a, b, err)
	}
	swapRows(m.storage(), m.Cols(), a, b)

	return nil
}

// swapRows exchanges rows a and b of a flat buffer with the given stride.
// Indices are trusted.
func swapRows[T any](data []T, cols, a, b int) {
	if a == b {
		return
	}
	ra, rb := data[a*cols:(a+1)*cols], data[b*cols:(b+1)*cols]
	for c := 0; c < cols; c++ {
		ra[c], rb[c] = rb[c], ra[c]
	}
}

// ---------- Row view ----------

// Len returns the number of columns in the view.
func (r Row[T]) Len() int { return len(r) }

// At returns column c of the row.
// Errors: ErrOutOfRange.
func (r Row[T]) At(c int) (T, error) {
	if err := validateIndex(c, len(r)); err != nil {
		var zero T
		return zero, fmt.Errorf("Row.At(%d): %w", c, err)
	}

	return r[c], nil
}

// Set writes v into column c of the row, mutating the owning matrix.
// Errors: ErrOutOfRange.
func (r Row[T]) Set(c int, v T) error {
	if err := validateIndex(c, len(r)); err != nil {
		return fmt.Errorf("Row.Set(%d): %w", c, err)
	}
	r[c] = v

	return nil
}
