// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for constructors and kernels.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/matrix"
	"github.com/katalvlaran/fixedla/scalar"
)

// eps is the absolute tolerance for float64 identities on small inputs.
const eps = 1e-9

// m22 builds a 2×2 float64 matrix from a row-major literal.
func m22(vals ...float64) *matrix.Matrix2d {
	return matrix.FromValues[float64, dim.D2, dim.D2](vals...)
}

// m33 builds a 3×3 float64 matrix from a row-major literal.
func m33(vals ...float64) *matrix.Matrix3d {
	return matrix.FromValues[float64, dim.D3, dim.D3](vals...)
}

// m44 builds a 4×4 float64 matrix from a row-major literal.
func m44(vals ...float64) *matrix.Matrix4d {
	return matrix.FromValues[float64, dim.D4, dim.D4](vals...)
}

// seq fills n values start, start+step, ...
func seq(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// MustAt reads (r,c) or fails the test.
func MustAt[T scalar.Number, R, C dim.Dim](t *testing.T, m *matrix.Matrix[T, R, C], r, c int) T {
	t.Helper()
	v, err := m.At(r, c)
	require.NoError(t, err, "At(%d,%d)", r, c)

	return v
}

// MustSet writes (r,c) or fails the test.
func MustSet[T scalar.Number, R, C dim.Dim](t *testing.T, m *matrix.Matrix[T, R, C], r, c int, v T) {
	t.Helper()
	require.NoError(t, m.Set(r, c, v), "Set(%d,%d)", r, c)
}
