// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/fixedla/dim"

// Common shapes. Aliases are pure shorthand: Matrix3d and
// Matrix[float64, dim.D3, dim.D3] are the same type.
type (
	Matrix2i = Matrix[int, dim.D2, dim.D2]
	Matrix3i = Matrix[int, dim.D3, dim.D3]
	Matrix4i = Matrix[int, dim.D4, dim.D4]

	Matrix2i32 = Matrix[int32, dim.D2, dim.D2]
	Matrix3i32 = Matrix[int32, dim.D3, dim.D3]
	Matrix4i32 = Matrix[int32, dim.D4, dim.D4]

	Matrix2i64 = Matrix[int64, dim.D2, dim.D2]
	Matrix3i64 = Matrix[int64, dim.D3, dim.D3]
	Matrix4i64 = Matrix[int64, dim.D4, dim.D4]

	Matrix2u = Matrix[uint, dim.D2, dim.D2]
	Matrix3u = Matrix[uint, dim.D3, dim.D3]
	Matrix4u = Matrix[uint, dim.D4, dim.D4]

	Matrix2u32 = Matrix[uint32, dim.D2, dim.D2]
	Matrix3u32 = Matrix[uint32, dim.D3, dim.D3]
	Matrix4u32 = Matrix[uint32, dim.D4, dim.D4]

	Matrix2u64 = Matrix[uint64, dim.D2, dim.D2]
	Matrix3u64 = Matrix[uint64, dim.D3, dim.D3]
	Matrix4u64 = Matrix[uint64, dim.D4, dim.D4]

	Matrix2f = Matrix[float32, dim.D2, dim.D2]
	Matrix3f = Matrix[float32, dim.D3, dim.D3]
	Matrix4f = Matrix[float32, dim.D4, dim.D4]

	Matrix2d = Matrix[float64, dim.D2, dim.D2]
	Matrix3d = Matrix[float64, dim.D3, dim.D3]
	Matrix4d = Matrix[float64, dim.D4, dim.D4]
)
