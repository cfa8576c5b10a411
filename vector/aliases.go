// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/fixedla/dim"

// Common lengths. Aliases are pure shorthand: Vector3d and
// Vector[float64, dim.D3] are the same type.
type (
	Vector2i = Vector[int, dim.D2]
	Vector3i = Vector[int, dim.D3]
	Vector4i = Vector[int, dim.D4]

	Vector2i32 = Vector[int32, dim.D2]
	Vector3i32 = Vector[int32, dim.D3]
	Vector4i32 = Vector[int32, dim.D4]

	Vector2i64 = Vector[int64, dim.D2]
	Vector3i64 = Vector[int64, dim.D3]
	Vector4i64 = Vector[int64, dim.D4]

	Vector2u = Vector[uint, dim.D2]
	Vector3u = Vector[uint, dim.D3]
	Vector4u = Vector[uint, dim.D4]

	Vector2u32 = Vector[uint32, dim.D2]
	Vector3u32 = Vector[uint32, dim.D3]
	Vector4u32 = Vector[uint32, dim.D4]

	Vector2u64 = Vector[uint64, dim.D2]
	Vector3u64 = Vector[uint64, dim.D3]
	Vector4u64 = Vector[uint64, dim.D4]

	Vector2f = Vector[float32, dim.D2]
	Vector3f = Vector[float32, dim.D3]
	Vector4f = Vector[float32, dim.D4]

	Vector2d = Vector[float64, dim.D2]
	Vector3d = Vector[float64, dim.D3]
	Vector4d = Vector[float64, dim.D4]
)
