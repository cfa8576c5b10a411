// SPDX-License-Identifier: MIT

// Package dim provides type-level dimension markers.
//
// Go generics have no constant parameters, so fixedla encodes a dimension as
// a type: an empty struct whose Size method reports the extent. Containers
// take markers as type parameters (Matrix[T, D3, D4], Vector[T, D3]) which
// turns every shape agreement rule into a compile-time check:
//
//   - Add/Sub/MulElem/DivElem only accept operands of the identical type.
//   - Mul[T, R, K, C] forces the inner dimensions to be the same marker.
//   - Identity and Inverse take Matrix[T, N, N]; non-square does not compile.
//   - Cross takes Vector[T, D3] only.
//
// D1..D8 cover the common small sizes. Callers needing other extents declare
// their own marker:
//
//	type D12 struct{}
//
//	func (D12) Size() int { return 12 }
package dim
