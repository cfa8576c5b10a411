// Package vector provides a fixed-length dense vector over any arithmetic
// scalar type.
//
// Vector[T, N] holds N.Size() elements of T. Length agreement between
// operands is a compile-time property of N; Cross accepts 3-vectors only and
// Head resizes by naming the target length marker:
//
//	v := vector.FromValues[float64, dim.D4](1, 2, 3, 4)
//	xyz := vector.Head[dim.D3](v) // [1 2 3]
//
// MulElem and DivElem are elementwise; Dot is the inner product. Scalar
// broadcast is explicit (Scale, DivScalar); Normalized divides by Norm
// through DivScalar and reports ErrZeroNorm for the zero vector.
//
// The zero value is a usable zero vector. Operations return fresh vectors
// and never mutate their operands.
package vector
