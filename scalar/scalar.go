// SPDX-License-Identifier: MIT

// Package scalar defines the element types accepted by fixedla containers
// and the few per-scalar helpers the kernels need.
//
// Numeric policy:
//   - Integral arithmetic wraps and truncates exactly as Go does.
//   - Float arithmetic follows IEEE-754; NaN and ±Inf propagate untouched.
//   - Square roots are taken in float64 and converted back to T.
package scalar

import "math"

// Signed covers the signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers the unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer covers every integer kind.
type Integer interface {
	Signed | Unsigned
}

// Float covers the floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the element constraint of Matrix and Vector.
type Number interface {
	Integer | Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// IsIntegral reports whether T truncates on division (1/2 == 0).
// Complexity: O(1).
func IsIntegral[T Number]() bool {
	var one, two T = 1, 2

	return one/two == 0
}

// Abs returns |x|. For unsigned T it is the identity.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sqrt returns the square root of x converted back to T.
// For integral T the result truncates toward zero; negative input yields
// NaN for floats and the conversion of NaN (implementation-defined) for ints,
// so callers only pass sums of squares.
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}
