// Package matrix provides a fixed-shape dense matrix over any arithmetic
// scalar type.
//
// The shape lives in the type: Matrix[T, R, C] has R.Size() rows and
// C.Size() columns, stored row-major in one flat buffer (offset r*C + c).
// Because R and C are type parameters, operand agreement is checked by the
// compiler rather than at run time:
//
//   - Add, Sub, MulElem and DivElem take a second operand of the identical type.
//   - Mul[T, R, K, C] multiplies R×K by K×C; a mismatched K does not compile.
//   - Identity and Inverse take Matrix[T, N, N] only.
//
// Multiplication naming is deliberate: MulElem and DivElem are elementwise
// (Hadamard) operations, Mul is the matrix product. There is no
// matrix-by-matrix division.
//
// Inversion uses Gauss-Jordan elimination with the "first nonzero below"
// pivot rule. On a degenerate pivot it returns the partially reduced result
// together with ErrSingular, so callers can both detect the failure and
// inspect the state reached. Verify doubtful inverses with AllClose against
// Identity.
//
// The zero value of Matrix is a usable zero matrix. Values are handles:
// use Clone or Assign for independent copies; every arithmetic operation
// returns a freshly allocated result and never mutates its operands.
// Read-only methods never write to the receiver, so a single matrix may be
// read from many goroutines at once.
//
// Predefined aliases (Matrix2d, Matrix3f, Matrix4i, ...) bind common scalar
// types to 2×2, 3×3 and 4×4 shapes.
package matrix
