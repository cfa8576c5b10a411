package matrix_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/matrix"
)

// ExampleMul multiplies two 2×2 matrices (true matrix product).
func ExampleMul() {
	a := matrix.FromValues[float64, dim.D2, dim.D2](1, 2, 3, 4)
	b := matrix.FromValues[float64, dim.D2, dim.D2](4, 3, 2, 1)
	fmt.Print(matrix.Mul(a, b))
	// Output:
	// 8 5
	// 20 13
}

// ExampleInverse inverts a 2×2 matrix and checks the result.
func ExampleInverse() {
	a := matrix.FromValues[float64, dim.D2, dim.D2](1, 2, 3, 4)
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)
	fmt.Println(matrix.AllClose(matrix.Mul(a, inv), matrix.Identity[float64, dim.D2](), 0, 1e-12))
	// Output:
	// -2 1
	// 1.5 -0.5
	// true
}

// ExampleInverse_singular shows the degenerate-pivot fallback.
func ExampleInverse_singular() {
	m := matrix.FromValues[float64, dim.D2, dim.D2](0, 1, 0, 2)
	partial, err := matrix.Inverse(m)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	fmt.Print(partial)
	// Output:
	// true
	// 1 0
	// 0 1
}

// ExampleMatrix_Transpose transposes a 2×3 matrix into a 3×2 one.
func ExampleMatrix_Transpose() {
	m := matrix.FromValues[int, dim.D2, dim.D3](1, 2, 3, 4, 5, 6)
	fmt.Print(m.Transpose())
	// Output:
	// 1 4
	// 2 5
	// 3 6
}

// ExampleMatrix_Row mutates an element through a row view.
func ExampleMatrix_Row() {
	m := matrix.FromValues[float32, dim.D2, dim.D2](1, 2, 3, 4)
	row, _ := m.Row(1)
	fmt.Println(row[1])
	row[1] = 5
	fmt.Print(m)
	// Output:
	// 4
	// 1 2
	// 3 5
}

// ExampleMatrix_Format dumps with a custom verb.
func ExampleMatrix_Format() {
	m := matrix.Identity[float64, dim.D3]()
	_ = m.Format(os.Stdout, matrix.WithVerb("%.1f"), matrix.WithRowPrefix("| "))
	// Output:
	// | 1.0 0.0 0.0
	// | 0.0 1.0 0.0
	// | 0.0 0.0 1.0
}
