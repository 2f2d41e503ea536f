// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleMul multiplies two small matrices written row by row.
func ExampleMul() {
	a := matrix.FromRows(
		[]float64{1, 2},
		[]float64{3, 4},
	)
	b := matrix.FromRows(
		[]float64{0, 1},
		[]float64{1, 0},
	)
	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(p)

	// Output:
	// [2, 1]
	// [4, 3]
}

// ExampleNew shows the column-major data layout.
func ExampleNew() {
	m := matrix.New(2, 3, []float32{1, 2, 3, 4, 5, 6})
	fmt.Println(m.Column(1))
	fmt.Print(m)

	// Output:
	// [3 4]
	// [1, 3, 5]
	// [2, 4, 6]
}

// ExampleVCat stacks a row under a square block.
func ExampleVCat() {
	top := matrix.Identity[float64](2)
	bottom := matrix.FromRows([]float64{5, 6})
	m, _ := matrix.VCat(top, bottom)
	fmt.Print(m)

	_, err := matrix.VCat(top, matrix.Zeros[float64](1, 3))
	fmt.Println(err)

	// Output:
	// [1, 0]
	// [0, 1]
	// [5, 6]
	// VCat: matrix: shape mismatch
}
