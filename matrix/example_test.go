// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fixmat/matrix"
)

// ExampleMat3x2_Mul2x5 multiplies matrices whose shapes are checked by the compiler.
func ExampleMat3x2_Mul2x5() {
	a := matrix.New3x2([6]int{
		1, 2,
		3, 4,
		5, 6,
	})
	b := matrix.New2x5([10]int{
		10, 11, 12, 13, 14,
		15, 16, 17, 18, 19,
	})
	fmt.Print(a.Mul2x5(b))

	// Output:
	// | 40  43  46  49  52|
	// | 90  97 104 111 118|
	// |140 151 162 173 184|
}

// ExampleMat3x3_Inverse inverts a 3×3 matrix and prints it with two decimals.
func ExampleMat3x3_Inverse() {
	m := matrix.New3x3([9]float64{
		7, 2, 1,
		0, 4, -1,
		-3, 4, -2,
	})
	fmt.Print(m.Inverse().Text(matrix.WithVerb('f'), matrix.WithPrecision(2)))

	// Output:
	// | 0.40 -0.80  0.60|
	// |-0.30  1.10 -0.70|
	// |-1.20  3.40 -2.80|
}

// ExampleMat3x4_Gauss row-reduces an augmented system in place.
func ExampleMat3x4_Gauss() {
	m := matrix.New3x4([12]float64{
		1, 3, 1, 9,
		1, 1, -1, 1,
		3, 11, 5, 35,
	})
	m.Gauss()
	fmt.Print(m)

	// Output:
	// | 1  0 -2 -3|
	// | 0  1  1  4|
	// | 0  0  0  0|
}

// ExampleMat2x2_CheckedInverse detects a singular matrix.
func ExampleMat2x2_CheckedInverse() {
	m := matrix.New2x2([4]float64{1, 2, 2, 4})
	_, err := m.CheckedInverse()
	fmt.Println(errors.Is(err, matrix.ErrSingular), err)

	// Output:
	// true Inverse: matrix: singular matrix
}
