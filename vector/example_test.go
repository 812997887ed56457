package vector_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/vector"
)

// ExampleVec3_TranslationMatrix moves a point with a homogeneous 4×4 transform.
func ExampleVec3_TranslationMatrix() {
	p := vector.Vec3[float64]{X: 1, Y: 2, Z: 3}
	t := vector.Vec3[float64]{X: 10, Y: 0, Z: -1}.TranslationMatrix()

	moved := t.Mul4x1(p.Homogeneous(1))
	fmt.Println(vector.FromColumn3(moved.Submatrix3x1()))

	// Output:
	// {11, 2, 2}
}

// ExampleVec3_Rotate turns a point a quarter turn around the Z axis.
func ExampleVec3_Rotate() {
	p := vector.Vec3[float64]{X: 2}
	r := p.Rotate(vector.Vec3[float64]{Z: 1}, math.Pi/2)
	fmt.Printf("{%.3f, %.3f, %.3f}\n", r.X, r.Y, r.Z)

	// Output:
	// {0.000, 2.000, 0.000}
}
