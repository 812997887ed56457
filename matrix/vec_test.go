// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/fixmat/matrix"
)

func TestColumn_Magnitude(t *testing.T) {
	v := matrix.New3x1([3]float64{3, 4, 0})

	assert.Equal(t, 25.0, v.MagnitudeSqr())
	assert.Equal(t, 5.0, v.Magnitude())
	assert.InDelta(t, 1.0, v.Normalized().Magnitude(), tol)
	assert.Equal(t, [3]float64{0.6, 0.8, 0}, v.Normalized().Data)

	w := v
	w.SetMagnitude(10)
	assert.Equal(t, [3]float64{6, 8, 0}, w.Data)

	w = v
	w.ClampMagnitude(2.5)
	assert.Equal(t, [3]float64{1.5, 2, 0}, w.Data)

	w = v
	w.ClampMagnitude(100)
	assert.Equal(t, v.Data, w.Data, "shorter vectors are not stretched")

	assert.Equal(t, 5.0, matrix.New2x1([2]int{3, 4}).Magnitude())

	// Integer vectors scale by the real factor and truncate afterwards.
	iv := matrix.New2x1([2]int{3, 4})
	iv.SetMagnitude(7.5)
	assert.Equal(t, [2]int{4, 6}, iv.Data)

	iv = matrix.New2x1([2]int{6, 8})
	iv.ClampMagnitude(5)
	assert.Equal(t, [2]int{3, 4}, iv.Data)
}

func TestColumn_Max(t *testing.T) {
	v := matrix.New3x1([3]float64{3, 4, -9})
	assert.Equal(t, 4.0, v.Max())

	v.SetMax(8)
	assert.Equal(t, [3]float64{6, 8, -18}, v.Data)
}

func TestColumn_Predicates(t *testing.T) {
	assert.True(t, matrix.Zero4x1[float32]().IsZero())
	assert.False(t, matrix.New2x1([2]int{0, 1}).IsZero())

	a := matrix.New3x1([3]int{1, 2, 3})
	assert.True(t, a.Equal(matrix.New3x1([3]int{1, 2, 3})))
	assert.False(t, a.Equal(a.Neg()))
}

func TestColumn_Dot(t *testing.T) {
	a := matrix.New3x1([3]int{1, 2, 3})
	b := matrix.New3x1([3]int{4, -5, 6})
	assert.Equal(t, 12, a.Dot(b))
	assert.Equal(t, a.Transposed().Mul3x1(b).Data[0], a.Dot(b))
}

func TestColumn_Lerp(t *testing.T) {
	from := matrix.New3x1([3]float64{3, 4, 0})
	to := matrix.New3x1([3]float64{5, 8, 2})

	assert.Equal(t, [3]float64{4, 6, 1}, from.Lerp(to, 0.5).Data)
	assert.Equal(t, from.Data, from.Lerp(to, 0).Data)
	assert.Equal(t, to.Data, from.Lerp(to, 1).Data)
}

func TestColumn_Angles(t *testing.T) {
	x := matrix.New3x1([3]float64{1, 0, 0})
	y := matrix.New3x1([3]float64{0, 2, 0})

	assert.InDelta(t, math.Pi/2, x.AngleBetween(y), tol)
	assert.InDelta(t, 0, x.AngleBetween(x.Scale(3)), tol)
	assert.InDelta(t, math.Pi, x.AngleBetween(x.Neg()), tol)
	assert.InDelta(t, 1, x.AngleBetweenCos(x), tol)
	assert.Equal(t, 0.0, x.AngleBetweenCos(matrix.Zero3x1[float64]()), "zero vector yields 0")
}

func TestColumn_Projection(t *testing.T) {
	v := matrix.New3x1([3]float64{3, 4, 0})

	assert.Equal(t, 3.0, v.ProjectionLength(matrix.New3x1([3]float64{2, 0, 0})))
	assert.Equal(t, [3]float64{3, 0, 0}, v.Projection(matrix.New3x1([3]float64{2, 0, 0})).Data)

	p := matrix.New3x1([3]float64{1, 2, 3})
	assert.Equal(t, [3]float64{1, 2, 0}, p.ProjectionOnPlane(matrix.New3x1([3]float64{0, 0, 2})).Data)
}

func TestColumn_Extend(t *testing.T) {
	v := matrix.New3x1([3]float64{3, 4, 0})
	assert.Equal(t, [4]float64{3, 4, 0, 1}, v.Extend(1).Data)
	assert.Equal(t, [5]int{7, 0, 0, 0, 0}, matrix.New1x1([1]int{7}).Extend(0).Extend(0).Extend(0).Extend(0).Data)
}
