package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/vector"
)

func requireVec2(t *testing.T, want, got vector.Vec2[float64]) {
	t.Helper()
	require.InDelta(t, want.X, got.X, tol, "X")
	require.InDelta(t, want.Y, got.Y, tol, "Y")
}

func TestVec2_Basics(t *testing.T) {
	a := vector.Vec2[int]{3, 4}
	b := vector.Vec2[int]{-1, 2}

	assert.Equal(t, vector.Vec2[int]{7, 7}, vector.Splat2(7))
	assert.Equal(t, a, vector.FromArray2([2]int{3, 4}))
	assert.Equal(t, a, vector.FromColumn2(matrix.New2x1([2]int{3, 4})))
	assert.Equal(t, 4, a.At(1))
	assert.Panics(t, func() { _ = a.At(2) })

	assert.Equal(t, vector.Vec2[int]{2, 6}, a.Add(b))
	assert.Equal(t, vector.Vec2[int]{4, 2}, a.Sub(b))
	assert.Equal(t, vector.Vec2[int]{6, 8}, a.Scale(2))
	assert.Equal(t, vector.Vec2[int]{1, 1}, a.Div(3), "integer division truncates")
	assert.Equal(t, vector.Vec2[int]{-3, -4}, a.Neg())
	assert.Equal(t, 5, a.Dot(b))

	c := a
	c.AddInPlace(b)
	c.SubInPlace(b)
	c.ScaleInPlace(3)
	c.DivInPlace(3)
	assert.Equal(t, a, c)

	assert.Equal(t, 5.0, a.Magnitude())
	assert.Equal(t, 25, a.MagnitudeSqr())
	assert.Equal(t, 5.0, a.Distance(vector.Vec2[int]{}))
	assert.True(t, vector.Vec2[int]{}.IsZero())
}

func TestVec2_Scaling(t *testing.T) {
	v := vector.Vec2[float64]{3, -4}

	requireVec2(t, vector.Vec2[float64]{0.6, -0.8}, v.Normalized())
	assert.Equal(t, 4.0, v.Max())
	assert.Equal(t, vector.Vec2[float64]{1.5, -2}, v.WithMax(2))

	w := v
	w.SetMagnitude(10)
	requireVec2(t, vector.Vec2[float64]{6, -8}, w)

	w = v
	w.ClampMagnitude(1)
	requireVec2(t, vector.Vec2[float64]{0.6, -0.8}, w)

	w = v
	w.SetMax(8)
	assert.Equal(t, vector.Vec2[float64]{6, -8}, w)

	w = v
	w.Normalize()
	assert.InDelta(t, 1, w.Magnitude(), tol)
}

func TestVec2_Geometry(t *testing.T) {
	x := vector.Vec2[float64]{1, 0}
	y := vector.Vec2[float64]{0, 1}

	requireVec2(t, y, x.Rotate(math.Pi/2))
	requireVec2(t, x.Neg(), x.Rotate(math.Pi))
	assert.InDelta(t, math.Pi/2, x.AngleBetween(y), tol)
	assert.Equal(t, 0.0, x.AngleBetweenCos(vector.Vec2[float64]{}))

	v := vector.Vec2[float64]{3, 4}
	assert.Equal(t, 3.0, v.ProjectionLength(vector.Vec2[float64]{5, 0}))
	assert.Equal(t, vector.Vec2[float64]{3, 0}, v.Projection(vector.Vec2[float64]{5, 0}))
	assert.Equal(t, vector.Vec2[float64]{1.5, 2}, vector.Vec2[float64]{}.Lerp(v, 0.5))
}

func TestVec2_Matrices(t *testing.T) {
	v := vector.Vec2[int]{2, 3}

	assert.Equal(t, [2]int{2, 3}, v.Column().Data)
	assert.Equal(t, [3]int{2, 3, 1}, v.Homogeneous(1).Data)
	assert.Equal(t, [3]int{12, 23, 1}, v.TranslationMatrix().Mul3x1(vector.Vec2[int]{10, 20}.Homogeneous(1)).Data)
	assert.Equal(t, [3]int{20, 60, 1}, v.ScaleMatrix().Mul3x1(vector.Vec2[int]{10, 20}.Homogeneous(1)).Data)
	assert.Equal(t, "{2, 3}", v.String())
}
