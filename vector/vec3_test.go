package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/vector"
)

const tol = 1e-9

func requireVec3(t *testing.T, want, got vector.Vec3[float64]) {
	t.Helper()
	require.InDelta(t, want.X, got.X, tol, "X")
	require.InDelta(t, want.Y, got.Y, tol, "Y")
	require.InDelta(t, want.Z, got.Z, tol, "Z")
}

func TestVec3_Constructors(t *testing.T) {
	assert.Equal(t, vector.Vec3[int]{4, 4, 4}, vector.Splat3(4))
	assert.Equal(t, vector.Vec3[int]{1, 2, 3}, vector.FromArray3([3]int{1, 2, 3}))
	assert.Equal(t, vector.Vec3[int]{1, 2, 3}, vector.FromColumn3(matrix.New3x1([3]int{1, 2, 3})))

	v := vector.Vec3[int]{7, 8, 9}
	assert.Equal(t, 8, v.At(1))
	assert.Panics(t, func() { _ = v.At(3) })
	assert.Equal(t, [3]int{7, 8, 9}, v.Array())
}

func TestVec3_Arithmetic(t *testing.T) {
	a := vector.Vec3[int]{1, 2, 3}
	b := vector.Vec3[int]{4, -5, 6}

	assert.Equal(t, vector.Vec3[int]{5, -3, 9}, a.Add(b))
	assert.Equal(t, vector.Vec3[int]{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, vector.Vec3[int]{2, 4, 6}, a.Scale(2))
	assert.Equal(t, vector.Vec3[int]{2, -2, 3}, b.Div(2))
	assert.Equal(t, vector.Vec3[int]{-1, -2, -3}, a.Neg())

	c := a
	c.AddInPlace(b)
	c.SubInPlace(b)
	c.ScaleInPlace(10)
	c.DivInPlace(5)
	assert.Equal(t, vector.Vec3[int]{2, 4, 6}, c)

	assert.True(t, vector.Vec3[float32]{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestVec3_Magnitude(t *testing.T) {
	v := vector.Vec3[float64]{2, 3, 6}
	assert.InDelta(t, 7.0, v.Magnitude(), tol)
	assert.Equal(t, 49.0, v.MagnitudeSqr())
	assert.InDelta(t, 1.0, v.Normalized().Magnitude(), tol)

	// No intermediate overflow.
	big := vector.Vec3[float64]{1e200, 1e200, 0}
	assert.InDelta(t, math.Sqrt2*1e200, big.Magnitude(), 1e186)

	w := v
	w.SetMagnitude(14)
	requireVec3(t, vector.Vec3[float64]{4, 6, 12}, w)

	w = v
	w.ClampMagnitude(3.5)
	requireVec3(t, vector.Vec3[float64]{1, 1.5, 3}, w)

	w = v
	w.ClampMagnitude(10)
	assert.Equal(t, v, w)

	w.Normalize()
	requireVec3(t, vector.Vec3[float64]{2.0 / 7, 3.0 / 7, 6.0 / 7}, w)
}

func TestVec3_Max(t *testing.T) {
	v := vector.Vec3[float64]{1, -4, 2}
	assert.Equal(t, 4.0, v.Max(), "Max compares absolute values")
	assert.Equal(t, vector.Vec3[float64]{0.5, -2, 1}, v.WithMax(2))

	v.SetMax(8)
	assert.Equal(t, vector.Vec3[float64]{2, -8, 4}, v)
}

func TestVec3_Products(t *testing.T) {
	x := vector.Vec3[int]{1, 0, 0}
	y := vector.Vec3[int]{0, 1, 0}
	z := vector.Vec3[int]{0, 0, 1}

	assert.Equal(t, 0, x.Dot(y))
	assert.Equal(t, 32, vector.Vec3[int]{1, 2, 3}.Dot(vector.Vec3[int]{4, 5, 6}))
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, z.Neg(), y.Cross(x))
}

func TestVec3_Interpolation(t *testing.T) {
	a := vector.Vec3[float64]{0, 0, 0}
	b := vector.Vec3[float64]{2, 4, -6}

	assert.Equal(t, vector.Vec3[float64]{1, 2, -3}, a.Lerp(b, 0.5))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.InDelta(t, b.Magnitude(), a.Distance(b), tol)
}

func TestVec3_Angles(t *testing.T) {
	x := vector.Vec3[float64]{3, 0, 0}
	y := vector.Vec3[float64]{0, 5, 0}

	assert.InDelta(t, math.Pi/2, x.AngleBetween(y), tol)
	assert.InDelta(t, 0, x.AngleBetween(x), tol)
	assert.InDelta(t, math.Pi/4, x.AngleBetween(vector.Vec3[float64]{1, 1, 0}), tol)
	assert.Equal(t, 0.0, x.AngleBetweenCos(vector.Vec3[float64]{}))
}

func TestVec3_Projection(t *testing.T) {
	v := vector.Vec3[float64]{3, 4, 5}
	on := vector.Vec3[float64]{0, 2, 0}

	assert.Equal(t, 4.0, v.ProjectionLength(on))
	assert.Equal(t, vector.Vec3[float64]{0, 4, 0}, v.Projection(on))
	assert.Equal(t, vector.Vec3[float64]{3, 0, 5}, v.ProjectionOnPlane(on))
}

func TestVec3_Rotate(t *testing.T) {
	cases := []struct {
		name  string
		point vector.Vec3[float64]
		axis  vector.Vec3[float64]
		angle float64
		want  vector.Vec3[float64]
	}{
		{"x about z", vector.Vec3[float64]{1, 0, 0}, vector.Vec3[float64]{0, 0, 1}, math.Pi / 2, vector.Vec3[float64]{0, 1, 0}},
		{"unnormalised axis", vector.Vec3[float64]{1, 0, 0}, vector.Vec3[float64]{0, 0, 5}, math.Pi / 2, vector.Vec3[float64]{0, 1, 0}},
		{"y about x", vector.Vec3[float64]{0, 1, 0}, vector.Vec3[float64]{1, 0, 0}, math.Pi / 2, vector.Vec3[float64]{0, 0, 1}},
		{"point on axis", vector.Vec3[float64]{0, 0, 2}, vector.Vec3[float64]{0, 0, 1}, 1.234, vector.Vec3[float64]{0, 0, 2}},
		{"half turn", vector.Vec3[float64]{1, 2, 3}, vector.Vec3[float64]{0, 1, 0}, math.Pi, vector.Vec3[float64]{-1, 2, -3}},
		{"third turn about diagonal", vector.Vec3[float64]{1, 0, 0}, vector.Vec3[float64]{1, 1, 1}, 2 * math.Pi / 3, vector.Vec3[float64]{0, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireVec3(t, tc.want, tc.point.Rotate(tc.axis, tc.angle))
		})
	}
}

func TestVec3_Matrices(t *testing.T) {
	v := vector.Vec3[float64]{1, 2, 3}

	assert.Equal(t, [3]float64{1, 2, 3}, v.Column().Data)
	assert.Equal(t, [4]float64{1, 2, 3, 1}, v.Homogeneous(1).Data)

	moved := v.TranslationMatrix().Mul4x1(vector.Vec3[float64]{10, 20, 30}.Homogeneous(1))
	assert.Equal(t, [4]float64{11, 22, 33, 1}, moved.Data)

	// Directions (w = 0) ignore translation.
	dir := v.TranslationMatrix().Mul4x1(vector.Vec3[float64]{10, 20, 30}.Homogeneous(0))
	assert.Equal(t, [4]float64{10, 20, 30, 0}, dir.Data)

	scaled := v.ScaleMatrix().Mul4x1(vector.Splat3(2.0).Homogeneous(1))
	assert.Equal(t, vector.Vec3[float64]{2, 4, 6}, vector.FromColumn3(scaled.Submatrix3x1()))

	// Translation inverts to the opposite translation.
	assert.True(t, v.TranslationMatrix().Inverse().AllClose(v.Neg().TranslationMatrix(), tol))
}

func TestVec3_String(t *testing.T) {
	assert.Equal(t, "{1, 2.5, -3}", vector.Vec3[float64]{1, 2.5, -3}.String())
	assert.Equal(t, "{1, 2, 3}", vector.Vec3[uint8]{1, 2, 3}.String())
}
