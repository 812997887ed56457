// SPDX-License-Identifier: MIT
package gonumx_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixmat/gonumx"
	"github.com/katalvlaran/fixmat/matrix"
)

const tol = 1e-9

func fillRand(g matrix.Grid[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	raw := g.Raw()
	for i := range raw {
		raw[i] = rng.Float64()*20 - 10
	}
}

func TestToDense(t *testing.T) {
	m := matrix.New2x3([6]int{1, 2, 3, 4, 5, 6})
	d := gonumx.ToDense[int](m)

	r, c := d.Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, d.RawMatrix().Data)
}

func TestCopyFrom(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{1.5, -2, 3, 4.9})

	var f matrix.Mat2x2[float64]
	require.NoError(t, gonumx.CopyFrom[float64](&f, src))
	assert.Equal(t, [4]float64{1.5, -2, 3, 4.9}, f.Data)

	var i matrix.Mat2x2[int]
	require.NoError(t, gonumx.CopyFrom[int](&i, src))
	assert.Equal(t, [4]int{1, -2, 3, 4}, i.Data)

	wrong := matrix.Identity3[float64]()
	err := gonumx.CopyFrom[float64](&wrong, src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Equal(t, matrix.Identity3[float64]().Data, wrong.Data, "destination untouched on error")
}

// The tests below cross-check the fixed-shape kernels against gonum.

func TestCrossCheck_Mul(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		var a matrix.Mat3x4[float64]
		var b matrix.Mat4x2[float64]
		fillRand(&a, seed)
		fillRand(&b, seed+50)

		var want mat.Dense
		want.Mul(gonumx.ToDense[float64](a), gonumx.ToDense[float64](b))

		var got matrix.Mat3x2[float64]
		require.NoError(t, gonumx.CopyFrom[float64](&got, &want))
		assert.True(t, got.AllClose(a.Mul4x2(b), tol))
	}
}

func TestCrossCheck_Transpose(t *testing.T) {
	var a matrix.Mat2x5[float64]
	fillRand(&a, 7)

	var got matrix.Mat5x2[float64]
	require.NoError(t, gonumx.CopyFrom[float64](&got, gonumx.ToDense[float64](a).T()))
	assert.Equal(t, a.Transposed().Data, got.Data)
}

func TestCrossCheck_InverseAndTrace(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		var a matrix.Mat4x4[float64]
		fillRand(&a, seed)
		for i := 0; i < 4; i++ {
			a.Set(i, i, a.At(i, i)+40)
		}
		d := gonumx.ToDense[float64](a)

		var inv mat.Dense
		require.NoError(t, inv.Inverse(d))

		var want matrix.Mat4x4[float64]
		require.NoError(t, gonumx.CopyFrom[float64](&want, &inv))
		assert.True(t, want.AllClose(a.Inverse(), tol))

		assert.InDelta(t, mat.Trace(d), a.Trace(), tol)
	}
}

func TestCrossCheck_Solve(t *testing.T) {
	// Gauss-Jordan on [A | b] leaves x in the last column.
	a := matrix.New3x3([9]float64{
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	})
	b := matrix.New3x1([3]float64{8, -11, -3})

	var x mat.VecDense
	require.NoError(t, x.SolveVec(gonumx.ToDense[float64](a), mat.NewVecDense(3, b.Data[:])))

	var aug matrix.Mat3x4[float64]
	a.ResizeInto(&aug)
	for i := 0; i < 3; i++ {
		aug.Set(i, 3, b.At(i, 0))
	}
	aug.Gauss()

	for i := 0; i < 3; i++ {
		assert.InDelta(t, x.AtVec(i), aug.At(i, 3), tol)
	}
	assert.InDelta(t, 2, aug.At(0, 3), tol)
	assert.InDelta(t, 3, aug.At(1, 3), tol)
	assert.InDelta(t, -1, aug.At(2, 3), tol)
}
