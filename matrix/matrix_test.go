// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

// Compile-time assertions: pointers to generated shapes are Grids.
var (
	_ matrix.Grid[float64] = (*matrix.Mat3x2[float64])(nil)
	_ matrix.Grid[int]     = (*matrix.Mat5x5[int])(nil)
	_ matrix.Shaped[uint8] = matrix.Mat1x4[uint8]{}
)

func TestConstructors(t *testing.T) {
	m := matrix.New2x2([4]float32{1, 2, 3, 4})
	require.Equal(t, [4]float32{1, 2, 3, 4}, m.Data)

	cp := m
	cp.Set(0, 0, 9)
	assert.Equal(t, float32(1), m.At(0, 0), "assignment must copy storage")

	assert.Equal(t, [4]int{1, 2, 3, 4}, matrix.Convert2x2[int](m).Data)
	assert.Equal(t, [4]int{1, 2, -3, 4}, matrix.Convert2x2[int](matrix.New2x2([4]float64{1.9, 2.2, -3.7, 4})).Data, "conversion truncates")

	assert.Equal(t, [6]float64{}, matrix.Zero3x2[float64]().Data)
	assert.Equal(t, [9]int{1, 0, 0, 0, 1, 0, 0, 0, 1}, matrix.Identity3[int]().Data)
	assert.Equal(t, [1]float64{1}, matrix.Identity1[float64]().Data)
}

func TestFromColumns(t *testing.T) {
	a := matrix.New3x1([3]float64{1, 2, 3})
	b := matrix.New3x1([3]float64{4, 5, 6})
	c := matrix.New3x1([3]float64{7, 8, 9})

	got := matrix.FromColumns3x3([3]matrix.Mat3x1[float64]{a, b, c})
	assert.Equal(t, [9]float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, got.Data)
	assert.Equal(t, c.Data, got.Column(2).Data)
}

func TestFromSlice(t *testing.T) {
	m, err := matrix.FromSlice2x3([]int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 6, m.At(1, 2))

	for _, s := range [][]int{nil, {1, 2, 3}, {1, 2, 3, 4, 5, 6, 7}} {
		m, err = matrix.FromSlice2x3(s)
		require.Error(t, err)
		assert.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
		assert.Equal(t, [6]int{}, m.Data, "failed ingestion returns the zero value")
	}
}

func TestIndexing(t *testing.T) {
	m := seq3x2[float64]()

	assert.Equal(t, 1.0, m.Data[0])
	assert.Equal(t, 3.0, m.Data[2])
	for i, want := range m.Data {
		assert.Equal(t, want, m.At(m.RowOf(i), m.ColOf(i)))
	}
	assert.Equal(t, 2, m.RowOf(5))
	assert.Equal(t, 1, m.ColOf(5))

	r, c := m.Dims()
	assert.Equal(t, [2]int{3, 2}, [2]int{r, c})

	m.Fill(17)
	assert.Equal(t, [6]float64{17, 17, 17, 17, 17, 17}, m.Data)

	m.Raw()[4] = 1
	assert.Equal(t, 1.0, m.At(2, 0), "Raw aliases storage")
}

func TestIndexing_OutOfRangePanics(t *testing.T) {
	m := seq3x2[int]()

	// (0,2) would alias (1,0) under plain flat indexing.
	assert.Panics(t, func() { _ = m.At(0, 2) })
	assert.Panics(t, func() { _ = m.At(3, 0) })
	assert.Panics(t, func() { _ = m.At(-1, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 1) })
	assert.Panics(t, func() { _ = m.Row(3) })
	assert.Panics(t, func() { _ = m.Column(2) })
}

func TestRowColumn(t *testing.T) {
	m := matrix.New4x3([12]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	})
	assert.Equal(t, [3]float64{7, 8, 9}, m.Row(2).Data)
	assert.Equal(t, [4]float64{2, 5, 8, 11}, m.Column(1).Data)
}

func TestTransposed(t *testing.T) {
	m := matrix.New4x4([16]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	want := [16]int{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}
	assert.Equal(t, want, m.Transposed().Data)
	assert.Equal(t, m.Data, m.Transposed().Transposed().Data)

	r := seq3x2[int]()
	assert.Equal(t, [6]int{1, 3, 5, 2, 4, 6}, r.Transposed().Data)
	assert.Equal(t, r.Data, r.Transposed().Transposed().Data)
}

func TestSubmatrix(t *testing.T) {
	m := matrix.New4x4([16]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	assert.Equal(t, m.Data, m.Submatrix4x4().Data)
	assert.Equal(t, [6]float64{1, 2, 5, 6, 9, 10}, m.Submatrix3x2().Data)
	assert.Equal(t, [1]float64{1}, m.Submatrix1x1().Data)
}

func TestResizeInto(t *testing.T) {
	m := seq3x2[float64]()

	var big matrix.Mat4x4[float64]
	big.Fill(99) // must be overwritten by zeros
	m.ResizeInto(&big)
	assert.Equal(t, [16]float64{
		1, 2, 0, 0,
		3, 4, 0, 0,
		5, 6, 0, 0,
		0, 0, 0, 0,
	}, big.Data)

	var back matrix.Mat3x2[float64]
	big.ResizeInto(&back)
	assert.Equal(t, m.Data, back.Data)

	var same matrix.Mat3x2[float64]
	m.ResizeInto(&same)
	assert.Equal(t, m.Data, same.Data)

	var small matrix.Mat2x1[float64]
	m.ResizeInto(&small)
	assert.Equal(t, [2]float64{1, 3}, small.Data)
}

func TestCopyInto(t *testing.T) {
	src := seq3x2[int]()

	var dst matrix.Mat3x2[int]
	require.NoError(t, matrix.CopyInto[int](&dst, src))
	assert.Equal(t, src.Data, dst.Data)

	var wrong matrix.Mat2x3[int]
	err := matrix.CopyInto[int](&wrong, src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "Copy")
}

func TestArithmetic(t *testing.T) {
	m := seq3x2[float32]()
	double := matrix.New3x2([6]float32{2, 4, 6, 8, 10, 12})

	assert.Equal(t, double.Data, m.Add(m).Data)
	assert.Equal(t, [6]float32{}, m.Sub(m).Data)
	assert.Equal(t, double.Data, m.Scale(2).Data)
	assert.Equal(t, m.Data, m.Scale(2).Div(2).Data)
	assert.Equal(t, m.Neg().Data, m.Scale(-1).Data)
	assert.Equal(t, [6]float32{1, 2, 3, 4, 5, 6}, m.Data, "value operators leave the receiver intact")
}

func TestArithmetic_InPlace(t *testing.T) {
	m := seq3x2[int]()
	o := matrix.New3x2([6]int{1, 1, 1, 1, 1, 1})

	m.AddInPlace(o)
	assert.Equal(t, [6]int{2, 3, 4, 5, 6, 7}, m.Data)
	m.SubInPlace(o)
	assert.Equal(t, seq3x2[int]().Data, m.Data)
	m.ScaleInPlace(3)
	assert.Equal(t, [6]int{3, 6, 9, 12, 15, 18}, m.Data)
	m.DivInPlace(3)
	assert.Equal(t, seq3x2[int]().Data, m.Data)
}

func TestArithmetic_Properties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		var a, b matrix.Mat4x3[float64]
		fillRand(&a, seed)
		fillRand(&b, seed+100)

		requireClose[float64](t, a, a.Add(b).Sub(b), 1e-12)
		requireClose[float64](t, a, a.Scale(3.7).Div(3.7), tol)
		assert.Equal(t, a.Data, a.Transposed().Transposed().Data)
		requireClose[float64](t, a, matrix.Identity4[float64]().Mul4x3(a), 0)
		requireClose[float64](t, a, a.Mul3x3(matrix.Identity3[float64]()), 0)
	}

	// Exact for integers.
	a := matrix.New2x2([4]int{3, -7, 11, 0})
	b := matrix.New2x2([4]int{-5, 2, 8, 13})
	assert.Equal(t, a.Data, a.Add(b).Sub(b).Data)
}

func TestDivisionByZero(t *testing.T) {
	f := matrix.New1x2([2]float64{1, -1}).Div(0)
	assert.True(t, math.IsInf(f.Data[0], 1))
	assert.True(t, math.IsInf(f.Data[1], -1))

	i := matrix.New1x2([2]int{1, 2})
	assert.Panics(t, func() { _ = i.Div(0) })
}

func TestMul(t *testing.T) {
	a := seq3x2[float64]()
	b := matrix.New2x5([10]float64{
		10, 11, 12, 13, 14,
		15, 16, 17, 18, 19,
	})
	want := [15]float64{
		40, 43, 46, 49, 52,
		90, 97, 104, 111, 118,
		140, 151, 162, 173, 184,
	}
	assert.Equal(t, want, a.Mul2x5(b).Data)

	// Outer and inner products through the same kernel.
	col := matrix.New3x1([3]int{1, 2, 3})
	assert.Equal(t, [1]int{14}, col.Transposed().Mul3x1(col).Data)
	assert.Equal(t, [9]int{1, 2, 3, 2, 4, 6, 3, 6, 9}, col.Mul1x3(col.Transposed()).Data)
}

func TestTrace(t *testing.T) {
	assert.Equal(t, 15.0, seq3x3().Trace())

	m := matrix.New4x4([16]int{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
	assert.Equal(t, 34.0, m.Trace())

	// Widened: the sum does not overflow the element type.
	u := matrix.New2x2([4]uint8{200, 0, 0, 200})
	assert.Equal(t, 400.0, u.Trace())
}

func TestAllClose(t *testing.T) {
	a := matrix.New1x3([3]float64{1, 2, 3})
	b := matrix.New1x3([3]float64{1, 2, 3.0000001})

	assert.True(t, a.AllClose(b, tol))
	assert.False(t, a.AllClose(b, 0))
	assert.False(t, a.AllClose(matrix.New1x3([3]float64{1, 2, math.NaN()}), math.Inf(1)))

	// Unsigned differences must not wrap.
	u := matrix.New1x2([2]uint{1, 5})
	assert.True(t, u.AllClose(matrix.New1x2([2]uint{2, 4}), 1))
	assert.False(t, u.AllClose(matrix.New1x2([2]uint{3, 5}), 1))
}
