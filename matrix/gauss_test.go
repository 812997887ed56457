// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

func TestGauss(t *testing.T) {
	cases := []struct {
		name string
		in   [12]float64
		want [12]float64
	}{
		{
			name: "row reordering",
			in: [12]float64{
				1, 3, 1, 9,
				1, 1, -1, 1,
				3, 11, 5, 35,
			},
			want: [12]float64{
				1, 0, -2, -3,
				0, 1, 1, 4,
				0, 0, 0, 0,
			},
		},
		{
			name: "zero first column",
			in: [12]float64{
				0, 3, 1, 9,
				0, 1, -1, 1,
				0, 11, 5, 35,
			},
			want: [12]float64{
				0, 1, 0, 2.5,
				0, 0, 1, 1.5,
				0, 0, 0, 0,
			},
		},
		{
			name: "already reduced",
			in: [12]float64{
				1, 0, 0, 4,
				0, 1, 0, 5,
				0, 0, 1, 6,
			},
			want: [12]float64{
				1, 0, 0, 4,
				0, 1, 0, 5,
				0, 0, 1, 6,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := matrix.New3x4(tc.in)
			m.Gauss()
			requireClose[float64](t, matrix.New3x4(tc.want), m, tol)
		})
	}
}

func TestGauss_ZeroRowStopsElimination(t *testing.T) {
	// The all-zero first row ends elimination before the second row is visited.
	m := matrix.New2x3([6]float64{
		0, 0, 0,
		7, 2, 1,
	})
	m.Gauss()
	assert.Equal(t, [6]float64{0, 0, 0, 7, 2, 1}, m.Data)
}

func TestGauss_SwapPicksEarliestLead(t *testing.T) {
	// Row 0 leads in column 2; rows 1 and 2 lead in columns 1 and 0.
	// The row with the smallest lead (row 2) is swapped up first.
	m := matrix.New3x3([9]float64{
		0, 0, 2,
		0, 3, 1,
		4, 1, 1,
	})
	m.Gauss()
	requireClose[float64](t, matrix.Identity3[float64](), m, tol)
}

func TestInverse(t *testing.T) {
	m := matrix.New3x3([9]float64{
		7, 2, 1,
		0, 4, -1,
		-3, 4, -2,
	})
	want := matrix.New3x3([9]float64{
		0.4, -0.8, 0.6,
		-0.3, 1.1, -0.7,
		-1.2, 3.4, -2.8,
	})

	requireClose[float64](t, want, m.Inverse(), tol)
	requireClose[float32](t, matrix.Convert3x3[float32](want), matrix.Convert3x3[float32](m).Inverse(), tol)
	assert.Equal(t, [9]float64{7, 2, 1, 0, 4, -1, -3, 4, -2}, m.Data, "Inverse leaves the receiver intact")

	requireClose[float64](t, matrix.Identity3[float64](), m.Mul3x3(m.Inverse()), 1e-9)
}

func TestInverse_Random(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		var m matrix.Mat5x5[float64]
		fillRand(&m, seed)
		// Diagonal dominance keeps the system well conditioned.
		for i := 0; i < 5; i++ {
			m.Set(i, i, m.At(i, i)+60)
		}

		inv, err := m.CheckedInverse()
		require.NoError(t, err)
		requireClose[float64](t, matrix.Identity5[float64](), m.Mul5x5(inv), 1e-9)
		requireClose[float64](t, m, inv.Inverse(), 1e-9)
	}
}

func TestInverse_Permutation(t *testing.T) {
	p := matrix.New2x2([4]float64{0, 1, 1, 0})
	assert.Equal(t, p.Data, p.Inverse().Data)
}

func TestCheckedInverse_Singular(t *testing.T) {
	m := matrix.New2x2([4]float64{1, 2, 2, 4})

	inv, err := m.CheckedInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Contains(t, err.Error(), "Inverse")
	assert.Equal(t, [4]float64{}, inv.Data)

	// The unchecked form still returns a structurally valid matrix.
	assert.NotPanics(t, func() { _ = m.Inverse() })

	_, err = matrix.Zero3x3[float64]().CheckedInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCheckedInverse_NearlySingular(t *testing.T) {
	// Rows are in arithmetic progression; rounding leaves a tiny pivot that the
	// elimination still reduces to the identity.
	m := matrix.New3x3([9]float64{
		0.1, 0.2, 0.3,
		0.4, 0.5, 0.6,
		0.7, 0.8, 0.9,
	})

	_, err := m.CheckedInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Convert3x3[float32](m).CheckedInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCheckedInverse_Integers(t *testing.T) {
	unit := matrix.New2x2([4]int{1, 1, 0, 1})
	inv, err := unit.CheckedInverse()
	require.NoError(t, err)
	assert.Equal(t, [4]int{1, -1, 0, 1}, inv.Data)

	// Invertible over the reals but not over the integers.
	_, err = matrix.New2x2([4]int{2, 0, 0, 4}).CheckedInverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCheckedInverse_Float32(t *testing.T) {
	m := matrix.New3x3([9]float32{7, 2, 1, 0, 4, -1, -3, 4, -2})

	inv, err := m.CheckedInverse()
	require.NoError(t, err)
	requireClose[float32](t, matrix.Identity3[float32](), m.Mul3x3(inv), 1e-5)
}
