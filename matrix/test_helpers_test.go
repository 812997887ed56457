// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities for the
//     generated shapes and their kernels.
//   - Keep all data finite and well-formed unless a test targets Inf/NaN.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

// tol is the per-element tolerance used for float comparisons.
const tol = 1e-6

// requireClose fails the test unless want and got share a shape and every
// element pair is within eps.
func requireClose[T matrix.Number](t *testing.T, want, got matrix.Shaped[T], eps float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, [2]int{wr, wc}, [2]int{gr, gc}, "shape mismatch")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			require.InDelta(t, float64(want.At(i, j)), float64(got.At(i, j)), eps, "element (%d,%d)", i, j)
		}
	}
}

// fillRand fills g with values in [-10, 10) from a seeded source.
func fillRand(g matrix.Grid[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	raw := g.Raw()
	for i := range raw {
		raw[i] = rng.Float64()*20 - 10
	}
}

// seq3x3 returns [[1,2,3],[4,5,6],[7,8,9]].
func seq3x3() matrix.Mat3x3[float64] {
	return matrix.New3x3([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
}

// seq3x2 returns [[1,2],[3,4],[5,6]].
func seq3x2[T matrix.Number]() matrix.Mat3x2[T] {
	return matrix.New3x2([6]T{
		1, 2,
		3, 4,
		5, 6,
	})
}
