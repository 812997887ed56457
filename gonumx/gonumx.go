// SPDX-License-Identifier: MIT

// Package gonumx bridges fixed-shape matrices and gonum's runtime-shaped
// *mat.Dense.
//
// Purpose:
//   - Hand a fixed-shape value to gonum routines the matrix package does not
//     offer (decompositions, eigenvalues, norms).
//   - Bring gonum results back into a fixed-shape value with a runtime shape check.
//
// AI-Hints:
//   - Pass &m to CopyFrom; the destination shape is read from the Grid.
//   - Element conversion goes through float64 in both directions; integer
//     destinations truncate.
package gonumx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixmat/matrix"
)

const opCopyFrom = "gonumx: CopyFrom"

// ToDense returns a freshly allocated *mat.Dense holding the elements of m.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToDense[T matrix.Number](m matrix.Shaped[T]) *mat.Dense {
	r, c := m.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = float64(m.At(i, j))
		}
	}

	return mat.NewDense(r, c, data)
}

// CopyFrom writes src into dst, converting every element to T.
//
// Errors:
//   - matrix.ErrDimensionMismatch (wrapped) when the shapes differ; dst is left untouched.
func CopyFrom[T matrix.Number](dst matrix.Grid[T], src mat.Matrix) error {
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if dr != sr || dc != sc {
		return fmt.Errorf("%s: want %dx%d, got %dx%d: %w", opCopyFrom, dr, dc, sr, sc, matrix.ErrDimensionMismatch)
	}
	raw := dst.Raw()
	for i := 0; i < dr; i++ {
		for j := 0; j < dc; j++ {
			raw[i*dc+j] = T(src.At(i, j))
		}
	}

	return nil
}
