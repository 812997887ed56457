// SPDX-License-Identifier: MIT
// Package matrix - element-wise and product kernels over row-major storage.
//
// Purpose:
//   - Hold the single implementation of every arithmetic kernel; the generated
//     shape methods only pass m.Data[:] plus their compile-time dimensions.
//   - Keep kernels allocation-free: callers own every destination slice.
//
// Notes:
//   - Slices passed here always come from fixed arrays of matching length, so
//     the kernels do not re-validate shapes.
//   - Accumulation happens in T; only real-valued results are widened to float64.

package matrix

import (
	"math"
)

// fill sets every element of dst to v.
func fill[T Number](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// fillFromSlice copies s into dst when both have the same length.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with "FromSlice") on length mismatch.
func fillFromSlice[T Number](dst, s []T) error {
	if len(s) != len(dst) {
		return shapeErrorf(opFromSlice, len(dst), 1, len(s), 1)
	}
	copy(dst, s)

	return nil
}

// addInto computes dst[i] += src[i].
func addInto[T Number](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

// subInto computes dst[i] -= src[i].
func subInto[T Number](dst, src []T) {
	for i := range dst {
		dst[i] -= src[i]
	}
}

// negInto flips the sign of every element (unsigned types wrap).
func negInto[T Number](dst []T) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// scaleInto computes dst[i] *= s.
func scaleInto[T Number](dst []T, s T) {
	for i := range dst {
		dst[i] *= s
	}
}

// divInto computes dst[i] /= s.
// Float division by zero yields ±Inf/NaN; integer division by zero panics.
func divInto[T Number](dst []T, s T) {
	for i := range dst {
		dst[i] /= s
	}
}

// mulInto writes the product of a (rows×inner) and b (inner×cols) into dst (rows×cols).
//
// Implementation:
//   - Stage 1: for every (i, j) accumulate sum_t a(i,t)*b(t,j) in T.
//   - Stage 2: store the sum; dst is fully overwritten, so it need not be zeroed.
//
// Complexity:
//   - Time O(rows*inner*cols), Space O(1).
//
// Notes:
//   - dst must not alias a or b.
func mulInto[T Number](dst, a, b []T, rows, inner, cols int) {
	var (
		i, j, t int
		sum     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for t = 0; t < inner; t++ {
				sum += a[i*inner+t] * b[t*cols+j]
			}
			dst[i*cols+j] = sum
		}
	}
}

// transposeInto writes srcᵀ (cols×rows) into dst. dst must not alias src.
func transposeInto[T Number](dst, src []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
}

// copyBlock copies the top-left rows×cols block of src (row stride srcCols)
// into dst (row stride dstCols).
func copyBlock[T Number](dst []T, dstCols int, src []T, srcCols int, rows, cols int) {
	for i := 0; i < rows; i++ {
		copy(dst[i*dstCols:i*dstCols+cols], src[i*srcCols:i*srcCols+cols])
	}
}

// trace sums the diagonal of an n×n matrix in float64.
func trace[T Number](data []T, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += widen(data[i*(n+1)])
	}

	return sum
}

// allClose reports whether |a[i]-b[i]| <= tol for every i.
// Differences are taken in float64 so unsigned types do not wrap; NaN is never close.
func allClose[T Number](a, b []T, tol float64) bool {
	for i := range a {
		if !(math.Abs(widen(a[i])-widen(b[i])) <= tol) {
			return false
		}
	}

	return true
}
