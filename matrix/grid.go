// SPDX-License-Identifier: MIT

// Package matrix - shape-erased views over the generated fixed-shape types.
//
// Purpose:
//   - Let shape-agnostic code (resizing, interop bridges, rendering helpers) read
//     and write any generated matrix without knowing its concrete type.
//   - Keep the fixed-shape types themselves free of indirection: the interfaces
//     are satisfied by the value (Shaped) or by a pointer to it (Grid).
//
// AI-Hints:
//   - Pass &m where a Grid is required; the callee writes straight into m.Data.
//   - Shape checks against a Grid happen at runtime (Dims), unlike the typed API.

package matrix

import "fmt"

// noCompare makes a struct incomparable with ==.
// Exact float equality is rarely what callers mean; compare .Data explicitly.
type noCompare [0]func()

// Shaped is the read-only view every generated matrix value implements.
type Shaped[T Number] interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// At returns the element at (r, c). Out-of-range indices panic.
	At(r, c int) T
}

// Grid is the mutable view implemented by pointers to generated matrices.
type Grid[T Number] interface {
	Shaped[T]

	// Set assigns v at (r, c). Out-of-range indices panic.
	Set(r, c int, v T)

	// Raw exposes the row-major backing storage (len == rows*cols).
	Raw() []T
}

// offset maps (r, c) to the row-major index of a rows×cols matrix.
// Both coordinates are checked: a column overflow must not alias the next row.
func offset(r, c, rows, cols int) int {
	if uint(r) >= uint(rows) || uint(c) >= uint(cols) {
		panicIndex(r, c, rows, cols)
	}

	return r*cols + c
}

// panicIndex is kept out of offset so the fast path stays inlinable.
func panicIndex(r, c, rows, cols int) {
	panic(fmt.Sprintf("matrix: index (%d,%d) out of range for %dx%d", r, c, rows, cols))
}

// resizeInto zero-fills dst and copies the overlapping top-left block of src.
// Complexity: O(r'*c') for the destination shape.
func resizeInto[T Number](dst Grid[T], src []T, srcRows, srcCols int) {
	raw := dst.Raw()
	clear(raw)
	dstRows, dstCols := dst.Dims()
	copyBlock(raw, dstCols, src, srcCols, min(srcRows, dstRows), min(srcCols, dstCols))
}

// CopyInto copies src into dst when both have the same shape.
// It is the shape-erased counterpart of plain assignment between generated types.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with "Copy") when shapes differ.
func CopyInto[T Number](dst Grid[T], src Shaped[T]) error {
	dr, dc := dst.Dims()
	sr, sc := src.Dims()
	if dr != sr || dc != sc {
		return shapeErrorf(opCopy, dr, dc, sr, sc)
	}
	raw := dst.Raw()
	for i := 0; i < sr; i++ {
		for j := 0; j < sc; j++ {
			raw[i*dc+j] = src.At(i, j)
		}
	}

	return nil
}
