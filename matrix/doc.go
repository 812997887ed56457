// Package matrix provides fixed-shape matrices whose dimensions are part of
// the type.
//
// Every shape from 1×1 to 5×5 is a distinct generated type, MatRxC[T], backed
// by an inline row-major array:
//
//	a := matrix.New3x2[float64]([6]float64{1, 2, 3, 4, 5, 6})
//	b := matrix.New2x5[float64]([10]float64{...})
//	c := a.Mul2x5(b) // Mat3x5[float64]
//
// Because shapes are types, incompatible operations do not compile: there is
// no Mul3x3 on a Mat3x2, Trace and Inverse exist only on square types, and Add
// accepts only the same type. Values copy by assignment and never allocate.
//
// The package provides:
//
//   - Construction: NewRxC, ZeroRxC, IdentityN, FromColumnsRxC, ConvertRxC,
//     FromSliceRxC (the one runtime-checked entry point).
//   - Views: At/Set, Row, Column, Transposed, SubmatrixRxC, ResizeInto.
//   - Arithmetic: Add, Sub, Neg, Scale, Div and their InPlace forms, MulCxK, Trace.
//   - Elimination: Gauss (Gauss-Jordan, in place), Inverse, CheckedInverse.
//   - Column vectors (MatNx1): Dot, Magnitude, Normalize, projections, Extend.
//   - Rendering: String and Text with functional options.
//
// Element access panics on out-of-range indices, like Go slices. Float division
// by zero yields Inf/NaN and integer division by zero panics; singular matrices
// are not detected by Inverse.
//
// Concurrency: a matrix is a plain value. Distinct values may be used from any
// number of goroutines; a single value mutated in place (Set, Fill, Gauss,
// the InPlace methods) needs external synchronization.
//
// Shape-erased code can use the Shaped and Grid interfaces; see also the
// gonumx package for conversion to and from gonum's *mat.Dense.
package matrix

//go:generate go run gen.go
