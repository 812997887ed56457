// SPDX-License-Identifier: MIT

// Package matrix: element constraints.
//
// Purpose:
//   - Name the scalar types a fixed-shape matrix may hold.
//   - Keep real-valued results (trace, magnitude, angles) in float64 regardless of T.
package matrix

// Number is the set of element types a matrix may hold.
// Integer element types use Go's integer arithmetic everywhere (division truncates).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the subset of Number used where trigonometry is involved (quaternions).
type Float interface {
	~float32 | ~float64
}

// widen converts v to float64, the precision used for every real-valued result.
func widen[T Number](v T) float64 { return float64(v) }
