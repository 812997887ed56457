package vector

import (
	"math"

	"github.com/katalvlaran/fixmat/matrix"
)

// abs returns |x|; unsigned values are returned unchanged.
func abs[T matrix.Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// lerp interpolates one component in float64.
func lerp[T matrix.Number](from, to T, t float64) T {
	f := float64(from)

	return T(f + (float64(to)-f)*t)
}

// acos clamps c into [-1, 1] first: rounding can push a cosine of parallel vectors past 1.
func acos(c float64) float64 { return math.Acos(math.Max(-1, math.Min(1, c))) }
