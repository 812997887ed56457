// SPDX-License-Identifier: MIT

package matrix

import "math"

// dot returns sum a[i]*b[i], accumulated in T.
func dot[T Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// magnitude returns the Euclidean length of v in float64.
func magnitude[T Number](v []T) float64 {
	return math.Sqrt(widen(dot(v, v)))
}

// scaleReal multiplies every element by k in float64 and stores it back as T,
// so integer elements truncate after scaling rather than the factor before.
func scaleReal[T Number](v []T, k float64) {
	for i := range v {
		v[i] = T(widen(v[i]) * k)
	}
}

// setMagnitude rescales v to length mag. v must not be zero.
func setMagnitude[T Number](v []T, mag float64) {
	scaleReal(v, mag/magnitude(v))
}

// clampMagnitude shortens v to length mag when it is longer; shorter vectors are kept.
func clampMagnitude[T Number](v []T, mag float64) {
	if l := magnitude(v); l > mag {
		scaleReal(v, mag/l)
	}
}

// maxOf returns the largest element of v (v is never empty).
func maxOf[T Number](v []T) T {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

// isZero reports whether every element of v is zero.
func isZero[T Number](v []T) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// lerpInto computes v[i] += (to[i] - v[i]) * t in float64 and stores it back as T.
func lerpInto[T Number](v, to []T, t float64) {
	for i := range v {
		from := widen(v[i])
		v[i] = T(from + (widen(to[i])-from)*t)
	}
}

// angleCos returns cos of the angle between a and b, or 0 when either is zero.
func angleCos[T Number](a, b []T) float64 {
	l := widen(dot(a, a)) * widen(dot(b, b))
	if l == 0 {
		return 0
	}

	return widen(dot(a, b)) / math.Sqrt(l)
}

// angleBetween returns the angle between a and b in radians, in [0, π].
// The cosine is clamped so rounding cannot push it outside acos' domain.
func angleBetween[T Number](a, b []T) float64 {
	return math.Acos(math.Max(-1, math.Min(1, angleCos(a, b))))
}

// projectionLength returns the signed length of v projected on on. on must not be zero.
func projectionLength[T Number](v, on []T) float64 {
	return widen(dot(v, on)) / magnitude(on)
}

// projectOnto overwrites on with the projection of v on it. on must not be zero.
func projectOnto[T Number](on, v []T) {
	scaleInto(on, T(widen(dot(v, on))/widen(dot(on, on))))
}

// rejectFrom removes from v its component along normal. normal must not be zero.
func rejectFrom[T Number](v, normal []T) {
	k := widen(dot(v, normal)) / widen(dot(normal, normal))
	for i := range v {
		v[i] = T(widen(v[i]) - widen(normal[i])*k)
	}
}
