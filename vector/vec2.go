package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/matrix"
)

// Vec2 is a two-component vector.
type Vec2[T matrix.Number] struct {
	X, Y T
}

// Splat2 returns a Vec2 with both components set to v.
func Splat2[T matrix.Number](v T) Vec2[T] { return Vec2[T]{v, v} }

// FromArray2 returns {a[0], a[1]}.
func FromArray2[T matrix.Number](a [2]T) Vec2[T] { return Vec2[T]{a[0], a[1]} }

// FromColumn2 returns the vector stored in a 2×1 column matrix.
func FromColumn2[T matrix.Number](c matrix.Mat2x1[T]) Vec2[T] { return FromArray2(c.Data) }

// At returns component i (0 = X, 1 = Y). Other indices panic.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("vector: Vec2 index %d out of range", i))
}

// Array returns the components as an array.
func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Div returns v / s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v.X, -v.Y} }

// AddInPlace sets v to v + o.
func (v *Vec2[T]) AddInPlace(o Vec2[T]) { *v = v.Add(o) }

// SubInPlace sets v to v - o.
func (v *Vec2[T]) SubInPlace(o Vec2[T]) { *v = v.Sub(o) }

// ScaleInPlace sets v to v * s.
func (v *Vec2[T]) ScaleInPlace(s T) { *v = v.Scale(s) }

// DivInPlace sets v to v / s.
func (v *Vec2[T]) DivInPlace(s T) { *v = v.Div(s) }

func (v Vec2[T]) scaled(k float64) Vec2[T] {
	return Vec2[T]{T(float64(v.X) * k), T(float64(v.Y) * k)}
}

// IsZero reports whether both components are zero.
func (v Vec2[T]) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Magnitude returns the Euclidean length of v without intermediate overflow.
func (v Vec2[T]) Magnitude() float64 { return math.Hypot(float64(v.X), float64(v.Y)) }

// MagnitudeSqr returns the squared length of v in T.
func (v Vec2[T]) MagnitudeSqr() T { return v.X*v.X + v.Y*v.Y }

// Normalized returns v scaled to unit length.
func (v Vec2[T]) Normalized() Vec2[T] { return v.scaled(1 / v.Magnitude()) }

// Normalize scales v to unit length in place.
func (v *Vec2[T]) Normalize() { *v = v.Normalized() }

// SetMagnitude rescales v to length mag.
func (v *Vec2[T]) SetMagnitude(mag float64) { *v = v.scaled(mag / v.Magnitude()) }

// ClampMagnitude shortens v to length mag when it is longer.
func (v *Vec2[T]) ClampMagnitude(mag float64) {
	if l := v.Magnitude(); l > mag {
		*v = v.scaled(mag / l)
	}
}

// Max returns the largest absolute component.
func (v Vec2[T]) Max() T { return max(abs(v.X), abs(v.Y)) }

// WithMax returns v rescaled so that its largest absolute component is m.
func (v Vec2[T]) WithMax(m T) Vec2[T] { return v.scaled(float64(m) / float64(v.Max())) }

// SetMax rescales v in place so that its largest absolute component is m.
func (v *Vec2[T]) SetMax(m T) { *v = v.WithMax(m) }

// Dot returns v·o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

// Lerp returns v + (to-v)*t.
func (v Vec2[T]) Lerp(to Vec2[T], t float64) Vec2[T] {
	return Vec2[T]{lerp(v.X, to.X, t), lerp(v.Y, to.Y, t)}
}

// Distance returns |o - v|.
func (v Vec2[T]) Distance(o Vec2[T]) float64 { return o.Sub(v).Magnitude() }

// AngleBetweenCos returns the cosine of the angle between v and o, or 0 when either is zero.
func (v Vec2[T]) AngleBetweenCos(o Vec2[T]) float64 {
	l := math.Sqrt(float64(v.MagnitudeSqr()) * float64(o.MagnitudeSqr()))
	if l == 0 {
		return 0
	}

	return float64(v.Dot(o)) / l
}

// AngleBetween returns the unsigned angle between v and o in radians.
func (v Vec2[T]) AngleBetween(o Vec2[T]) float64 { return acos(v.AngleBetweenCos(o)) }

// ProjectionLength returns the signed length of v projected on on.
func (v Vec2[T]) ProjectionLength(on Vec2[T]) float64 { return float64(v.Dot(on)) / on.Magnitude() }

// Projection returns the projection of v on on.
func (v Vec2[T]) Projection(on Vec2[T]) Vec2[T] {
	return on.scaled(float64(v.Dot(on)) / float64(on.MagnitudeSqr()))
}

// Rotate turns v counter-clockwise by angle radians around the origin.
func (v Vec2[T]) Rotate(angle float64) Vec2[T] {
	s, c := math.Sincos(angle)
	x, y := float64(v.X), float64(v.Y)

	return Vec2[T]{T(x*c - y*s), T(x*s + y*c)}
}

// String renders v as "{x, y}".
func (v Vec2[T]) String() string { return fmt.Sprintf("{%v, %v}", v.X, v.Y) }

// Column returns v as a 2×1 column matrix.
func (v Vec2[T]) Column() matrix.Mat2x1[T] { return matrix.New2x1(v.Array()) }

// Homogeneous returns {x, y, w} as a 3×1 column matrix.
func (v Vec2[T]) Homogeneous(w T) matrix.Mat3x1[T] { return matrix.New3x1([3]T{v.X, v.Y, w}) }

// TranslationMatrix returns the 3×3 homogeneous transform that translates by v.
func (v Vec2[T]) TranslationMatrix() matrix.Mat3x3[T] {
	return matrix.New3x3([9]T{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	})
}

// ScaleMatrix returns the 3×3 homogeneous transform that scales each axis by v.
func (v Vec2[T]) ScaleMatrix() matrix.Mat3x3[T] {
	return matrix.New3x3([9]T{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, 1,
	})
}
