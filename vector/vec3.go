package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/matrix"
)

// Vec3 is a three-component vector.
type Vec3[T matrix.Number] struct {
	X, Y, Z T
}

// Splat3 returns a Vec3 with every component set to v.
func Splat3[T matrix.Number](v T) Vec3[T] { return Vec3[T]{v, v, v} }

// FromArray3 returns {a[0], a[1], a[2]}.
func FromArray3[T matrix.Number](a [3]T) Vec3[T] { return Vec3[T]{a[0], a[1], a[2]} }

// FromColumn3 returns the vector stored in a 3×1 column matrix.
func FromColumn3[T matrix.Number](c matrix.Mat3x1[T]) Vec3[T] { return FromArray3(c.Data) }

// At returns component i (0 = X, 1 = Y, 2 = Z). Other indices panic.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("vector: Vec3 index %d out of range", i))
}

// Array returns the components as an array.
func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Div returns v / s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

// AddInPlace sets v to v + o.
func (v *Vec3[T]) AddInPlace(o Vec3[T]) { *v = v.Add(o) }

// SubInPlace sets v to v - o.
func (v *Vec3[T]) SubInPlace(o Vec3[T]) { *v = v.Sub(o) }

// ScaleInPlace sets v to v * s.
func (v *Vec3[T]) ScaleInPlace(s T) { *v = v.Scale(s) }

// DivInPlace sets v to v / s.
func (v *Vec3[T]) DivInPlace(s T) { *v = v.Div(s) }

// scaled multiplies every component by a real factor.
func (v Vec3[T]) scaled(k float64) Vec3[T] {
	return Vec3[T]{T(float64(v.X) * k), T(float64(v.Y) * k), T(float64(v.Z) * k)}
}

// IsZero reports whether all components are zero.
func (v Vec3[T]) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Magnitude returns the Euclidean length of v without intermediate overflow.
func (v Vec3[T]) Magnitude() float64 {
	return math.Hypot(math.Hypot(float64(v.X), float64(v.Y)), float64(v.Z))
}

// MagnitudeSqr returns the squared length of v in T.
func (v Vec3[T]) MagnitudeSqr() T { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Normalized returns v scaled to unit length.
func (v Vec3[T]) Normalized() Vec3[T] { return v.scaled(1 / v.Magnitude()) }

// Normalize scales v to unit length in place.
func (v *Vec3[T]) Normalize() { *v = v.Normalized() }

// SetMagnitude rescales v to length mag.
func (v *Vec3[T]) SetMagnitude(mag float64) { *v = v.scaled(mag / v.Magnitude()) }

// ClampMagnitude shortens v to length mag when it is longer.
func (v *Vec3[T]) ClampMagnitude(mag float64) {
	if l := v.Magnitude(); l > mag {
		*v = v.scaled(mag / l)
	}
}

// Max returns the largest absolute component.
func (v Vec3[T]) Max() T { return max(abs(v.X), abs(v.Y), abs(v.Z)) }

// WithMax returns v rescaled so that its largest absolute component is m.
func (v Vec3[T]) WithMax(m T) Vec3[T] { return v.scaled(float64(m) / float64(v.Max())) }

// SetMax rescales v in place so that its largest absolute component is m.
func (v *Vec3[T]) SetMax(m T) { *v = v.WithMax(m) }

// Dot returns v·o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v×o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Lerp returns v + (to-v)*t.
func (v Vec3[T]) Lerp(to Vec3[T], t float64) Vec3[T] {
	return Vec3[T]{lerp(v.X, to.X, t), lerp(v.Y, to.Y, t), lerp(v.Z, to.Z, t)}
}

// Distance returns |o - v|.
func (v Vec3[T]) Distance(o Vec3[T]) float64 { return o.Sub(v).Magnitude() }

// AngleBetweenCos returns the cosine of the angle between v and o, or 0 when either is zero.
func (v Vec3[T]) AngleBetweenCos(o Vec3[T]) float64 {
	l := math.Sqrt(float64(v.MagnitudeSqr()) * float64(o.MagnitudeSqr()))
	if l == 0 {
		return 0
	}

	return float64(v.Dot(o)) / l
}

// AngleBetween returns the angle between v and o in radians.
func (v Vec3[T]) AngleBetween(o Vec3[T]) float64 { return acos(v.AngleBetweenCos(o)) }

// ProjectionLength returns the signed length of v projected on on.
func (v Vec3[T]) ProjectionLength(on Vec3[T]) float64 { return float64(v.Dot(on)) / on.Magnitude() }

// Projection returns the projection of v on on.
func (v Vec3[T]) Projection(on Vec3[T]) Vec3[T] {
	return on.scaled(float64(v.Dot(on)) / float64(on.MagnitudeSqr()))
}

// ProjectionOnPlane returns the component of v perpendicular to normal.
func (v Vec3[T]) ProjectionOnPlane(normal Vec3[T]) Vec3[T] {
	k := float64(normal.Dot(v)) / float64(normal.MagnitudeSqr())

	return Vec3[T]{
		T(float64(v.X) - float64(normal.X)*k),
		T(float64(v.Y) - float64(normal.Y)*k),
		T(float64(v.Z) - float64(normal.Z)*k),
	}
}

// Rotate turns the point v by angle radians around axis (any non-zero length),
// counter-clockwise when looking down the axis towards the origin.
//
// Implementation:
//   - Stage 1: q = (cos(θ/2), sin(θ/2)·â).
//   - Stage 2: return the vector part of q·(0, v)·q*, expanded in closed form.
func (v Vec3[T]) Rotate(axis Vec3[T], angle float64) Vec3[T] {
	a := toReal(axis).Normalized()
	p := toReal(v)

	s, c := math.Sincos(angle / 2)
	u := a.Scale(s)

	// t = q·(0, p): scalar -u·p, vector c·p + u×p.
	ts := -u.Dot(p)
	tv := p.Scale(c).Add(u.Cross(p))

	// t·q* with q* = (c, -u).
	r := u.Scale(-ts).Add(tv.Scale(c)).Add(tv.Cross(u.Neg()))

	return Vec3[T]{T(r.X), T(r.Y), T(r.Z)}
}

// String renders v as "{x, y, z}".
func (v Vec3[T]) String() string { return fmt.Sprintf("{%v, %v, %v}", v.X, v.Y, v.Z) }

// Column returns v as a 3×1 column matrix.
func (v Vec3[T]) Column() matrix.Mat3x1[T] { return matrix.New3x1(v.Array()) }

// Homogeneous returns {x, y, z, w} as a 4×1 column matrix.
func (v Vec3[T]) Homogeneous(w T) matrix.Mat4x1[T] { return matrix.New4x1([4]T{v.X, v.Y, v.Z, w}) }

// TranslationMatrix returns the 4×4 homogeneous transform that translates by v.
func (v Vec3[T]) TranslationMatrix() matrix.Mat4x4[T] {
	return matrix.New4x4([16]T{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	})
}

// ScaleMatrix returns the 4×4 homogeneous transform that scales each axis by v.
func (v Vec3[T]) ScaleMatrix() matrix.Mat4x4[T] {
	return matrix.New4x4([16]T{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	})
}

func toReal[T matrix.Number](v Vec3[T]) Vec3[float64] {
	return Vec3[float64]{float64(v.X), float64(v.Y), float64(v.Z)}
}
