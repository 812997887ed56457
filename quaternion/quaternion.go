// Package quaternion provides rotation quaternions over float32/float64 and
// their conversion to 4×4 homogeneous rotation matrices.
//
// A Quat is a plain value. Rotation quaternions are expected to have unit
// norm: Inverse returns the conjugate, which equals the inverse only then.
// Use Normalized to remove drift after long chains of Mul.
package quaternion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/vector"
)

// Quat is the quaternion S + V.X·i + V.Y·j + V.Z·k.
type Quat[T matrix.Float] struct {
	S T
	V vector.Vec3[T]
}

// New returns the quaternion with scalar part s and vector part v.
func New[T matrix.Float](s T, v vector.Vec3[T]) Quat[T] { return Quat[T]{S: s, V: v} }

// Identity returns the rotation by zero radians.
func Identity[T matrix.Float]() Quat[T] { return Quat[T]{S: 1} }

// Euler returns the rotation for the given pitch (X), yaw (Y) and roll (Z)
// angles in radians.
func Euler[T matrix.Float](pitch, yaw, roll T) Quat[T] {
	sx, cx := sincos(pitch / 2)
	sy, cy := sincos(yaw / 2)
	sz, cz := sincos(roll / 2)

	return Quat[T]{
		S: cx*cy*cz + sx*sy*sz,
		V: vector.Vec3[T]{
			X: sx*cy*cz - cx*sy*sz,
			Y: cx*sy*cz + sx*cy*sz,
			Z: cx*cy*sz - sx*sy*cz,
		},
	}
}

// EulerVec is Euler with the angles packed as {pitch, yaw, roll}.
func EulerVec[T matrix.Float](pyr vector.Vec3[T]) Quat[T] { return Euler(pyr.X, pyr.Y, pyr.Z) }

// Rotation returns the rotation by angle radians around axis, which may have any non-zero length.
func Rotation[T matrix.Float](angle T, axis vector.Vec3[T]) Quat[T] {
	return RotationN(angle, axis.Normalized())
}

// RotationN is Rotation for an axis already of unit length.
func RotationN[T matrix.Float](angle T, axis vector.Vec3[T]) Quat[T] {
	s, c := sincos(angle / 2)

	return Quat[T]{S: c, V: axis.Scale(s)}
}

// Mul returns the Hamilton product q·o: rotating by q·o applies o first, then q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	a, b := q.V, o.V

	return Quat[T]{
		S: q.S*o.S - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		V: vector.Vec3[T]{
			X: q.S*b.X + a.X*o.S + a.Y*b.Z - a.Z*b.Y,
			Y: q.S*b.Y + a.Y*o.S + a.Z*b.X - a.X*b.Z,
			Z: q.S*b.Z + a.Z*o.S + a.X*b.Y - a.Y*b.X,
		},
	}
}

// Inverse returns the conjugate of q, the inverse rotation of a unit quaternion.
func (q Quat[T]) Inverse() Quat[T] { return Quat[T]{S: q.S, V: q.V.Neg()} }

// Norm returns the Euclidean norm of q.
func (q Quat[T]) Norm() float64 {
	return math.Sqrt(float64(q.S*q.S + q.V.MagnitudeSqr()))
}

// Normalized returns q scaled to unit norm. q must not be zero.
func (q Quat[T]) Normalized() Quat[T] {
	n := T(q.Norm())

	return Quat[T]{S: q.S / n, V: q.V.Div(n)}
}

// Rotate returns point rotated by q, computed as the vector part of q·(0, point)·q*.
func (q Quat[T]) Rotate(point vector.Vec3[T]) vector.Vec3[T] {
	return q.Mul(Quat[T]{V: point}).Mul(q.Inverse()).V
}

// RotationMatrix returns the 4×4 homogeneous matrix of the rotation q.
// For unit q, m.Mul4x1(p.Homogeneous(1)) equals q.Rotate(p).
func (q Quat[T]) RotationMatrix() matrix.Mat4x4[T] {
	s, x, y, z := q.S, q.V.X, q.V.Y, q.V.Z

	return matrix.New4x4([16]T{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*s, 2*x*z + 2*y*s, 0,
		2*x*y + 2*z*s, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*s, 0,
		2*x*z - 2*y*s, 2*y*z + 2*x*s, 1 - 2*x*x - 2*y*y, 0,
		0, 0, 0, 1,
	})
}

// String renders q as "s {x, y, z}".
func (q Quat[T]) String() string { return fmt.Sprintf("%v %v", q.S, q.V) }

func sincos[T matrix.Float](a T) (sin, cos T) {
	s, c := math.Sincos(float64(a))

	return T(s), T(c)
}
