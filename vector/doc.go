// Package vector provides small named-component vectors, Vec2 and Vec3,
// that interoperate with the fixed-shape matrices of package matrix.
//
// 🚀 What is it for?
//
//	Geometry code wants v.X rather than v.Data[0]. The types here carry the
//	usual vector algebra and convert to and from column matrices when a
//	transform needs them:
//	  • Column / FromColumn3: Vec3 ⇄ matrix.Mat3x1
//	  • Homogeneous(w): Vec3 → matrix.Mat4x1 for 4×4 transforms
//	  • TranslationMatrix / ScaleMatrix: ready-made 4×4 (Vec3) or 3×3 (Vec2) transforms
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fixmat/matrix"
//	  "github.com/katalvlaran/fixmat/vector"
//	)
//
//	p := vector.Vec3[float64]{X: 1, Y: 2, Z: 3}
//	t := vector.Vec3[float64]{X: 10}.TranslationMatrix()
//	moved := vector.FromColumn3(t.Mul4x1(p.Homogeneous(1)).Submatrix3x1())
//
// Real-valued results (magnitudes, angles, projection factors) are computed in
// float64 and converted back to T per component. Operations that divide by a
// magnitude or a maximum (Normalize, SetMagnitude, SetMax, projections) expect
// a non-zero vector; zero inputs yield Inf/NaN for floats.
package vector
