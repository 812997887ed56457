// Package fixmat is a small value-type linear algebra toolkit whose matrix
// shapes are fixed at compile time.
//
// 🚀 What is fixmat?
//
//	A pure-Go library for the 1×1 … 5×5 matrices, 2D/3D vectors and
//	quaternions that geometry, graphics and simulation code reaches for:
//		• Matrices: Mat{R}x{C}[T] values backed by an [R*C]T array
//		• Elimination: in-place Gauss–Jordan, inverse and checked inverse
//		• Vectors: Vec2/Vec3 with dot, cross, projection and rotation
//		• Quaternions: Hamilton product, rotation and rotation matrices
//
// ✨ Why fixmat?
//
//   - Shape errors are compile errors: Mat2x3.Mul3x4 yields a Mat2x4
//   - Plain values: copy by assignment, no heap, no locks
//   - Generic over every integer and float type
//   - Bridges to gonum through the gonumx package
//
// Subpackages:
//
//	matrix/        fixed-shape matrices, elimination and formatting
//	vector/        Vec2 and Vec3 with homogeneous transforms
//	quaternion/    rotations as unit quaternions
//	gonumx/        conversion to and from gonum/mat
//	cmd/orbitplot  traces and plots an orbit built from composed transforms
//
//	go get github.com/katalvlaran/fixmat
package fixmat
