package quaternion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/quaternion"
	"github.com/katalvlaran/fixmat/vector"
)

const tol = 1e-9

type vec = vector.Vec3[float64]

// QuaternionSuite groups rotation checks that share fixtures.
type QuaternionSuite struct {
	suite.Suite
	points []vec
	axes   []vec
}

func (s *QuaternionSuite) SetupTest() {
	s.points = []vec{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 2, Z: 3}, {X: -4, Y: 0.5, Z: 2}}
	s.axes = []vec{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: -2, Y: 3, Z: 0.5}}
}

func (s *QuaternionSuite) requireVec(want, got vec) {
	s.Require().InDelta(want.X, got.X, tol, "X")
	s.Require().InDelta(want.Y, got.Y, tol, "Y")
	s.Require().InDelta(want.Z, got.Z, tol, "Z")
}

func (s *QuaternionSuite) TestIdentity() {
	id := quaternion.Identity[float64]()
	for _, p := range s.points {
		s.Equal(p, id.Rotate(p))
	}
	s.Equal(matrix.Identity4[float64]().Data, id.RotationMatrix().Data)
}

func (s *QuaternionSuite) TestRotation_QuarterTurns() {
	q := quaternion.Rotation(math.Pi/2, vec{X: 0, Y: 0, Z: 3})
	s.requireVec(vec{X: 0, Y: 1, Z: 0}, q.Rotate(vec{X: 1, Y: 0, Z: 0}))
	s.requireVec(vec{X: -1, Y: 0, Z: 0}, q.Rotate(vec{X: 0, Y: 1, Z: 0}))
	s.requireVec(vec{X: 0, Y: 0, Z: 1}, q.Rotate(vec{X: 0, Y: 0, Z: 1}))

	s.InDelta(1, q.Norm(), tol)
	s.InDelta(math.Cos(math.Pi/4), q.S, tol)
}

func (s *QuaternionSuite) TestRotate_MatchesVectorRotate() {
	for _, axis := range s.axes {
		for _, angle := range []float64{0.3, -1.1, math.Pi, 2.5} {
			q := quaternion.Rotation(angle, axis)
			for _, p := range s.points {
				s.requireVec(p.Rotate(axis, angle), q.Rotate(p))
			}
		}
	}
}

func (s *QuaternionSuite) TestRotationMatrix_MatchesRotate() {
	for _, axis := range s.axes {
		q := quaternion.Rotation(0.77, axis)
		m := q.RotationMatrix()
		for _, p := range s.points {
			got := vector.FromColumn3(m.Mul4x1(p.Homogeneous(1)).Submatrix3x1())
			s.requireVec(q.Rotate(p), got)
		}

		// Rotation matrices are orthogonal: the inverse is the transpose.
		s.True(m.Inverse().AllClose(m.Transposed(), tol))
		s.True(q.Inverse().RotationMatrix().AllClose(m.Transposed(), tol))
	}
}

func (s *QuaternionSuite) TestMul_Composes() {
	a := quaternion.Rotation(0.4, vec{X: 1, Y: 0, Z: 0})
	b := quaternion.Rotation(-1.3, vec{X: 0, Y: 1, Z: 1})
	ab := a.Mul(b)

	for _, p := range s.points {
		s.requireVec(a.Rotate(b.Rotate(p)), ab.Rotate(p))
	}
	s.True(ab.RotationMatrix().AllClose(a.RotationMatrix().Mul4x4(b.RotationMatrix()), tol))

	// q·q⁻¹ is the identity.
	id := ab.Mul(ab.Inverse())
	s.InDelta(1, id.S, tol)
	s.requireVec(vec{}, id.V)
}

func (s *QuaternionSuite) TestEuler_SingleAxes() {
	const a = 0.9
	s.Equal(quaternion.Rotation(a, vec{X: 1, Y: 0, Z: 0}), quaternion.Euler(a, 0, 0))

	cases := []struct {
		q    quaternion.Quat[float64]
		want quaternion.Quat[float64]
	}{
		{quaternion.Euler(0, a, 0.0), quaternion.RotationN(a, vec{X: 0, Y: 1, Z: 0})},
		{quaternion.Euler(0, 0, a), quaternion.RotationN(a, vec{X: 0, Y: 0, Z: 1})},
		{quaternion.EulerVec(vec{X: a, Y: 0, Z: 0}), quaternion.RotationN(a, vec{X: 1, Y: 0, Z: 0})},
	}
	for _, tc := range cases {
		s.InDelta(tc.want.S, tc.q.S, tol)
		s.requireVec(tc.want.V, tc.q.V)
	}
}

func (s *QuaternionSuite) TestNormalized() {
	q := quaternion.New(2.0, vec{X: 0, Y: 0, Z: 2})
	n := q.Normalized()
	s.InDelta(1, n.Norm(), tol)
	s.InDelta(math.Sqrt2/2, n.S, tol)
}

func (s *QuaternionSuite) TestString() {
	s.Equal("1 {0, 0, 0}", quaternion.Identity[float64]().String())
	s.Equal("0.5 {1, 2, 3}", quaternion.New(0.5, vec{X: 1, Y: 2, Z: 3}).String())
}

func TestQuaternionSuite(t *testing.T) {
	suite.Run(t, new(QuaternionSuite))
}

func TestFloat32(t *testing.T) {
	q := quaternion.Rotation[float32](math.Pi/2, vector.Vec3[float32]{Z: 1})
	r := q.Rotate(vector.Vec3[float32]{X: 1})
	if math.Abs(float64(r.Y)-1) > 1e-6 || math.Abs(float64(r.X)) > 1e-6 {
		t.Fatalf("float32 quarter turn: got %v", r)
	}
}
