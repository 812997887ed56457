package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/quaternion"
	"github.com/katalvlaran/fixmat/vector"
)

// driftTolerance bounds |inverse(M)·M - I| per element before a step is reported.
const driftTolerance = 1e-9

// Orbit is the traced path plus the numerical health of the transforms used.
type Orbit struct {
	Path     []vector.Vec3[float64]
	MaxDrift float64 // largest |inverse(M)·M - I| element over inverted steps
	Drifted  int     // inverted steps whose drift exceeded driftTolerance
	Rejected int     // steps CheckedInverse could not invert accurately
	First    matrix.Mat4x4[float64]
}

// startPoint returns a point at distance radius from the origin, perpendicular to axis.
func startPoint(axis vector.Vec3[float64], radius float64) vector.Vec3[float64] {
	p := vector.Vec3[float64]{X: 1}.ProjectionOnPlane(axis)
	if p.Magnitude() < 1e-12 {
		p = vector.Vec3[float64]{Y: 1}.ProjectionOnPlane(axis)
	}
	p.SetMagnitude(radius)

	return p
}

// composite returns Scale · Translation · Rotation for one step.
func composite(cfg Config, q quaternion.Quat[float64]) matrix.Mat4x4[float64] {
	return cfg.Scale.ScaleMatrix().
		Mul4x4(cfg.Center.TranslationMatrix()).
		Mul4x4(q.RotationMatrix())
}

// drift returns the largest element of |inverse(m)·m - I|.
func drift(m, inv matrix.Mat4x4[float64]) float64 {
	d := inv.Mul4x4(m).Sub(matrix.Identity4[float64]())
	worst := 0.0
	for _, v := range d.Data {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst
}

// TraceOrbit transforms the start point through cfg.Steps evenly spaced
// rotations and checks how well every composite transform inverts.
// The unrotated transform of step 0 must be invertible; later steps whose
// rotation defeats the elimination are counted in Rejected.
func TraceOrbit(cfg Config) (Orbit, error) {
	start := startPoint(cfg.Axis, cfg.Radius).Homogeneous(1)
	orbit := Orbit{Path: make([]vector.Vec3[float64], 0, cfg.Steps+1)}

	for k := 0; k <= cfg.Steps; k++ {
		angle := 2 * math.Pi * float64(k) / float64(cfg.Steps)
		m := composite(cfg, quaternion.Rotation(angle, cfg.Axis))
		if k == 0 {
			orbit.First = m
		}

		inv, err := m.CheckedInverse()
		switch {
		case err != nil && k == 0:
			return Orbit{}, fmt.Errorf("step %d: %w", k, err)
		case err != nil:
			orbit.Rejected++
		default:
			d := drift(m, inv)
			orbit.MaxDrift = math.Max(orbit.MaxDrift, d)
			if d > driftTolerance {
				orbit.Drifted++
			}
		}

		p := m.Mul4x1(start)
		orbit.Path = append(orbit.Path, vector.FromColumn3(p.Submatrix3x1()))
	}

	return orbit, nil
}
