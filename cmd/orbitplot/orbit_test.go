package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/vector"
)

func TestStartPoint(t *testing.T) {
	for _, axis := range []vector.Vec3[float64]{{Z: 1}, {X: 2}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: -3, Z: 4}} {
		p := startPoint(axis, 2.5)
		assert.InDelta(t, 2.5, p.Magnitude(), 1e-12)
		assert.InDelta(t, 0, p.Dot(axis), 1e-12, "start point must be perpendicular to %v", axis)
	}
}

func TestTraceOrbit_Circle(t *testing.T) {
	cfg := defaultConfig()
	cfg.Steps = 6
	cfg.Radius = 2

	o, err := TraceOrbit(cfg)
	require.NoError(t, err)
	require.Len(t, o.Path, 7)
	assert.Zero(t, o.Drifted)
	assert.Zero(t, o.Rejected)
	assert.Less(t, o.MaxDrift, driftTolerance)

	for k, p := range o.Path {
		angle := 2 * math.Pi * float64(k) / 6
		assert.InDelta(t, 2*math.Cos(angle), p.X, 1e-9, "step %d", k)
		assert.InDelta(t, 2*math.Sin(angle), p.Y, 1e-9, "step %d", k)
		assert.InDelta(t, 0, p.Z, 1e-9, "step %d", k)
	}
	assert.Equal(t, matrix.Identity4[float64]().Data, o.First.Data, "zero rotation with unit scale and no offset")
}

func TestTraceOrbit_ScaledAndTranslated(t *testing.T) {
	cfg := defaultConfig()
	cfg.Steps = 6
	cfg.Radius = 1
	cfg.Center = vector.Vec3[float64]{X: 10, Y: -5, Z: 1}
	cfg.Scale = vector.Vec3[float64]{X: 2, Y: 3, Z: 4}

	o, err := TraceOrbit(cfg)
	require.NoError(t, err)
	require.Len(t, o.Path, 7)

	// (S·T·R)p = S(Rp + c).
	for k, p := range o.Path {
		angle := 2 * math.Pi * float64(k) / 6
		assert.InDelta(t, 2*(math.Cos(angle)+10), p.X, 1e-9, "step %d", k)
		assert.InDelta(t, 3*(math.Sin(angle)-5), p.Y, 1e-9, "step %d", k)
		assert.InDelta(t, 4.0, p.Z, 1e-9, "step %d", k)
	}
	assert.Zero(t, o.Rejected)
	assert.Less(t, o.MaxDrift, driftTolerance)
}

func TestTraceOrbit_SingularTransform(t *testing.T) {
	cfg := defaultConfig()
	cfg.Scale = vector.Vec3[float64]{X: 1, Y: 0, Z: 1} // bypasses validate on purpose

	_, err := TraceOrbit(cfg)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestRender(t *testing.T) {
	cfg := defaultConfig()
	cfg.Steps = 10

	o, err := TraceOrbit(cfg)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "orbit.png")
	require.NoError(t, Render(o, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
