package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/vector"
)

func mapLookup(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]

		return v, ok
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil, mapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	env := map[string]string{
		envSteps:  "12",
		envRadius: "2.5",
		envAxis:   "0, 1, 0",
		envCenter: "1,2,3",
		envScale:  "2,2,2",
		envOutput: "from-env.png",
	}

	cfg, err := load(nil, mapLookup(env))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Steps)
	assert.Equal(t, 2.5, cfg.Radius)
	assert.Equal(t, vector.Vec3[float64]{Y: 1}, cfg.Axis)
	assert.Equal(t, vector.Vec3[float64]{X: 1, Y: 2, Z: 3}, cfg.Center)
	assert.Equal(t, vector.Splat3(2.0), cfg.Scale)
	assert.Equal(t, "from-env.png", cfg.Output)

	cfg, err = load([]string{"-steps", "7", "-axis", "1,0,0", "-o", "flag.png", "-v"}, mapLookup(env))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Steps, "flags override the environment")
	assert.Equal(t, vector.Vec3[float64]{X: 1}, cfg.Axis)
	assert.Equal(t, "flag.png", cfg.Output)
	assert.Equal(t, 2.5, cfg.Radius, "unset flags keep the environment value")
	assert.True(t, cfg.Verbose)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
		want error
	}{
		{name: "zero steps", args: []string{"-steps", "0"}, want: errBadSteps},
		{name: "negative radius", env: map[string]string{envRadius: "-1"}, want: errBadRadius},
		{name: "zero axis", args: []string{"-axis", "0,0,0"}, want: errZeroAxis},
		{name: "flat scale", env: map[string]string{envScale: "1,0,1"}, want: errBadScale},
		{name: "empty output", args: []string{"-o", ""}, want: errNoOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(tc.args, mapLookup(tc.env))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := load(nil, mapLookup(map[string]string{envSteps: "many"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), envSteps)

	_, err = load(nil, mapLookup(map[string]string{envAxis: "1,2"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), envAxis)

	_, err = load([]string{"-center", "a,b,c"}, mapLookup(nil))
	require.Error(t, err)
}

func TestReadEnvFile_SearchesParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("ORBIT_STEPS=42\nORBIT_AXIS=1,1,0\n"), 0o644))

	got, err := readEnvFile(nested)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{envSteps: "42", envAxis: "1,1,0"}, got)

	cfg, err := load(nil, mapLookup(got))
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Steps)
}

func TestReadEnvFile_Missing(t *testing.T) {
	got, err := readEnvFile(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnvLookup_PrefersProcessEnv(t *testing.T) {
	t.Setenv(envOutput, "process.png")
	lookup := envLookup(map[string]string{envOutput: "dotenv.png", envSteps: "9"})

	v, ok := lookup(envOutput)
	assert.True(t, ok)
	assert.Equal(t, "process.png", v)

	v, ok = lookup(envSteps)
	assert.True(t, ok)
	assert.Equal(t, "9", v)
}
