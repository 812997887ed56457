package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/fixmat/vector"
)

// Environment keys, also accepted from a .env file.
const (
	envSteps  = "ORBIT_STEPS"
	envRadius = "ORBIT_RADIUS"
	envAxis   = "ORBIT_AXIS"
	envCenter = "ORBIT_CENTER"
	envScale  = "ORBIT_SCALE"
	envOutput = "ORBIT_OUTPUT"
)

// envSearchDepth is how many directories, starting at the working directory,
// are searched for a .env file.
const envSearchDepth = 5

var (
	errBadSteps  = errors.New("steps must be positive")
	errBadRadius = errors.New("radius must be positive")
	errZeroAxis  = errors.New("axis must be non-zero")
	errBadScale  = errors.New("scale components must be non-zero")
	errNoOutput  = errors.New("output path must be set")
)

// Config holds the orbit parameters.
type Config struct {
	Steps   int
	Radius  float64
	Axis    vector.Vec3[float64]
	Center  vector.Vec3[float64]
	Scale   vector.Vec3[float64]
	Output  string
	Verbose bool
}

func defaultConfig() Config {
	return Config{
		Steps:  360,
		Radius: 5,
		Axis:   vector.Vec3[float64]{Z: 1},
		Scale:  vector.Splat3(1.0),
		Output: "orbit.png",
	}
}

// lookupFunc resolves a configuration key.
type lookupFunc func(key string) (string, bool)

// envLookup prefers the process environment and falls back to values read from .env.
func envLookup(dotenv map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]

		return v, ok
	}
}

// Load resolves the configuration: defaults, then .env, then the environment,
// then command-line flags.
func Load(args []string) (Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	dotenv, err := readEnvFile(dir)
	if err != nil {
		return Config{}, err
	}

	return load(args, envLookup(dotenv))
}

func load(args []string, lookup lookupFunc) (Config, error) {
	cfg := defaultConfig()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// readEnvFile looks for a .env file in dir and up to envSearchDepth-1 parents.
// A missing file is not an error.
func readEnvFile(dir string) (map[string]string, error) {
	for i := 0; i < envSearchDepth; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return godotenv.Read(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, nil
}

func (c *Config) applyEnv(lookup lookupFunc) error {
	var err error
	if v, ok := lookup(envSteps); ok {
		if c.Steps, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("%s: %w", envSteps, err)
		}
	}
	if v, ok := lookup(envRadius); ok {
		if c.Radius, err = strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return fmt.Errorf("%s: %w", envRadius, err)
		}
	}
	for _, kv := range []struct {
		key string
		dst *vector.Vec3[float64]
	}{
		{envAxis, &c.Axis},
		{envCenter, &c.Center},
		{envScale, &c.Scale},
	} {
		if v, ok := lookup(kv.key); ok {
			if *kv.dst, err = parseVec3(v); err != nil {
				return fmt.Errorf("%s: %w", kv.key, err)
			}
		}
	}
	if v, ok := lookup(envOutput); ok {
		c.Output = v
	}

	return nil
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("orbitplot", flag.ContinueOnError)
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of points along the orbit")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "orbit radius")
	fs.Var((*vec3Flag)(&c.Axis), "axis", "rotation axis as x,y,z")
	fs.Var((*vec3Flag)(&c.Center), "center", "orbit center as x,y,z")
	fs.Var((*vec3Flag)(&c.Scale), "scale", "per-axis scale as x,y,z")
	fs.StringVar(&c.Output, "o", c.Output, "output PNG path")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log the first composite transform")

	return fs.Parse(args)
}

func (c Config) validate() error {
	switch {
	case c.Steps <= 0:
		return errBadSteps
	case !(c.Radius > 0):
		return errBadRadius
	case c.Axis.IsZero():
		return errZeroAxis
	case c.Scale.X == 0 || c.Scale.Y == 0 || c.Scale.Z == 0:
		return errBadScale
	case c.Output == "":
		return errNoOutput
	}

	return nil
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (vector.Vec3[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vector.Vec3[float64]{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var a [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vector.Vec3[float64]{}, err
		}
		a[i] = f
	}

	return vector.FromArray3(a), nil
}

// vec3Flag adapts a Vec3 to flag.Value.
type vec3Flag vector.Vec3[float64]

func (f *vec3Flag) String() string { return vector.Vec3[float64](*f).String() }

func (f *vec3Flag) Set(s string) error {
	v, err := parseVec3(s)
	if err != nil {
		return err
	}
	*f = vec3Flag(v)

	return nil
}
