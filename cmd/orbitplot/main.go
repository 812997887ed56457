// Command orbitplot traces a point around an axis with composed 4×4
// transforms, verifies that every transform inverts back to the identity and
// plots the path as a PNG.
//
// Configuration comes from a .env file (searched upwards from the working
// directory), the ORBIT_* environment variables and flags, later sources
// overriding earlier ones:
//
//	orbitplot -steps 720 -radius 3 -axis 0,1,1 -center 1,0,0 -o orbit.png
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/fixmat/matrix"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("orbitplot: ")

	cfg, err := Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	orbit, err := TraceOrbit(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Verbose {
		log.Printf("first transform:\n%s", orbit.First.Text(matrix.WithVerb('f'), matrix.WithPrecision(3)))
	}
	log.Printf("traced %d steps around %v, max inverse drift %.3g", cfg.Steps, cfg.Axis, orbit.MaxDrift)
	if orbit.Rejected > 0 {
		log.Printf("warning: %d steps could not be inverted accurately", orbit.Rejected)
	}
	if orbit.Drifted > 0 {
		log.Printf("warning: %d steps exceeded drift tolerance %g", orbit.Drifted, driftTolerance)
	}

	if err = Render(orbit, cfg.Output); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", cfg.Output)
}
