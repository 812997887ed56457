package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotSize is the edge length of the square output image.
const plotSize = 6 * vg.Inch

// Render draws the XY projection of the orbit path, marking the start point.
func Render(o Orbit, path string) error {
	pts := make(plotter.XYs, len(o.Path))
	for i, p := range o.Path {
		pts[i].X, pts[i].Y = p.X, p.Y
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("orbit (%d steps)", len(o.Path)-1)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	start, err := plotter.NewScatter(pts[:1])
	if err != nil {
		return fmt.Errorf("start marker: %w", err)
	}
	p.Add(plotter.NewGrid(), line, start)
	p.Legend.Add("path", line)
	p.Legend.Add("start", start)

	if err = p.Save(plotSize, plotSize, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
