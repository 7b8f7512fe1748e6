package experiment

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/solution"
)

// PlotBestTour renders the two cycles of sol as closed polylines over a
// scatter of every node, colouring cycle 1 and cycle 2 distinctly, and
// saves the result as a PNG at path.
func PlotBestTour(inst *instance.Instance, sol *solution.Solution, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	nodes := make(plotter.XYs, inst.N())
	for v := 0; v < inst.N(); v++ {
		c := inst.Coord(v)
		nodes[v] = plotter.XY{X: c.X, Y: c.Y}
	}
	scatter, err := plotter.NewScatter(nodes)
	if err != nil {
		return fmt.Errorf("experiment: plot nodes: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Length(2)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	colors := [2]struct {
		r, g, b uint8
	}{{200, 40, 40}, {40, 80, 200}}

	for _, c := range []solution.CycleID{solution.Cycle1, solution.Cycle2} {
		cyc := sol.Cycle(c)
		line, err := closedTourLine(inst, cyc)
		if err != nil {
			return fmt.Errorf("experiment: plot cycle %d: %w", c, err)
		}
		rgb := colors[c]
		line.Color = rgbColor(rgb.r, rgb.g, rgb.b)
		line.Width = vg.Points(1.5)
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("experiment: save plot: %w", err)
	}

	return nil
}

func closedTourLine(inst *instance.Instance, cycle []int) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(cycle)+1)
	for i, v := range cycle {
		c := inst.Coord(v)
		pts[i] = plotter.XY{X: c.X, Y: c.Y}
	}
	if len(cycle) > 0 {
		pts[len(cycle)] = pts[0]
	}

	return plotter.NewLine(pts)
}

func rgbColor(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
