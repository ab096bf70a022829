// Package satplot draws polygons and collision responses with gonum/plot.
// It is meant for debugging collision results, not for rendering games.
package satplot

import (
	"errors"
	"image/color"
	"io"

	"github.com/soypat/sat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	colorA   = color.RGBA{R: 70, G: 137, B: 102, A: 255}
	colorB   = color.RGBA{R: 182, G: 73, B: 38, A: 255}
	colorMTV = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Plot returns a plot of polygons a and b. If r is not nil the
// minimum translation vector is drawn from the centroid of b.
func Plot(a, b sat.Polygon, r *sat.Response) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "separating axis test"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	polyA, err := polygon(a, colorA)
	if err != nil {
		return nil, err
	}
	polyB, err := polygon(b, colorB)
	if err != nil {
		return nil, err
	}
	p.Add(polyA, polyB)
	p.Legend.Add("a", polyA)
	p.Legend.Add("b", polyB)
	if r == nil {
		return p, nil
	}

	start := b.Centroid()
	end := start.Add(r.OverlapV)
	mtv, err := plotter.NewLine(plotter.XYs{{X: start.X, Y: start.Y}, {X: end.X, Y: end.Y}})
	if err != nil {
		return nil, err
	}
	mtv.Color = colorMTV
	mtv.Width = vg.Points(2)
	tip, err := plotter.NewScatter(plotter.XYs{{X: end.X, Y: end.Y}})
	if err != nil {
		return nil, err
	}
	tip.GlyphStyle = draw.GlyphStyle{Color: colorMTV, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	p.Add(mtv, tip)
	p.Legend.Add("mtv", mtv)
	return p, nil
}

// Write renders the plot of a and b to w in the given format
// ("png", "svg", "pdf", ...).
func Write(w io.Writer, format string, a, b sat.Polygon, r *sat.Response) error {
	p, err := Plot(a, b, r)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(4*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func polygon(p sat.Polygon, c color.RGBA) (*plotter.Polygon, error) {
	world := p.WorldPoints()
	if len(world) == 0 {
		return nil, errors.New("satplot: empty polygon")
	}
	xys := make(plotter.XYs, len(world))
	for i, v := range world {
		xys[i].X = v.X
		xys[i].Y = v.Y
	}
	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, err
	}
	poly.Color = withAlpha(c, 96)
	poly.LineStyle.Color = c
	return poly, nil
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
