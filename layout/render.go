package layout

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"hase/graphstore"
)

// RenderPNG draws store arranged by positions, with each vertex colored
// per colors (defaulting to ColorWhite for any vertex absent from
// colors), and saves it to path.
func RenderPNG(store *graphstore.GraphStore, positions map[string]r2.Vec, colors map[string]Color, width, height vg.Length, path string) error {
	p := plot.New()
	p.Add(graphRender{store: store, positions: positions, colors: colors})
	p.HideAxes()

	return p.Save(width, height, path)
}

type graphRender struct {
	store     *graphstore.GraphStore
	positions map[string]r2.Vec
	colors    map[string]Color
}

func (r graphRender) Plot(c draw.Canvas, plt *plot.Plot) {
	ids := sortedIDs(r.store)

	for _, id := range ids {
		for _, e := range r.store.Out(id) {
			from, to := r.positions[e.From], r.positions[e.To]
			l, err := plotter.NewLine(plotter.XYs{plotter.XY(from), plotter.XY(to)})
			if err != nil {
				continue
			}
			l.Plot(c, plt)
		}
	}

	for _, id := range ids {
		pos := r.positions[id]
		glyphColor := colorRGBA(r.colors[id])
		scatter, err := plotter.NewScatter(plotter.XYs{plotter.XY(pos)})
		if err != nil {
			continue
		}
		scatter.GlyphStyle.Shape = filledCircle{}
		scatter.GlyphStyle.Color = glyphColor
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.Plot(c, plt)
	}
}

func (r graphRender) DataRange() (xmin, xmax, ymin, ymax float64) {
	xs := plotter.XYs{}
	for _, pos := range r.positions {
		xs = append(xs, plotter.XY(pos))
	}

	return plotter.XYRange(xs)
}

func colorRGBA(c Color) color.Color {
	switch c {
	case ColorRed:
		return color.RGBA{R: 220, A: 255}
	case ColorGreen:
		return color.RGBA{G: 160, A: 255}
	default:
		return color.White
	}
}

// filledCircle draws a solid disc, matching the gonum layout example's
// node glyph.
type filledCircle struct{}

func (filledCircle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var path vg.Path
	c.Push()
	c.SetColor(sty.Color)
	path.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	path.Arc(pt, sty.Radius, 0, 2*math.Pi)
	path.Close()
	c.Fill(path)
	c.Pop()
}
