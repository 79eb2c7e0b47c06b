package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Gonum renders with gonum.org/v1/plot.
type Gonum struct {
	Width, Height vg.Length
}

// Render draws spec and writes it to w as PNG.
func (g Gonum) Render(w io.Writer, spec Spec) error {
	p, err := g.Plot(spec)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(g.Width, g.Height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Plot builds the gonum plot for spec without encoding it.
func (g Gonum) Plot(spec Spec) (*plot.Plot, error) {
	h := spec.Meta()
	p := plot.New()
	p.Title.Text = h.Title
	p.X.Label.Text = h.XLabel
	p.Y.Label.Text = h.YLabel
	p.Add(plotter.NewGrid())

	switch s := spec.(type) {
	case LineSpec:
		l, err := plotter.NewLine(xys(s.X, s.Y))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = color.RGBA{B: 255, A: 255}
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Name, l)
		p.Legend.Top = true

	case BarSpec:
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(40))
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.SoftColors[0]
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.NominalX(s.Labels...)

	case HistogramSpec:
		hist, err := histogram(s)
		if err != nil {
			return nil, err
		}
		hist.FillColor = color.RGBA{G: 128, A: 178}
		hist.LineStyle.Color = color.Black
		hist.LineStyle.Width = vg.Points(1)
		p.Add(hist)

	case ScatterSpec:
		p.Legend.Add(s.LegendTitle)
		for i, grp := range s.Groups {
			sc, err := plotter.NewScatter(xys(grp.X, grp.Y))
			if err != nil {
				return nil, err
			}
			sc.GlyphStyle.Color = plotutil.Color(i)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(3)
			p.Add(sc)
			p.Legend.Add(grp.Name, sc)
		}
		p.Legend.Top = true
		p.Legend.Left = true

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSpec, spec)
	}
	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// histogram draws the spec's own binning so both backends show the same bins.
func histogram(s HistogramSpec) (*plotter.Histogram, error) {
	if len(s.Counts) == 0 || len(s.Edges) != len(s.Counts)+1 {
		return nil, fmt.Errorf("histogram %s: %d edges for %d bins", s.Slug, len(s.Edges), len(s.Counts))
	}
	bins := make([]plotter.HistogramBin, len(s.Counts))
	for i, c := range s.Counts {
		bins[i] = plotter.HistogramBin{Min: s.Edges[i], Max: s.Edges[i+1], Weight: float64(c)}
	}
	return &plotter.Histogram{
		Bins:  bins,
		Width: s.Edges[1] - s.Edges[0],
	}, nil
}
