package chart

import (
	"fmt"
	"io"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var gochartPalette = []drawing.Color{gochart.ColorBlue, gochart.ColorOrange, gochart.ColorGreen, gochart.ColorRed}

// GoChart renders with github.com/wcharczuk/go-chart/v2. Sizes are pixels.
type GoChart struct {
	Width, Height int
}

// Render draws spec and writes it to w as PNG.
func (g GoChart) Render(w io.Writer, spec Spec) error {
	h := spec.Meta()

	switch s := spec.(type) {
	case LineSpec:
		c := g.chart(h)
		c.Series = []gochart.Series{
			gochart.ContinuousSeries{
				Name:    s.Name,
				XValues: s.X,
				YValues: s.Y,
				Style:   gochart.Style{StrokeColor: gochart.ColorBlue, StrokeWidth: 1.5},
			},
		}
		c.Elements = []gochart.Renderable{gochart.Legend(&c)}
		return c.Render(gochart.PNG, w)

	case BarSpec:
		return g.categoryBars(s).Render(gochart.PNG, w)

	case HistogramSpec:
		return g.histogram(s).Render(gochart.PNG, w)

	case ScatterSpec:
		c := g.scatter(s)
		c.Elements = []gochart.Renderable{
			gochart.Legend(&c),
			caption(s.LegendTitle, func(canvas gochart.Box, _ int) (int, int) {
				return canvas.Left + 5, canvas.Top - 6
			}),
		}
		return c.Render(gochart.PNG, w)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedSpec, spec)
	}
}

func (g GoChart) chart(h Header) gochart.Chart {
	return gochart.Chart{
		Title:      h.Title,
		Width:      g.Width,
		Height:     g.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: h.XLabel},
		YAxis:      gochart.YAxis{Name: h.YLabel},
	}
}

// scatter builds one dot series per group. The legend swatch is drawn from
// StrokeColor, so it carries the dot color while the stroke stays disabled.
func (g GoChart) scatter(s ScatterSpec) gochart.Chart {
	c := g.chart(s.Header)
	for i, grp := range s.Groups {
		col := gochartPalette[i%len(gochartPalette)]
		c.Series = append(c.Series, gochart.ContinuousSeries{
			Name:    grp.Name,
			XValues: grp.X,
			YValues: grp.Y,
			Style:   gochart.Style{StrokeColor: col, StrokeWidth: gochart.Disabled, DotWidth: 4, DotColor: col},
		})
	}
	return c
}

func (g GoChart) categoryBars(s BarSpec) gochart.BarChart {
	bars := make([]gochart.Value, len(s.Values))
	for i, v := range s.Values {
		col := gochartPalette[i%len(gochartPalette)]
		bars[i] = gochart.Value{
			Label: s.Labels[i],
			Value: v,
			Style: gochart.Style{FillColor: col, StrokeColor: col},
		}
	}
	return g.bars(s.Header, bars)
}

func (g GoChart) histogram(s HistogramSpec) gochart.BarChart {
	bars := make([]gochart.Value, len(s.Counts))
	for i, c := range s.Counts {
		bars[i] = gochart.Value{
			Label: strconv.FormatFloat(s.Edges[i], 'f', 2, 64),
			Value: float64(c),
			Style: gochart.Style{FillColor: gochart.ColorGreen, StrokeColor: gochart.ColorBlack, StrokeWidth: 1},
		}
	}
	return g.bars(s.Header, bars)
}

// bars sizes the bars so all of them fit the canvas and pins the y axis at
// zero; left to itself go-chart starts the axis at the smallest bar.
func (g GoChart) bars(h Header, values []gochart.Value) gochart.BarChart {
	const spacing = 4
	width := (g.Width-120)/max(len(values), 1) - spacing
	if width < 4 {
		width = 4
	}

	top := 0.0
	for _, v := range values {
		top = max(top, v.Value)
	}
	if top == 0 {
		top = 1
	}

	return gochart.BarChart{
		Title:      h.Title,
		Width:      g.Width,
		Height:     g.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Bottom: 40}},
		YAxis: gochart.YAxis{
			Name:  h.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: top * 1.05},
		},
		BarWidth:   width,
		BarSpacing: spacing,
		Bars:       values,
		Elements: []gochart.Renderable{
			caption(h.XLabel, func(canvas gochart.Box, textWidth int) (int, int) {
				return canvas.Left + (canvas.Width()-textWidth)/2, canvas.Bottom + 36
			}),
		},
	}
}

// caption draws text at the position at returns for the plot canvas and the
// measured text width. Empty text draws nothing.
func caption(text string, at func(canvas gochart.Box, textWidth int) (x, y int)) gochart.Renderable {
	return func(r gochart.Renderer, canvas gochart.Box, defaults gochart.Style) {
		if text == "" {
			return
		}
		font := defaults.GetFont()
		if font == nil {
			var err error
			if font, err = gochart.GetDefaultFont(); err != nil {
				return
			}
		}
		r.SetFont(font)
		r.SetFontColor(gochart.ColorBlack)
		r.SetFontSize(defaults.GetFontSize(gochart.DefaultFontSize))
		x, y := at(canvas, r.MeasureText(text).Width())
		r.Text(text, x, y)
	}
}
