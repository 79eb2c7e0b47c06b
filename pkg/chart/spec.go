// Package chart turns a dataset into backend-independent chart
// specifications and renders them with gonum/plot or go-chart.
package chart

// Header carries what every chart has: a file slug, a title and axis labels.
type Header struct {
	Slug   string
	Title  string
	XLabel string
	YLabel string
}

// Meta returns the header itself; embedding Header makes a type a Spec.
func (h Header) Meta() Header { return h }

// Spec is one chart artifact.
type Spec interface {
	Meta() Header
}

// LineSpec is a single-series line chart.
type LineSpec struct {
	Header
	Name string
	X, Y []float64
}

// BarSpec is a bar chart with one bar per label, no error bars.
type BarSpec struct {
	Header
	Labels []string
	Values []float64
}

// HistogramSpec is the distribution of Values over Bins equal-width bins.
// Edges and Counts are the binning every backend draws.
type HistogramSpec struct {
	Header
	Values []float64
	Bins   int
	Edges  []float64
	Counts []int
}

// ScatterSpec is a scatter plot with one colored group per category.
type ScatterSpec struct {
	Header
	LegendTitle string
	Groups      []ScatterGroup
}

// ScatterGroup is one legend entry of a scatter plot.
type ScatterGroup struct {
	Name string
	X, Y []float64
}
