package chart

import (
	"fmt"
	"strings"
	"unicode"

	"irisviz/pkg/analysis"
	"irisviz/pkg/data"
	"irisviz/pkg/dataprep"
)

// TrendLine plots column against the record index 0..N-1.
func TrendLine(ds *data.Dataset, column string) LineSpec {
	y := ds.Values(column)
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	name := shortName(column)
	return LineSpec{
		Header: Header{
			Slug:   slug(column) + "_trend",
			Title:  name + " Trend Across Samples",
			XLabel: "Sample Index",
			YLabel: axisLabel(column),
		},
		Name: name,
		X:    x,
		Y:    y,
	}
}

// CategoryBars plots the mean of column per category.
func CategoryBars(ds *data.Dataset, column string) (BarSpec, error) {
	means, err := analysis.CategoryMeans(ds, column)
	if err != nil {
		return BarSpec{}, err
	}
	s := BarSpec{
		Header: Header{
			Slug:   slug(column) + "_by_species",
			Title:  "Average " + shortName(column) + " per Species",
			XLabel: "Species",
			YLabel: axisLabel(column),
		},
		Labels: make([]string, len(means)),
		Values: make([]float64, len(means)),
	}
	for i, m := range means {
		s.Labels[i] = m.Category
		s.Values[i] = m.Mean
	}
	return s, nil
}

// Histogram plots the distribution of column over bins equal-width bins.
func Histogram(ds *data.Dataset, column string, bins int) HistogramSpec {
	values := ds.Values(column)
	edges, counts := dataprep.BinContinuous(values, bins)
	return HistogramSpec{
		Header: Header{
			Slug:   slug(column) + "_hist",
			Title:  "Distribution of " + shortName(column),
			XLabel: axisLabel(column),
			YLabel: "Frequency",
		},
		Values: values,
		Bins:   bins,
		Edges:  edges,
		Counts: counts,
	}
}

// ScatterByCategory plots xcol against ycol, one group per category in
// lookup-table order.
func ScatterByCategory(ds *data.Dataset, xcol, ycol string) (ScatterSpec, error) {
	cats := ds.Categories()
	if cats == nil {
		return ScatterSpec{}, fmt.Errorf("scatter: dataset has no %s column", data.Species)
	}
	xs, ys := ds.Values(xcol), ds.Values(ycol)

	s := ScatterSpec{
		Header: Header{
			Slug:   slug(xcol) + "_vs_" + slug(ycol),
			Title:  shortName(xcol) + " vs " + shortName(ycol) + " by Species",
			XLabel: axisLabel(xcol),
			YLabel: axisLabel(ycol),
		},
		LegendTitle: "Species",
	}
	for _, name := range ds.TargetNames {
		g := ScatterGroup{Name: name}
		for i, c := range cats {
			if c == name {
				g.X = append(g.X, xs[i])
				g.Y = append(g.Y, ys[i])
			}
		}
		if len(g.X) > 0 {
			s.Groups = append(s.Groups, g)
		}
	}
	return s, nil
}

// Standard builds the four report charts from an enriched dataset.
func Standard(ds *data.Dataset, bins int) ([]Spec, error) {
	bars, err := CategoryBars(ds, data.PetalLength)
	if err != nil {
		return nil, err
	}
	scatter, err := ScatterByCategory(ds, data.SepalLength, data.PetalLength)
	if err != nil {
		return nil, err
	}
	return []Spec{
		TrendLine(ds, data.SepalLength),
		bars,
		Histogram(ds, data.SepalWidth, bins),
		scatter,
	}, nil
}

// shortName turns "sepal length (cm)" into "Sepal Length".
func shortName(column string) string {
	name, _, _ := strings.Cut(column, " (")
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// axisLabel keeps the unit: "sepal length (cm)" becomes "Sepal Length (cm)".
func axisLabel(column string) string {
	if _, unit, ok := strings.Cut(column, " ("); ok {
		return shortName(column) + " (" + unit
	}
	return shortName(column)
}

// slug turns "sepal length (cm)" into "sepal_length".
func slug(column string) string {
	return strings.ReplaceAll(strings.ToLower(shortName(column)), " ", "_")
}
