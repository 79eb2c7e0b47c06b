package chart

import (
	"context"
	"testing"

	"irisviz/pkg/data"
	"irisviz/pkg/dataprep"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrichedIris(t *testing.T) *data.Dataset {
	t.Helper()
	ds, err := data.Iris{}.Load(context.Background())
	require.NoError(t, err)
	ds, err = dataprep.MapCategories(dataprep.DropMissing(ds))
	require.NoError(t, err)
	return ds
}

func TestTrendLine(t *testing.T) {
	ds := enrichedIris(t)
	s := TrendLine(ds, data.SepalLength)

	assert.Equal(t, "sepal_length_trend", s.Slug)
	assert.Equal(t, "Sepal Length Trend Across Samples", s.Title)
	assert.Equal(t, "Sample Index", s.XLabel)
	assert.Equal(t, "Sepal Length (cm)", s.YLabel)
	require.Len(t, s.X, 150)
	require.Len(t, s.Y, 150)
	assert.Equal(t, 0.0, s.X[0])
	assert.Equal(t, 149.0, s.X[149])
	assert.Equal(t, ds.Values(data.SepalLength), s.Y)
}

func TestCategoryBars(t *testing.T) {
	s, err := CategoryBars(enrichedIris(t), data.PetalLength)
	require.NoError(t, err)

	assert.Equal(t, "Average Petal Length per Species", s.Title)
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, s.Labels)
	require.Len(t, s.Values, 3)
	assert.InDelta(t, 1.462, s.Values[0], 1e-9)
	assert.Less(t, s.Values[0], s.Values[1])
	assert.Less(t, s.Values[0], s.Values[2])
}

func TestCategoryBarsNeedsSpecies(t *testing.T) {
	ds, err := data.Iris{}.Load(context.Background())
	require.NoError(t, err)

	_, err = CategoryBars(ds, data.PetalLength)
	assert.Error(t, err)
}

func TestHistogram(t *testing.T) {
	s := Histogram(enrichedIris(t), data.SepalWidth, 15)

	assert.Equal(t, "Distribution of Sepal Width", s.Title)
	assert.Equal(t, "Frequency", s.YLabel)
	assert.Equal(t, 15, s.Bins)
	require.Len(t, s.Edges, 16)
	total := 0
	for _, c := range s.Counts {
		total += c
	}
	assert.Equal(t, 150, total)
}

func TestScatterByCategory(t *testing.T) {
	s, err := ScatterByCategory(enrichedIris(t), data.SepalLength, data.PetalLength)
	require.NoError(t, err)

	assert.Equal(t, "sepal_length_vs_petal_length", s.Slug)
	assert.Equal(t, "Sepal Length vs Petal Length by Species", s.Title)
	assert.Equal(t, "Species", s.LegendTitle)
	require.Len(t, s.Groups, 3)
	for i, g := range s.Groups {
		assert.Equal(t, data.IrisTargetNames[i], g.Name)
		assert.Len(t, g.X, 50)
		assert.Len(t, g.Y, 50)
	}
	assert.Equal(t, 7.0, s.Groups[1].X[0])
	assert.Equal(t, 4.7, s.Groups[1].Y[0])
}

func TestStandard(t *testing.T) {
	specs, err := Standard(enrichedIris(t), 15)
	require.NoError(t, err)
	require.Len(t, specs, 4)

	assert.IsType(t, LineSpec{}, specs[0])
	assert.IsType(t, BarSpec{}, specs[1])
	assert.IsType(t, HistogramSpec{}, specs[2])
	assert.IsType(t, ScatterSpec{}, specs[3])

	seen := map[string]bool{}
	for _, s := range specs {
		slug := s.Meta().Slug
		assert.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Petal Width", shortName(data.PetalWidth))
	assert.Equal(t, "Petal Width (cm)", axisLabel(data.PetalWidth))
	assert.Equal(t, "petal_width", slug(data.PetalWidth))
	assert.Equal(t, "Target", axisLabel(data.Target))
}
