// Package analysis computes the descriptive statistics and group aggregates
// reported by the pipeline.
package analysis

import (
	"fmt"
	"slices"

	"irisviz/pkg/data"
	"irisviz/pkg/stats"
)

// ColumnSummary is the summary of one numeric column.
type ColumnSummary struct {
	Column string
	stats.Summary
}

// SummaryStatistics holds one summary per numeric column, in table order.
type SummaryStatistics []ColumnSummary

// Get returns the summary for column.
func (s SummaryStatistics) Get(column string) (stats.Summary, bool) {
	for _, c := range s {
		if c.Column == column {
			return c.Summary, true
		}
	}
	return stats.Summary{}, false
}

// Describe summarizes every feature column of ds.
func Describe(ds *data.Dataset) SummaryStatistics {
	out := make(SummaryStatistics, 0, len(data.FeatureColumns))
	for _, col := range data.FeatureColumns {
		out = append(out, ColumnSummary{Column: col, Summary: stats.Describe(ds.Values(col))})
	}
	return out
}

// GroupedMeans maps each label to the per-column means of its records.
type GroupedMeans struct {
	Columns []string
	Means   map[int][]float64
}

// Labels returns the group keys in ascending order.
func (g GroupedMeans) Labels() []int {
	keys := make([]int, 0, len(g.Means))
	for k := range g.Means {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Mean returns the mean of column within the label group.
func (g GroupedMeans) Mean(label int, column string) (float64, bool) {
	row, ok := g.Means[label]
	if !ok {
		return 0, false
	}
	i := slices.Index(g.Columns, column)
	if i < 0 {
		return 0, false
	}
	return row[i], true
}

// GroupMeans averages every feature column per integer label.
func GroupMeans(ds *data.Dataset) (GroupedMeans, error) {
	labels, err := ds.Labels()
	if err != nil {
		return GroupedMeans{}, err
	}

	groups := map[int][]int{}
	for i, l := range labels {
		groups[l] = append(groups[l], i)
	}

	g := GroupedMeans{
		Columns: slices.Clone(data.FeatureColumns),
		Means:   make(map[int][]float64, len(groups)),
	}
	for l := range groups {
		g.Means[l] = make([]float64, len(g.Columns))
	}
	for j, col := range g.Columns {
		values := ds.Values(col)
		for l, rows := range groups {
			g.Means[l][j] = stats.Mean(pick(values, rows))
		}
	}
	return g, nil
}

// CategoryMean is the mean of one column within one category.
type CategoryMean struct {
	Category string
	Mean     float64
}

// CategoryMeans averages column per category, in lookup-table order.
// Categories with no records are omitted. ds must carry the species column.
func CategoryMeans(ds *data.Dataset, column string) ([]CategoryMean, error) {
	cats := ds.Categories()
	if cats == nil {
		return nil, fmt.Errorf("category means: dataset has no %s column", data.Species)
	}

	values := ds.Values(column)
	out := make([]CategoryMean, 0, len(ds.TargetNames))
	for _, name := range ds.TargetNames {
		var rows []int
		for i, c := range cats {
			if c == name {
				rows = append(rows, i)
			}
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, CategoryMean{Category: name, Mean: stats.Mean(pick(values, rows))})
	}
	return out, nil
}

func pick(values []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = values[r]
	}
	return out
}
