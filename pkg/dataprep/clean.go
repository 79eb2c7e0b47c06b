package dataprep

import (
	"irisviz/pkg/data"
)

// ColumnCount pairs a column name with a count.
type ColumnCount struct {
	Column string
	Count  int
}

// MissingCounts returns the number of missing cells per column, in table order.
func MissingCounts(ds *data.Dataset) []ColumnCount {
	names := ds.Columns()
	out := make([]ColumnCount, len(names))
	for i, name := range names {
		out[i].Column = name
		for _, nan := range ds.Frame.Col(name).IsNaN() {
			if nan {
				out[i].Count++
			}
		}
	}
	return out
}

// DropMissing removes every record with a missing value in any column.
// Row order is preserved; a dataset without missing values is returned as is.
func DropMissing(ds *data.Dataset) *data.Dataset {
	n := ds.Len()
	missing := make([]bool, n)
	for _, name := range ds.Columns() {
		for i, nan := range ds.Frame.Col(name).IsNaN() {
			if nan {
				missing[i] = true
			}
		}
	}

	keep := make([]int, 0, n)
	for i, m := range missing {
		if !m {
			keep = append(keep, i)
		}
	}
	if len(keep) == n {
		return ds
	}
	return ds.WithFrame(ds.Frame.Subset(keep))
}
