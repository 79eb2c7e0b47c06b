// Package inspect prints read-only views of a dataset: the leading records,
// its structure and its missing values.
package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"irisviz/pkg/data"
	"irisviz/pkg/dataprep"

	"github.com/go-gota/gota/series"
)

// Head returns the first n records (fewer if the dataset is shorter).
func Head(ds *data.Dataset, n int) ([]data.Record, error) {
	recs, err := ds.Records()
	if err != nil {
		return nil, err
	}
	if n > len(recs) {
		n = len(recs)
	}
	return recs[:n], nil
}

// PrintHead writes the first n rows as an indexed table.
func PrintHead(w io.Writer, ds *data.Dataset, n int) error {
	if n > ds.Len() {
		n = ds.Len()
	}
	names := ds.Columns()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(names, "\t"))
	for i := 0; i < n; i++ {
		cells := make([]string, len(names))
		for j, name := range names {
			cells[j] = cell(ds.Frame.Col(name), i)
		}
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// PrintInfo writes the structural summary: entries, columns, non-null counts, dtypes.
func PrintInfo(w io.Writer, ds *data.Dataset) error {
	s := ds.Schema()
	n := ds.Len()

	fmt.Fprintln(w, "<Dataset>")
	if n > 0 {
		fmt.Fprintf(w, "RangeIndex: %d entries, 0 to %d\n", n, n-1)
	} else {
		fmt.Fprintln(w, "RangeIndex: 0 entries")
	}
	fmt.Fprintf(w, "Data columns (total %d columns):\n", len(s.FeatureNames))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tDtype")
	for i, name := range s.FeatureNames {
		fmt.Fprintf(tw, " %d\t%s\t%d non-null\t%s\n", i, name, s.NonNull[i], s.Types[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	counts := map[string]int{}
	var order []string
	for _, t := range s.Types {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	parts := make([]string, len(order))
	for i, t := range order {
		parts[i] = fmt.Sprintf("%s(%d)", t, counts[t])
	}
	_, err := fmt.Fprintf(w, "dtypes: %s\n", strings.Join(parts, ", "))
	return err
}

// PrintMissing writes the per-column count of missing values.
func PrintMissing(w io.Writer, ds *data.Dataset) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range dataprep.MissingCounts(ds) {
		fmt.Fprintf(tw, "%s\t%d\n", c.Column, c.Count)
	}
	return tw.Flush()
}

func cell(s series.Series, i int) string {
	e := s.Elem(i)
	if e.IsNA() {
		return "NaN"
	}
	if s.Type() == series.Float {
		return strconv.FormatFloat(e.Float(), 'f', 1, 64)
	}
	return e.String()
}
