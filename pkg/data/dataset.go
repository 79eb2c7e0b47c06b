package data

import (
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"
)

// Column names of the bundled table, as published by the provider.
const (
	SepalLength = "sepal length (cm)"
	SepalWidth  = "sepal width (cm)"
	PetalLength = "petal length (cm)"
	PetalWidth  = "petal width (cm)"
	Target      = "target"
	Species     = "species"
)

// FeatureColumns lists the numeric measurement columns in table order.
var FeatureColumns = []string{SepalLength, SepalWidth, PetalLength, PetalWidth}

// NoLabel is the Record.Label of a sample whose target cell is missing.
const NoLabel = -1

// Record represents a single sample. Missing measurements are NaN.
type Record struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
	Label       int // NoLabel when the target is missing
	Category    string // empty until the species column is derived
}

// Dataset is the in-memory table plus the ordered label → name lookup.
type Dataset struct {
	Frame       dataframe.DataFrame
	TargetNames []string
}

// Len returns the number of records.
func (d *Dataset) Len() int { return d.Frame.Nrow() }

// Columns returns the column names in table order.
func (d *Dataset) Columns() []string { return d.Frame.Names() }

// Has reports whether the table carries the named column.
func (d *Dataset) Has(col string) bool { return slices.Contains(d.Frame.Names(), col) }

// Values returns a numeric column as float64 (missing cells are NaN).
func (d *Dataset) Values(col string) []float64 { return d.Frame.Col(col).Float() }

// Labels returns the integer target column.
func (d *Dataset) Labels() ([]int, error) {
	labels, err := d.Frame.Col(Target).Int()
	if err != nil {
		return nil, fmt.Errorf("read %s column: %w", Target, err)
	}
	return labels, nil
}

// Categories returns the derived species column, or nil before enrichment.
func (d *Dataset) Categories() []string {
	if !d.Has(Species) {
		return nil
	}
	return d.Frame.Col(Species).Records()
}

// WithFrame returns a Dataset sharing the lookup table but holding frame.
func (d *Dataset) WithFrame(frame dataframe.DataFrame) *Dataset {
	return &Dataset{Frame: frame, TargetNames: d.TargetNames}
}

// Records materializes the table as typed records. Unlike Labels it accepts
// missing cells, so it also works on data that has not been cleaned yet.
func (d *Dataset) Records() ([]Record, error) {
	target := d.Frame.Col(Target)
	if target.Err != nil {
		return nil, fmt.Errorf("read %s column: %w", Target, target.Err)
	}
	sl, sw := d.Values(SepalLength), d.Values(SepalWidth)
	pl, pw := d.Values(PetalLength), d.Values(PetalWidth)
	cats := d.Categories()

	out := make([]Record, d.Len())
	for i := range out {
		out[i] = Record{
			SepalLength: sl[i],
			SepalWidth:  sw[i],
			PetalLength: pl[i],
			PetalWidth:  pw[i],
			Label:       NoLabel,
		}
		if e := target.Elem(i); !e.IsNA() {
			l, err := e.Int()
			if err != nil {
				return nil, fmt.Errorf("record %d: %s: %w", i, Target, err)
			}
			out[i].Label = l
		}
		if cats != nil {
			out[i].Category = cats[i]
		}
	}
	return out, nil
}
