package data

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

//go:embed iris.csv
var irisCSV []byte

// IrisTargetNames maps label 0, 1, 2 to the species name.
var IrisTargetNames = []string{"setosa", "versicolor", "virginica"}

// ErrNoRows is returned when a source yields a header but no records.
var ErrNoRows = errors.New("dataset has no rows")

// Provider supplies the dataset the pipeline runs on.
type Provider interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Iris is the bundled provider: 150 records, 4 features, 3 classes.
type Iris struct{}

// Load parses the embedded table.
func (Iris) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadCSV(bytes.NewReader(irisCSV), IrisTargetNames)
}

// ReadCSV parses a table with the four feature columns and an integer target.
// Cells that are empty, "NA" or "NaN" load as missing values.
func ReadCSV(r io.Reader, targetNames []string) (*Dataset, error) {
	types := map[string]series.Type{Target: series.Int}
	for _, c := range FeatureColumns {
		types[c] = series.Float
	}

	df := dataframe.ReadCSV(r, dataframe.WithTypes(types))
	if df.Err != nil {
		return nil, fmt.Errorf("parse csv: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return nil, ErrNoRows
	}

	names := df.Names()
	for c := range types {
		if !slices.Contains(names, c) {
			return nil, fmt.Errorf("parse csv: missing column %q", c)
		}
	}

	return &Dataset{Frame: df, TargetNames: slices.Clone(targetNames)}, nil
}
