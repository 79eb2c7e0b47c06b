package dataprep

import (
	"errors"
	"fmt"

	"irisviz/pkg/data"

	"github.com/go-gota/gota/series"
)

// ErrUnknownLabel is returned for a label with no entry in the lookup table.
var ErrUnknownLabel = errors.New("label has no category name")

// MapCategories appends the species column, species[i] = TargetNames[target[i]].
// The input dataset is left untouched.
func MapCategories(ds *data.Dataset) (*data.Dataset, error) {
	labels, err := ds.Labels()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(labels))
	for i, l := range labels {
		if l < 0 || l >= len(ds.TargetNames) {
			return nil, fmt.Errorf("record %d: label %d: %w", i, l, ErrUnknownLabel)
		}
		names[i] = ds.TargetNames[l]
	}

	frame := ds.Frame.Mutate(series.New(names, series.String, data.Species))
	if frame.Err != nil {
		return nil, fmt.Errorf("add %s column: %w", data.Species, frame.Err)
	}
	return ds.WithFrame(frame), nil
}
