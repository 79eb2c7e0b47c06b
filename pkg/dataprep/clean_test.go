package dataprep

import (
	"context"
	"strings"
	"testing"

	"irisviz/pkg/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dirtyCSV = `sepal length (cm),sepal width (cm),petal length (cm),petal width (cm),target
5.1,3.5,1.4,0.2,0
NA,3.0,1.4,0.2,0
7.0,3.2,4.7,1.4,1
6.3,,6.0,2.5,2
5.9,3.0,5.1,1.8,NA
6.5,3.0,5.2,2.0,2
`

func loadIris(t *testing.T) *data.Dataset {
	t.Helper()
	ds, err := data.Iris{}.Load(context.Background())
	require.NoError(t, err)
	return ds
}

func loadDirty(t *testing.T) *data.Dataset {
	t.Helper()
	ds, err := data.ReadCSV(strings.NewReader(dirtyCSV), data.IrisTargetNames)
	require.NoError(t, err)
	return ds
}

func TestMissingCounts(t *testing.T) {
	got := MissingCounts(loadDirty(t))
	assert.Equal(t, []ColumnCount{
		{Column: data.SepalLength, Count: 1},
		{Column: data.SepalWidth, Count: 1},
		{Column: data.PetalLength, Count: 0},
		{Column: data.PetalWidth, Count: 0},
		{Column: data.Target, Count: 1},
	}, got)
}

func TestDropMissing(t *testing.T) {
	ds := loadDirty(t)
	cleaned := DropMissing(ds)

	require.Equal(t, 3, cleaned.Len())
	assert.Equal(t, 6, ds.Len(), "input must not change")
	assert.Equal(t, []float64{5.1, 7.0, 6.5}, cleaned.Values(data.SepalLength))
	for _, c := range MissingCounts(cleaned) {
		assert.Zero(t, c.Count, c.Column)
	}
}

func TestDropMissingIdempotent(t *testing.T) {
	once := DropMissing(loadDirty(t))
	twice := DropMissing(once)

	assert.Equal(t, once.Len(), twice.Len())
	for _, col := range once.Columns() {
		assert.Equal(t, once.Frame.Col(col).Records(), twice.Frame.Col(col).Records(), col)
	}
}

func TestDropMissingNoopOnIris(t *testing.T) {
	ds := loadIris(t)
	cleaned := DropMissing(ds)

	assert.Equal(t, 150, cleaned.Len())
	assert.Same(t, ds, cleaned)
}
