package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"irisviz/pkg/analysis"
	"irisviz/pkg/chart"
	"irisviz/pkg/data"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingProvider struct{ err error }

func (p failingProvider) Load(context.Context) (*data.Dataset, error) { return nil, p.err }

type recordingPresenter struct {
	specs []chart.Spec
	fail  map[string]error
}

func (p *recordingPresenter) Present(spec chart.Spec) (string, error) {
	p.specs = append(p.specs, spec)
	if err := p.fail[spec.Meta().Slug]; err != nil {
		return "", err
	}
	return "mem://" + spec.Meta().Slug, nil
}

func newTestAnalysis(p data.Provider, pr Presenter) (*Analysis, *bytes.Buffer) {
	var out bytes.Buffer
	return &Analysis{
		Provider:  p,
		Presenter: pr,
		Config:    DefaultConfig(),
		Out:       &out,
		Logger:    zap.NewNop(),
	}, &out
}

func TestRunLoadFailureStopsEarly(t *testing.T) {
	pr := &recordingPresenter{}
	a, out := newTestAnalysis(failingProvider{err: errors.New("provider unavailable")}, pr)

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report)
	assert.Empty(t, pr.specs, "no chart may be rendered")

	text := out.String()
	assert.Contains(t, text, "Error loading dataset: provider unavailable")
	assert.NotContains(t, text, "Basic Statistics")
	assert.NotContains(t, text, "First 5 rows")
}

func TestRunFullReport(t *testing.T) {
	pr := &recordingPresenter{}
	a, out := newTestAnalysis(data.Iris{}, pr)

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, 150, report.Loaded)
	assert.Equal(t, 150, report.Cleaned.Len())
	require.Len(t, report.Summary, 4)
	for _, c := range report.Summary {
		assert.Equal(t, report.Cleaned.Len(), c.Count)
		assert.True(t, c.Ordered(), c.Column)
	}
	assert.Equal(t, []int{0, 1, 2}, report.Grouped.Labels())
	assert.True(t, report.Enriched.Has(data.Species))

	require.Len(t, pr.specs, 4)
	assert.Len(t, report.Charts, 4)

	text := out.String()
	for _, section := range []string{
		"Dataset loaded successfully.",
		"First 5 rows of dataset:",
		"Dataset Info:",
		"Missing values per column:",
		"Basic Statistics:",
		"Mean values grouped by species:",
		"Observation:",
		"Analysis complete. 4 charts written.",
	} {
		assert.Contains(t, text, section)
	}
	assert.Contains(t, text, "vs setosa 1.46 cm")
}

func TestRunRendersRemainingChartsAfterFailure(t *testing.T) {
	boom := errors.New("no display")
	pr := &recordingPresenter{fail: map[string]error{"petal_length_by_species": boom}}
	a, out := newTestAnalysis(data.Iris{}, pr)

	report, err := a.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, report)
	assert.Len(t, pr.specs, 4)
	assert.Len(t, report.Charts, 3)
	assert.NotContains(t, out.String(), "Analysis complete")
}

func TestNewWritesChartFiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutDir = filepath.Join(t.TempDir(), "out")
	cfg.Width, cfg.Height = 4, 2.5

	var out bytes.Buffer
	a, err := New(cfg, &out, nil)
	require.NoError(t, err)

	report, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Charts, 4)
	for _, p := range report.Charts {
		assert.True(t, strings.HasPrefix(p, cfg.OutDir))
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend = "svgz"

	_, err := New(cfg, nil, nil)
	assert.ErrorIs(t, err, chart.ErrUnknownBackend)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty out dir", func(c *Config) { c.OutDir = "" }},
		{"zero bins", func(c *Config) { c.Bins = 0 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"negative head", func(c *Config) { c.HeadRows = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestObservation(t *testing.T) {
	got := observation([]analysis.CategoryMean{
		{Category: "setosa", Mean: 1.462},
		{Category: "versicolor", Mean: 4.26},
		{Category: "virginica", Mean: 5.552},
	})
	assert.Contains(t, got, "versicolor 4.26 cm, virginica 5.55 cm vs setosa 1.46 cm")

	assert.NotContains(t, observation(nil), "Mean petal length")
}
