// Package pipeline runs the analysis report: load, inspect, clean,
// aggregate, enrich and chart.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"irisviz/pkg/analysis"
	"irisviz/pkg/chart"
	"irisviz/pkg/data"
	"irisviz/pkg/dataprep"
	"irisviz/pkg/inspect"

	"go.uber.org/zap"
)

// Presenter shows one chart to the user and reports where it went.
type Presenter interface {
	Present(spec chart.Spec) (string, error)
}

// Analysis wires the stages of one run.
type Analysis struct {
	Provider  data.Provider
	Presenter Presenter
	Config    Config
	Out       io.Writer
	Logger    *zap.Logger
}

// Report is what a completed run produced.
type Report struct {
	Loaded   int
	Cleaned  *data.Dataset
	Summary  analysis.SummaryStatistics
	Grouped  analysis.GroupedMeans
	Enriched *data.Dataset
	Charts   []string
}

// New returns an Analysis over the bundled dataset writing charts to
// cfg.OutDir with the configured backend.
func New(cfg Config, out io.Writer, logger *zap.Logger) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	backend, err := chart.NewBackend(cfg.Backend, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analysis{
		Provider:  data.Iris{},
		Presenter: chart.NewFileRenderer(cfg.OutDir, backend, logger),
		Config:    cfg,
		Out:       out,
		Logger:    logger,
	}, nil
}

// Run executes every stage in order. A dataset that fails to load is
// reported on Out and ends the run early with a nil Report and nil error.
func (a *Analysis) Run(ctx context.Context) (*Report, error) {
	out := a.Out
	if out == nil {
		out = os.Stdout
	}
	log := a.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fmt.Fprintln(out, "=== Iris Data Analysis ===")
	fmt.Fprintln(out)

	// ---- Load ----
	ds, err := a.Provider.Load(ctx)
	if err != nil {
		log.Error("dataset load failed", zap.Error(err))
		fmt.Fprintf(out, "Error loading dataset: %v\n", err)
		return nil, nil
	}
	fmt.Fprintln(out, "Dataset loaded successfully.")
	log.Info("dataset loaded", zap.Int("records", ds.Len()), zap.Int("columns", len(ds.Columns())))
	report := &Report{Loaded: ds.Len()}

	// ---- Inspect ----
	fmt.Fprintf(out, "\nFirst %d rows of dataset:\n", a.Config.HeadRows)
	if err := inspect.PrintHead(out, ds, a.Config.HeadRows); err != nil {
		return nil, fmt.Errorf("print head: %w", err)
	}
	fmt.Fprintln(out, "\nDataset Info:")
	if err := inspect.PrintInfo(out, ds); err != nil {
		return nil, fmt.Errorf("print info: %w", err)
	}
	fmt.Fprintln(out, "\nMissing values per column:")
	if err := inspect.PrintMissing(out, ds); err != nil {
		return nil, fmt.Errorf("print missing: %w", err)
	}

	// ---- Clean ----
	report.Cleaned = dataprep.DropMissing(ds)
	if dropped := ds.Len() - report.Cleaned.Len(); dropped > 0 {
		log.Warn("dropped records with missing values", zap.Int("dropped", dropped))
	}

	// ---- Aggregate ----
	report.Summary = analysis.Describe(report.Cleaned)
	fmt.Fprintln(out, "\nBasic Statistics:")
	if err := printSummary(out, report.Summary); err != nil {
		return nil, fmt.Errorf("print statistics: %w", err)
	}

	report.Grouped, err = analysis.GroupMeans(report.Cleaned)
	if err != nil {
		return nil, fmt.Errorf("group means: %w", err)
	}
	fmt.Fprintln(out, "\nMean values grouped by species:")
	if err := printGrouped(out, report.Grouped); err != nil {
		return nil, fmt.Errorf("print grouped means: %w", err)
	}

	// ---- Enrich ----
	report.Enriched, err = dataprep.MapCategories(report.Cleaned)
	if err != nil {
		return nil, fmt.Errorf("map categories: %w", err)
	}
	petal, err := analysis.CategoryMeans(report.Enriched, data.PetalLength)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, observation(petal))

	// ---- Chart ----
	specs, err := chart.Standard(report.Enriched, a.Config.Bins)
	if err != nil {
		return nil, fmt.Errorf("build charts: %w", err)
	}
	fmt.Fprintln(out)
	var errs []error
	for _, spec := range specs {
		path, err := a.Presenter.Present(spec)
		if err != nil {
			log.Error("chart failed", zap.String("chart", spec.Meta().Slug), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		report.Charts = append(report.Charts, path)
		fmt.Fprintf(out, "Saved %q to %s\n", spec.Meta().Title, path)
	}
	if err := errors.Join(errs...); err != nil {
		return report, err
	}

	fmt.Fprintf(out, "\n=== Analysis complete. %d charts written. ===\n", len(report.Charts))
	log.Info("analysis complete", zap.Int("charts", len(report.Charts)))
	return report, nil
}

func printSummary(w io.Writer, s analysis.SummaryStatistics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := make([]string, len(s))
	for i, c := range s {
		header[i] = c.Column
	}
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(header, "\t"))

	rows := []struct {
		name string
		get  func(c analysis.ColumnSummary) float64
	}{
		{"count", func(c analysis.ColumnSummary) float64 { return float64(c.Count) }},
		{"mean", func(c analysis.ColumnSummary) float64 { return c.Mean }},
		{"std", func(c analysis.ColumnSummary) float64 { return c.Std }},
		{"min", func(c analysis.ColumnSummary) float64 { return c.Min }},
		{"25%", func(c analysis.ColumnSummary) float64 { return c.Q25 }},
		{"50%", func(c analysis.ColumnSummary) float64 { return c.Q50 }},
		{"75%", func(c analysis.ColumnSummary) float64 { return c.Q75 }},
		{"max", func(c analysis.ColumnSummary) float64 { return c.Max }},
	}
	for _, r := range rows {
		fmt.Fprint(tw, r.name)
		for _, c := range s {
			fmt.Fprintf(tw, "\t%.6f", r.get(c))
		}
		fmt.Fprintln(tw, "\t")
	}
	return tw.Flush()
}

func printGrouped(w io.Writer, g analysis.GroupedMeans) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t\n", data.Target, strings.Join(g.Columns, "\t"))
	for _, l := range g.Labels() {
		fmt.Fprintf(tw, "%d", l)
		for _, m := range g.Means[l] {
			fmt.Fprintf(tw, "\t%.3f", m)
		}
		fmt.Fprintln(tw, "\t")
	}
	return tw.Flush()
}

// observation names the category with the shortest petals against the rest.
func observation(petal []analysis.CategoryMean) string {
	var b strings.Builder
	b.WriteString("Observation: Petal dimensions (length & width) clearly separate species.\n")
	if len(petal) < 2 {
		return b.String()
	}

	low := 0
	for i, m := range petal {
		if m.Mean < petal[low].Mean {
			low = i
		}
	}
	var others []string
	for i, m := range petal {
		if i != low {
			others = append(others, fmt.Sprintf("%s %.2f cm", m.Category, m.Mean))
		}
	}
	fmt.Fprintf(&b, "Mean petal length: %s vs %s %.2f cm.\n",
		strings.Join(others, ", "), petal[low].Category, petal[low].Mean)
	return b.String()
}
