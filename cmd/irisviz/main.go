package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"irisviz/pkg/chart"
	"irisviz/pkg/pipeline"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := pipeline.DefaultConfig()
	var (
		verbose bool
		logger  *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "irisviz",
		Short: "Describe the Iris dataset and chart it",
		Long: `irisviz loads the bundled Iris table (150 records, 4 measurements, 3 species),
prints its first rows, structure, missing values, descriptive statistics and
per-species means, then writes four charts:

  - sepal length trend across samples (line)
  - average petal length per species (bar)
  - distribution of sepal width (histogram, 15 bins)
  - sepal length vs petal length by species (scatter)

Run without flags for the default report.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, cfg, logger)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&cfg.OutDir, "out", "o", cfg.OutDir, "Directory the chart PNGs are written to")
	cmd.Flags().StringVar(&cfg.Backend, "backend", cfg.Backend, fmt.Sprintf("Chart backend: %s or %s", chart.BackendGonum, chart.BackendGoChart))
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, cfg pipeline.Config, logger *zap.Logger) error {
	a, err := pipeline.New(cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	_, err = a.Run(cmd.Context())
	return err
}
