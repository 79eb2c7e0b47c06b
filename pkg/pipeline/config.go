package pipeline

import (
	"errors"
	"fmt"

	"irisviz/pkg/chart"
)

// Config holds the knobs of a run. DefaultConfig reproduces the reference report.
type Config struct {
	OutDir   string  // where chart files are written
	Backend  string  // chart.BackendGonum or chart.BackendGoChart
	Bins     int     // histogram bin count
	Width    float64 // figure width, inches
	Height   float64 // figure height, inches
	HeadRows int     // records shown by the inspector
}

// DefaultConfig returns the hardcoded defaults.
func DefaultConfig() Config {
	return Config{
		OutDir:   "charts",
		Backend:  chart.BackendGonum,
		Bins:     15,
		Width:    8,
		Height:   5,
		HeadRows: 5,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.OutDir == "":
		return errors.New("config: output directory is empty")
	case c.Backend != chart.BackendGonum && c.Backend != chart.BackendGoChart:
		return fmt.Errorf("config: %w: %q", chart.ErrUnknownBackend, c.Backend)
	case c.Bins <= 0:
		return fmt.Errorf("config: bins must be positive, got %d", c.Bins)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: figure size must be positive, got %gx%g", c.Width, c.Height)
	case c.HeadRows < 0:
		return fmt.Errorf("config: head rows must not be negative, got %d", c.HeadRows)
	}
	return nil
}
