package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"
)

var (
	// ErrUnknownBackend is returned by NewBackend for an unrecognized name.
	ErrUnknownBackend = errors.New("unknown chart backend")
	// ErrUnsupportedSpec is returned when a backend cannot draw a spec type.
	ErrUnsupportedSpec = errors.New("unsupported chart spec")
)

// Backend names accepted by NewBackend.
const (
	BackendGonum   = "gonum"
	BackendGoChart = "gochart"
)

// pixelsPerInch converts figure inches for the raster-only go-chart backend.
const pixelsPerInch = 100

// Backend draws one chart as PNG.
type Backend interface {
	Render(w io.Writer, spec Spec) error
}

// NewBackend returns the named backend sized in inches.
func NewBackend(name string, width, height float64) (Backend, error) {
	switch name {
	case BackendGonum:
		return Gonum{Width: vg.Length(width) * vg.Inch, Height: vg.Length(height) * vg.Inch}, nil
	case BackendGoChart:
		return GoChart{Width: int(width * pixelsPerInch), Height: int(height * pixelsPerInch)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
