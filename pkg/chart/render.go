package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileRenderer presents charts by writing each one to Dir/<slug>.png.
type FileRenderer struct {
	Dir     string
	Backend Backend
	Logger  *zap.Logger
}

// NewFileRenderer returns a renderer writing into dir. A nil logger is replaced by a no-op one.
func NewFileRenderer(dir string, backend Backend, logger *zap.Logger) *FileRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRenderer{Dir: dir, Backend: backend, Logger: logger}
}

// Present renders spec and returns the written file path.
func (r *FileRenderer) Present(spec Spec) (string, error) {
	slug := spec.Meta().Slug
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}

	path := filepath.Join(r.Dir, slug+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.Backend.Render(f, spec); err != nil {
		f.Close()
		return "", fmt.Errorf("render %s: %w", slug, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	r.Logger.Debug("chart written", zap.String("chart", slug), zap.String("path", path))
	return path, nil
}
