package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/repotext/internal/domain"
	"github.com/quantmind-br/repotext/internal/utils"
)

// Writer persists the aggregated artifact
type Writer struct {
	baseDir string
	dryRun  bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	BaseDir string
	DryRun  bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.BaseDir == "" {
		opts.BaseDir = "."
	}

	return &Writer{
		baseDir: utils.ExpandPath(opts.BaseDir),
		dryRun:  opts.DryRun,
	}
}

// Path returns where an artifact named name is written. Absolute names are
// used as is.
func (w *Writer) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.baseDir, name)
}

// WriteArtifact writes content to name under the base directory, replacing
// any existing file. An empty content still produces an (empty) file.
func (w *Writer) WriteArtifact(ctx context.Context, name, content string) (string, error) {
	if name == "" {
		return "", domain.ErrOutputNameUnresolved
	}
	path := w.Path(name)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if w.dryRun {
		return path, nil
	}

	if err := utils.EnsureDir(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrWriteFailed, path, err)
	}

	return path, nil
}
