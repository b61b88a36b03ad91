package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repotext/internal/domain"
)

// TestNewWriter tests creating a new writer
func TestNewWriter(t *testing.T) {
	tests := []struct {
		name  string
		opts  WriterOptions
		check func(t *testing.T, w *Writer)
	}{
		{
			name: "with all options",
			opts: WriterOptions{BaseDir: "./out", DryRun: true},
			check: func(t *testing.T, w *Writer) {
				assert.Equal(t, "./out", w.baseDir)
				assert.True(t, w.dryRun)
			},
		},
		{
			name: "with empty base dir uses cwd",
			opts: WriterOptions{},
			check: func(t *testing.T, w *Writer) {
				assert.Equal(t, ".", w.baseDir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewWriter(tt.opts))
		})
	}
}

func TestWriter_WriteArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("writes content", func(t *testing.T) {
		dir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: dir})

		path, err := w.WriteArtifact(ctx, "acme_widgets.txt", "hello")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "acme_widgets.txt"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		dir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: dir})
		require.NoError(t, os.WriteFile(filepath.Join(dir, "out.txt"), []byte("old content that is longer"), 0644))

		path, err := w.WriteArtifact(ctx, "out.txt", "new")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("empty content creates empty file", func(t *testing.T) {
		dir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: dir})

		path, err := w.WriteArtifact(ctx, "empty.txt", "")
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Zero(t, info.Size())
	})

	t.Run("creates missing base dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := NewWriter(WriterOptions{BaseDir: dir})

		path, err := w.WriteArtifact(ctx, "a.txt", "x")
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("absolute name ignores base dir", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "abs.txt")
		w := NewWriter(WriterOptions{BaseDir: t.TempDir()})

		path, err := w.WriteArtifact(ctx, target, "x")
		require.NoError(t, err)
		assert.Equal(t, target, path)
		assert.FileExists(t, target)
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: dir, DryRun: true})

		path, err := w.WriteArtifact(ctx, "a.txt", "x")
		require.NoError(t, err)
		assert.NoFileExists(t, path)
	})

	t.Run("empty name", func(t *testing.T) {
		w := NewWriter(WriterOptions{BaseDir: t.TempDir()})

		_, err := w.WriteArtifact(ctx, "", "x")
		assert.ErrorIs(t, err, domain.ErrOutputNameUnresolved)
	})

	t.Run("unwritable target", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "taken.txt"), 0755))
		w := NewWriter(WriterOptions{BaseDir: dir})

		_, err := w.WriteArtifact(ctx, "taken.txt", "x")
		assert.ErrorIs(t, err, domain.ErrWriteFailed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		w := NewWriter(WriterOptions{BaseDir: t.TempDir()})

		_, err := w.WriteArtifact(cctx, "a.txt", "x")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
