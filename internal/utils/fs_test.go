package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidFilename(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"acme_widgets.txt", true},
		{"my repo.txt", true},
		{"go-git_go-git.txt", true},
		{".hidden.txt", true},
		{"", false},
		{".", false},
		{"..", false},
		{"acme/widgets.txt", false},
		{`acme\widgets.txt`, false},
		{"acme:widgets.txt", false},
		{"what?.txt", false},
		{"tab\there.txt", false},
		{"nul.txt", false},
		{"COM3", false},
		{"lpt9.log", false},
		{"COM10.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidFilename(tt.filename))
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.txt")

	require.NoError(t, EnsureDir(path))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))
	assert.NoFileExists(t, path)

	// Existing parent is fine
	require.NoError(t, EnsureDir(path))
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/out", filepath.Join(home, "out")},
		{"~/a/b", filepath.Join(home, "a", "b")},
		{"~user/out", "~user/out"},
		{"/tmp/out", "/tmp/out"},
		{"./out", "./out"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
