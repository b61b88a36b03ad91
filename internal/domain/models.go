package domain

import (
	"strings"
	"time"
)

// Kind classifies a file for extraction
type Kind string

const (
	// KindDocument files are emitted verbatim
	KindDocument Kind = "document"
	// KindSource files contribute only their comment lines
	KindSource Kind = "source"
	// KindSkip files are ignored
	KindSkip Kind = "skip"
)

// SeparatorWidth is the number of '=' characters framing a fragment header
const SeparatorWidth = 40

// Fragment is one labeled unit of extracted text for a single file
type Fragment struct {
	Name string // Base name used in the header
	Path string // Path relative to the working copy
	Kind Kind
	Body string
}

// Text renders the fragment in artifact form. Empty bodies render as "".
func (f *Fragment) Text() string {
	if f == nil || f.Body == "" {
		return ""
	}
	sep := strings.Repeat("=", SeparatorWidth)

	var sb strings.Builder
	sb.Grow(len(f.Body) + len(f.Name) + 2*SeparatorWidth + 6)
	sb.WriteString("\n")
	sb.WriteString(sep)
	sb.WriteString("\n")
	sb.WriteString(f.Name)
	sb.WriteString("\n")
	sb.WriteString(sep)
	sb.WriteString("\n")
	sb.WriteString(f.Body)
	sb.WriteString("\n\n")
	return sb.String()
}

// RunOptions is the explicit configuration of a single extraction run
type RunOptions struct {
	Locator    string // Repository locator, e.g. https://github.com/owner/name
	OutputName string // Output file name; derived from the locator when empty
	DryRun     bool   // Extract but do not write the artifact
	Sort       bool   // Sort file paths lexicographically before extraction
}

// Validate checks the run options
func (o RunOptions) Validate() error {
	if strings.TrimSpace(o.Locator) == "" {
		return NewValidationError("locator", "must not be empty")
	}
	return nil
}

// Result summarizes a completed run
type Result struct {
	Locator      string
	OutputPath   string
	Branch       string
	Commit       string
	FilesWalked  int
	FilesSkipped int
	Fragments    int
	Bytes        int
	Duration     time.Duration
}
