package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Output defaults
	DefaultOutputDir = "."

	// Fetch defaults; a zero timeout leaves the clone unbounded
	DefaultFetchTimeout time.Duration = 0
	DefaultFetchDepth                 = 1

	// Extract defaults; "0" disables the size limit
	DefaultMaxFileSize = "0"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// DefaultDocumentExtensions are emitted verbatim
var DefaultDocumentExtensions = []string{".md", ".txt"}

// DefaultSourceExtensions contribute their comment lines
var DefaultSourceExtensions = []string{".py", ".js", ".cpp", ".c", ".java"}

// DefaultSkipDirs are pruned from the working copy walk
var DefaultSkipDirs = []string{".git"}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repotext"
	}
	return filepath.Join(home, ".repotext")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Fetch: FetchConfig{
			Timeout: DefaultFetchTimeout,
			Depth:   DefaultFetchDepth,
		},
		Extract: ExtractConfig{
			DocumentExtensions: DefaultDocumentExtensions,
			SourceExtensions:   DefaultSourceExtensions,
			SkipDirs:           DefaultSkipDirs,
			MaxFileSize:        DefaultMaxFileSize,
			Progress:           true,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
