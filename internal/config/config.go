package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Fetch   FetchConfig   `mapstructure:"fetch" yaml:"fetch"`
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Name      string `mapstructure:"name" yaml:"name"`
	DryRun    bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// FetchConfig contains repository checkout settings
type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	Depth   int           `mapstructure:"depth" yaml:"depth"`
}

// ExtractConfig contains file classification settings
type ExtractConfig struct {
	DocumentExtensions []string `mapstructure:"document_extensions" yaml:"document_extensions"`
	SourceExtensions   []string `mapstructure:"source_extensions" yaml:"source_extensions"`
	SkipDirs           []string `mapstructure:"skip_dirs" yaml:"skip_dirs"`
	MaxFileSize        string   `mapstructure:"max_file_size" yaml:"max_file_size"`
	Sort               bool     `mapstructure:"sort" yaml:"sort"`
	Progress           bool     `mapstructure:"progress" yaml:"progress"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Fetch.Timeout < 0 {
		c.Fetch.Timeout = DefaultFetchTimeout
	}
	if c.Fetch.Depth < 1 {
		c.Fetch.Depth = DefaultFetchDepth
	}
	if len(c.Extract.DocumentExtensions) == 0 && len(c.Extract.SourceExtensions) == 0 {
		c.Extract.DocumentExtensions = DefaultDocumentExtensions
		c.Extract.SourceExtensions = DefaultSourceExtensions
	}
	c.Extract.DocumentExtensions = normalizeExtensions(c.Extract.DocumentExtensions)
	c.Extract.SourceExtensions = normalizeExtensions(c.Extract.SourceExtensions)
	if c.Extract.MaxFileSize == "" {
		c.Extract.MaxFileSize = DefaultMaxFileSize
	} else {
		if _, err := ParseSize(c.Extract.MaxFileSize); err != nil {
			return fmt.Errorf("invalid extract.max_file_size: %w", err)
		}
	}
	return nil
}

// MaxFileSizeBytes returns the parsed extract.max_file_size; 0 means no limit
func (c *Config) MaxFileSizeBytes() int64 {
	n, err := ParseSize(c.Extract.MaxFileSize)
	if err != nil {
		return 0
	}
	return n
}

// normalizeExtensions lowercases extensions and ensures a leading dot
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func ParseSize(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	var multiplier int64 = 1
	if strings.HasSuffix(s, "GB") {
		multiplier = 1024 * 1024 * 1024
		s = strings.TrimSuffix(s, "GB")
	} else if strings.HasSuffix(s, "MB") {
		multiplier = 1024 * 1024
		s = strings.TrimSuffix(s, "MB")
	} else if strings.HasSuffix(s, "KB") {
		multiplier = 1024
		s = strings.TrimSuffix(s, "KB")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("no numeric value in size string")
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value: %w", err)
	}

	if n < 0 {
		return 0, fmt.Errorf("negative size not allowed")
	}

	return n * multiplier, nil
}
