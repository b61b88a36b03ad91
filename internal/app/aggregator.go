package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/repotext/internal/config"
	"github.com/quantmind-br/repotext/internal/domain"
	"github.com/quantmind-br/repotext/internal/extractor"
	"github.com/quantmind-br/repotext/internal/git"
	"github.com/quantmind-br/repotext/internal/output"
	"github.com/quantmind-br/repotext/internal/utils"
)

// Aggregator fetches a repository, extracts every file and writes the
// concatenated fragments to a single artifact
type Aggregator struct {
	config    *config.Config
	fetcher   git.Fetcher
	extractor *extractor.Extractor
	logger    *utils.Logger
	status    io.Writer
	progress  io.Writer
	tempDir   string
}

// AggregatorOptions contains options for creating an aggregator
type AggregatorOptions struct {
	Config        *config.Config
	Fetcher       git.Fetcher   // Defaults to a go-git CloneFetcher
	Logger        *utils.Logger // Defaults to a no-op logger
	Status        io.Writer     // Plain status lines; nil discards
	Progress      io.Writer     // Extraction progress bar; nil disables
	CloneProgress io.Writer     // go-git clone progress; nil discards
	TempDir       string        // Parent of the working copy; "" uses the OS default
}

// NewAggregator creates a new aggregator with the given configuration
func NewAggregator(opts AggregatorOptions) (*Aggregator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = git.NewCloneFetcher(git.CloneFetcherOptions{
			Logger:   logger.WithComponent("fetcher"),
			Progress: opts.CloneProgress,
			Depth:    cfg.Fetch.Depth,
		})
	}

	status := opts.Status
	if status == nil {
		status = io.Discard
	}

	return &Aggregator{
		config:  cfg,
		fetcher: fetcher,
		extractor: extractor.New(extractor.Options{
			DocumentExtensions: cfg.Extract.DocumentExtensions,
			SourceExtensions:   cfg.Extract.SourceExtensions,
			MaxFileSize:        cfg.MaxFileSizeBytes(),
			Logger:             logger,
		}),
		logger:   logger,
		status:   status,
		progress: opts.Progress,
		tempDir:  opts.TempDir,
	}, nil
}

// ResolveOutputName returns the explicit output name or derives
// "owner_name.txt" from the locator
func ResolveOutputName(opts domain.RunOptions) (string, error) {
	if name := strings.TrimSpace(opts.OutputName); name != "" {
		return name, nil
	}
	return git.OutputNameFromLocator(opts.Locator)
}

// Run executes one fetch-walk-extract-write cycle. The working copy is
// removed on every return path.
func (a *Aggregator) Run(ctx context.Context, opts domain.RunOptions) (*domain.Result, error) {
	start := time.Now()

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	outputName, err := ResolveOutputName(opts)
	if err != nil {
		return nil, err
	}

	log := a.logger.WithLocator(opts.Locator)

	workDir, err := os.MkdirTemp(a.tempDir, "repotext-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Warn().Err(err).Str("dir", workDir).Msg("Failed to remove working directory")
		}
	}()

	// A zero fetch.timeout leaves the clone bounded only by ctx
	fetchCtx := ctx
	if a.config.Fetch.Timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, a.config.Fetch.Timeout)
		defer cancel()
	}
	fetched, err := a.fetcher.Fetch(fetchCtx, opts.Locator, workDir)
	if err != nil {
		if !domain.IsFetchError(err) {
			err = domain.NewFetchError(opts.Locator, err)
		}
		return nil, err
	}
	fmt.Fprintf(a.status, "Cloned repository to %s\n", workDir)

	files, err := a.Collect(ctx, workDir, opts.Sort || a.config.Extract.Sort)
	if err != nil {
		return nil, fmt.Errorf("failed to walk working copy: %w", err)
	}
	log.Debug().Int("files", len(files)).Msg("Collected files")

	content, stats, err := a.Aggregate(ctx, workDir, files)
	if err != nil {
		return nil, fmt.Errorf("extraction aborted, nothing written: %w", err)
	}

	writer := output.NewWriter(output.WriterOptions{
		BaseDir: a.config.Output.Directory,
		DryRun:  opts.DryRun || a.config.Output.DryRun,
	})
	outputPath, err := writer.WriteArtifact(ctx, outputName, content)
	if err != nil {
		return nil, err
	}
	if opts.DryRun || a.config.Output.DryRun {
		fmt.Fprintf(a.status, "Dry run: %d bytes would be written to %s\n", len(content), outputPath)
	} else {
		fmt.Fprintf(a.status, "All content written to %s\n", outputPath)
	}

	result := &domain.Result{
		Locator:      opts.Locator,
		OutputPath:   outputPath,
		FilesWalked:  len(files),
		FilesSkipped: stats.Skipped,
		Fragments:    stats.Fragments,
		Bytes:        len(content),
		Duration:     time.Since(start),
	}
	if fetched != nil {
		result.Branch = fetched.Branch
		result.Commit = fetched.Commit
	}

	log.Info().
		Int("files", result.FilesWalked).
		Int("fragments", result.Fragments).
		Int("bytes", result.Bytes).
		Dur("duration", result.Duration).
		Msg("Extraction completed")

	return result, nil
}

// Collect returns every file under root in walk order, pruning the
// configured skip directories. Symlinks are listed unless they resolve to a
// directory, which is never descended into; dangling links are listed too and
// fail at extraction. Unreadable directories are logged and skipped.
// filepath.WalkDir visits entries in lexical order per directory; sortPaths
// additionally orders the full path list.
func (a *Aggregator) Collect(ctx context.Context, root string, sortPaths bool) ([]string, error) {
	skip := make(map[string]bool, len(a.config.Extract.SkipDirs))
	for _, dir := range a.config.Extract.SkipDirs {
		skip[dir] = true
	}

	var bar *progressbar.ProgressBar
	if a.progress != nil {
		bar = utils.NewProgressBarTo(a.progress, -1, utils.DescScanning)
		defer bar.Finish()
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			a.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		switch mode := d.Type(); {
		case mode.IsRegular():
		case mode&fs.ModeSymlink != 0:
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		default:
			return nil
		}

		files = append(files, path)
		if bar != nil {
			_ = bar.Add(1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if sortPaths {
		sort.Strings(files)
	}
	return files, nil
}

// AggregateStats counts the outcome of an Aggregate call
type AggregateStats struct {
	Fragments int // Files that produced a fragment
	Skipped   int // Unsupported, empty or oversized files
}

// Aggregate extracts files in order and concatenates the non-empty fragments.
// The first file that cannot be read aborts the whole aggregation.
func (a *Aggregator) Aggregate(ctx context.Context, root string, files []string) (string, AggregateStats, error) {
	var stats AggregateStats
	var sb strings.Builder

	var bar *progressbar.ProgressBar
	if a.progress != nil {
		bar = utils.NewProgressBarTo(a.progress, len(files), utils.DescExtracting)
		defer bar.Finish()
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return "", stats, err
		}

		frag, err := a.extractor.ExtractFragment(path)
		if bar != nil {
			_ = bar.Add(1)
		}
		if err != nil {
			return "", stats, fmt.Errorf("failed to extract %s: %w", relPath(root, path), err)
		}
		if frag == nil {
			stats.Skipped++
			continue
		}

		frag.Path = relPath(root, path)
		a.logger.Debug().Str("file", frag.Path).Str("kind", string(frag.Kind)).Msg("Extracted fragment")

		sb.WriteString(frag.Text())
		stats.Fragments++
	}

	return sb.String(), stats, nil
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
