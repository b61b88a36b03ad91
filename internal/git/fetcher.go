package git

import (
	"context"
	"io"

	"github.com/go-git/go-git/v5"

	"github.com/quantmind-br/repotext/internal/domain"
	"github.com/quantmind-br/repotext/internal/utils"
)

// CloneFetcher fetches a single revision of a repository with go-git
type CloneFetcher struct {
	client   Client
	logger   *utils.Logger
	progress io.Writer
	depth    int
}

// CloneFetcherOptions contains options for the clone fetcher
type CloneFetcherOptions struct {
	Client   Client        // Defaults to RealClient
	Logger   *utils.Logger // Optional
	Progress io.Writer     // Clone progress sink; nil discards
	Depth    int           // History depth, 1 when unset
}

func NewCloneFetcher(opts CloneFetcherOptions) *CloneFetcher {
	client := opts.Client
	if client == nil {
		client = NewClient()
	}
	depth := opts.Depth
	if depth < 1 {
		depth = 1
	}
	return &CloneFetcher{
		client:   client,
		logger:   opts.Logger,
		progress: opts.Progress,
		depth:    depth,
	}
}

func (f *CloneFetcher) Name() string {
	return "clone"
}

// Fetch clones locator into destDir. Every failure is a *domain.FetchError.
func (f *CloneFetcher) Fetch(ctx context.Context, locator, destDir string) (*FetchResult, error) {
	url := NormalizeLocator(locator)
	if url == "" {
		return nil, domain.NewFetchError(locator, domain.ErrInvalidLocator)
	}

	if f.logger != nil {
		event := f.logger.Info().Str("url", url).Int("depth", f.depth)
		if info, err := ParseLocator(locator); err == nil {
			event = event.Str("platform", string(info.Platform))
		}
		event.Msg("Cloning repository")
	}

	cloneOpts := &git.CloneOptions{
		URL:          url,
		Depth:        f.depth,
		SingleBranch: true,
		Tags:         git.NoTags,
		Progress:     f.progress,
	}

	repo, err := f.client.PlainCloneContext(ctx, destDir, false, cloneOpts)
	if err != nil {
		return nil, domain.NewFetchError(locator, err)
	}

	result := &FetchResult{LocalPath: destDir}
	if repo != nil {
		if head, err := repo.Head(); err == nil {
			if head.Name().IsBranch() {
				result.Branch = head.Name().Short()
			}
			result.Commit = head.Hash().String()
		}
	}

	if f.logger != nil {
		f.logger.Debug().
			Str("branch", result.Branch).
			Str("commit", result.Commit).
			Msg("Clone complete")
	}

	return result, nil
}
