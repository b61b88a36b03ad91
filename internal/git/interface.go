package git

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Client is the subset of go-git used by the fetcher and the doctor check
type Client interface {
	PlainCloneContext(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error)
	ListRefs(ctx context.Context, url string) ([]*plumbing.Reference, error)
}

// Fetcher produces a local working copy of a remote repository
type Fetcher interface {
	Fetch(ctx context.Context, locator, destDir string) (*FetchResult, error)
	Name() string
}
