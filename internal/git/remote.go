package git

import (
	"context"

	"github.com/quantmind-br/repotext/internal/domain"
)

// ListRemote returns the number of refs locator advertises. Nothing is
// written to disk.
func ListRemote(ctx context.Context, locator string) (int, error) {
	return listRemote(ctx, NewClient(), locator)
}

func listRemote(ctx context.Context, client Client, locator string) (int, error) {
	url := NormalizeLocator(locator)
	if url == "" {
		return 0, domain.NewFetchError(locator, domain.ErrInvalidLocator)
	}

	refs, err := client.ListRefs(ctx, url)
	if err != nil {
		return 0, domain.NewFetchError(locator, err)
	}
	return len(refs), nil
}
