// Package git fetches repositories and interprets repository locators.
//
// Fetching is a shallow, single-branch clone done in-process with go-git;
// no git binary is required. Locators may be full URLs
// (https://github.com/owner/name), scp-like (git@github.com:owner/name.git)
// or bare (github.com/owner/name).
//
// Usage:
//
//	f := git.NewCloneFetcher(git.CloneFetcherOptions{Logger: logger})
//	res, err := f.Fetch(ctx, "https://github.com/acme/widgets", dir)
package git
