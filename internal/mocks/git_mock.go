package mocks

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock of git.Client
type MockGitClient struct {
	mock.Mock
}

// PlainCloneContext records the clone request. A nil repository is
// returned as a typed nil.
func (m *MockGitClient) PlainCloneContext(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error) {
	args := m.Called(ctx, path, isBare, o)
	repo, _ := args.Get(0).(*git.Repository)
	return repo, args.Error(1)
}

// ListRefs records the listing request
func (m *MockGitClient) ListRefs(ctx context.Context, url string) ([]*plumbing.Reference, error) {
	args := m.Called(ctx, url)
	refs, _ := args.Get(0).([]*plumbing.Reference)
	return refs, args.Error(1)
}
