package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repotext/internal/domain"
	"github.com/quantmind-br/repotext/internal/git"
	"github.com/quantmind-br/repotext/internal/mocks"
)

func TestListRemote_EmptyLocator(t *testing.T) {
	_, err := git.ListRemote(context.Background(), "")
	assert.True(t, domain.IsFetchError(err))
	assert.ErrorIs(t, err, domain.ErrInvalidLocator)
}

func TestListRemote_NormalizesLocator(t *testing.T) {
	client := new(mocks.MockGitClient)
	client.On("ListRefs", mock.Anything, "https://github.com/acme/widgets").Return([]*plumbing.Reference{
		plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main")),
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("main"), plumbing.ZeroHash),
	}, nil)

	refs, err := git.ListRemoteWithClient(context.Background(), client, "github.com/acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, 2, refs)
	client.AssertExpectations(t)
}

func TestListRemote_Failure(t *testing.T) {
	cause := errors.New("repository not found")
	client := new(mocks.MockGitClient)
	client.On("ListRefs", mock.Anything, mock.Anything).Return(nil, cause)

	_, err := git.ListRemoteWithClient(context.Background(), client, "https://github.com/acme/missing")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "https://github.com/acme/missing", fetchErr.Locator)
	assert.ErrorIs(t, err, cause)
}

func TestListRemote_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := git.ListRemote(ctx, "https://github.com/git-fixtures/basic")
	assert.True(t, domain.IsFetchError(err))
}
