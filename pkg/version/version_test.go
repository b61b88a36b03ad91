package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repotext/pkg/version"
)

func setBuildVars(t *testing.T, v, b, c string) {
	t.Helper()
	origV, origB, origC := version.Version, version.BuildTime, version.Commit
	t.Cleanup(func() { version.Version, version.BuildTime, version.Commit = origV, origB, origC })
	version.Version, version.BuildTime, version.Commit = v, b, c
}

func TestGet(t *testing.T) {
	setBuildVars(t, "1.2.3", "2026-10-01T00:00:00Z", "deadbeef")

	info := version.Get()
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "2026-10-01T00:00:00Z", info.BuildTime)
	require.Equal(t, "deadbeef", info.Commit)

	require.NotEmpty(t, info.GoVersion)
	require.NotEmpty(t, info.OS)
	require.NotEmpty(t, info.Arch)
}

func TestShortAndFull(t *testing.T) {
	setBuildVars(t, "1.2.3", "2026-10-01T00:00:00Z", "deadbeef")

	assert.Equal(t, "1.2.3", version.Short())
	assert.Contains(t, version.Full(), "repotext 1.2.3 (commit: deadbeef, built: 2026-10-01T00:00:00Z")
}

func TestInfo_String_GoGit(t *testing.T) {
	info := version.Info{Version: "v1", Commit: "c", BuildTime: "b", GoVersion: "go1.24", OS: "linux", Arch: "amd64"}
	assert.Equal(t, "repotext v1 (commit: c, built: b, go1.24 linux/amd64)", info.String())

	info.GoGit = "v5.16.4"
	assert.Contains(t, info.String(), "go-git v5.16.4")
}
