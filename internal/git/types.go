package git

// Platform represents a git hosting platform
type Platform string

const (
	PlatformGitHub    Platform = "github"
	PlatformGitLab    Platform = "gitlab"
	PlatformBitbucket Platform = "bitbucket"
	PlatformGeneric   Platform = "generic"
)

// RepoInfo contains parsed repository information
type RepoInfo struct {
	Platform Platform
	Host     string
	Owner    string
	Name     string
	URL      string // Original locator
}

// FetchResult contains the result of a repository fetch operation
type FetchResult struct {
	LocalPath string // Path to the working copy
	Branch    string // Checked out branch, empty when HEAD is detached or unknown
	Commit    string // HEAD commit hash
}
