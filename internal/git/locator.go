package git

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quantmind-br/repotext/internal/domain"
	"github.com/quantmind-br/repotext/internal/utils"
)

// locatorPattern matches [scheme://][user@]host[:port](/|:)owner/name[/...]
var locatorPattern = regexp.MustCompile(`^(?:[A-Za-z][A-Za-z0-9+.\-]*://)?(?:[^@/]+@)?([^/:]+)(?::\d+)?[/:]([^/]+)/([^/?#]+)`)

// scpPattern matches git@host:path
var scpPattern = regexp.MustCompile(`^[^@/:]+@[^/:]+:`)

// ParseLocator extracts host, owner and repository name from a locator.
// Path segments after owner/name (e.g. /tree/main) are ignored.
func ParseLocator(locator string) (*RepoInfo, error) {
	locator = strings.TrimSpace(locator)
	m := locatorPattern.FindStringSubmatch(locator)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLocator, locator)
	}

	name := strings.TrimSuffix(m[3], ".git")
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLocator, locator)
	}

	host := strings.ToLower(m[1])
	return &RepoInfo{
		Platform: detectPlatform(host),
		Host:     host,
		Owner:    m[2],
		Name:     name,
		URL:      locator,
	}, nil
}

// OutputNameFromLocator derives "owner_name.txt" from a locator
func OutputNameFromLocator(locator string) (string, error) {
	info, err := ParseLocator(locator)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrOutputNameUnresolved, locator)
	}

	name := info.Owner + "_" + info.Name + ".txt"
	if !utils.IsValidFilename(name) {
		return "", fmt.Errorf("%w: %s", domain.ErrOutputNameUnresolved, locator)
	}
	return name, nil
}

// NormalizeLocator returns a URL go-git can clone. Bare host/owner/name
// locators get an https scheme; URLs, scp-like and local paths are unchanged.
func NormalizeLocator(locator string) string {
	locator = strings.TrimSpace(locator)
	switch {
	case locator == "":
		return locator
	case strings.Contains(locator, "://"):
		return locator
	case scpPattern.MatchString(locator):
		return locator
	case strings.HasPrefix(locator, "/"), strings.HasPrefix(locator, "."), strings.HasPrefix(locator, "~"):
		return locator
	}
	return "https://" + locator
}

func detectPlatform(host string) Platform {
	switch {
	case host == "github.com" || strings.HasSuffix(host, ".github.com"):
		return PlatformGitHub
	case host == "gitlab.com" || strings.HasSuffix(host, ".gitlab.com"):
		return PlatformGitLab
	case host == "bitbucket.org":
		return PlatformBitbucket
	}
	return PlatformGeneric
}
