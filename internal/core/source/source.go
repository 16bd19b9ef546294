// Package source resolves podspec source strings into downloadable URLs.
package source

import (
	"fmt"
	"net/url"
	"strings"
)

// ParsedSource holds the details extracted from a podspec source string.
type ParsedSource struct {
	RawURL            string // URL the spec content is downloaded from
	CanonicalSource   string // canonical representation stored in the lockfile
	Ref               string // commit hash, branch or tag for github sources
	Provider          string // "github" or "http"
	Owner             string
	Repo              string
	PathInRepo        string
	SuggestedFilename string
}

// githubRawBase is the host serving raw file content for github sources.
var githubRawBase = "https://raw.githubusercontent.com"

// Parse analyzes a podspec source string. Supported forms are the
// "github:owner/repo/path/to/Spec.podspec.yaml@ref" shorthand and plain
// http(s) URLs.
func Parse(specSource string) (*ParsedSource, error) {
	if strings.HasPrefix(specSource, "github:") {
		return parseGithubShorthand(specSource)
	}

	u, err := url.Parse(specSource)
	if err != nil || u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported podspec source %q: expected github: shorthand or http(s) URL", specSource)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	return &ParsedSource{
		RawURL:            specSource,
		CanonicalSource:   specSource,
		Provider:          "http",
		SuggestedFilename: segments[len(segments)-1],
	}, nil
}

func parseGithubShorthand(specSource string) (*ParsedSource, error) {
	content := strings.TrimPrefix(specSource, "github:")

	lastAt := strings.LastIndex(content, "@")
	if lastAt == -1 {
		return nil, fmt.Errorf("invalid github source %q: missing @ref (e.g. @master or @commitsha)", specSource)
	}
	if lastAt == len(content)-1 {
		return nil, fmt.Errorf("invalid github source %q: ref part is empty after @", specSource)
	}

	repoAndPath := content[:lastAt]
	ref := content[lastAt+1:]

	components := strings.Split(repoAndPath, "/")
	if len(components) < 3 {
		return nil, fmt.Errorf("invalid github source %q: expected owner/repo/path/to/spec", specSource)
	}

	owner := components[0]
	repo := components[1]
	pathInRepo := strings.Join(components[2:], "/")
	if owner == "" || repo == "" || pathInRepo == "" {
		return nil, fmt.Errorf("invalid github source %q: owner, repo and path must be non-empty", specSource)
	}

	return &ParsedSource{
		RawURL:            fmt.Sprintf("%s/%s/%s/%s/%s", githubRawBase, owner, repo, ref, pathInRepo),
		CanonicalSource:   specSource,
		Ref:               ref,
		Provider:          "github",
		Owner:             owner,
		Repo:              repo,
		PathInRepo:        pathInRepo,
		SuggestedFilename: components[len(components)-1],
	}, nil
}
