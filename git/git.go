package git

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/pkg/errors"

	"github.com/collabctl/collabctl/slug"
)

// Remote is a repository hosted on a GitHub instance, as found in a git remote URL.
type Remote struct {
	Host string
	slug.Repository
}

var remoteParsers = []*regexp.Regexp{
	// git@github.com:owner/name.git and ssh://git@github.com/owner/name
	regexp.MustCompile(`^(?:ssh://)?[^@/\s]+@([^:/\s]+)[:/](.*)$`),
	// https://github.com/owner/name and https://user@github.com/owner/name
	regexp.MustCompile(`^https?://(?:[^@/\s]*@)?([^/\s]+)/(.*)$`),
}

// InferRepositoryFromGitRemotes reads the URL of the 'origin' remote of the git
// repository containing dir. The assumption is that origin points at GitHub.
func InferRepositoryFromGitRemotes(dir string) (*Remote, error) {
	remoteURL, err := getRemoteURL(dir, "origin")
	if err != nil {
		return nil, err
	}

	return findRemote(remoteURL)
}

// MatchesHost reports whether the remote lives on the GitHub instance whose API is
// served from apiHost: github.com for https://api.github.com, the host itself for
// GitHub Enterprise.
func (r *Remote) MatchesHost(apiHost string) bool {
	u, err := url.Parse(apiHost)
	if err != nil || u.Hostname() == "" {
		return false
	}
	api := strings.ToLower(u.Hostname())

	host := strings.ToLower(r.Host)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return host == api || "api."+host == api
}

func findRemote(remoteURL string) (*Remote, error) {
	remoteURL = strings.TrimSpace(remoteURL)

	for _, parser := range remoteParsers {
		matches := parser.FindStringSubmatch(remoteURL)
		if matches == nil {
			continue
		}

		path := strings.TrimSuffix(strings.Trim(matches[2], "/"), ".git")
		repo, err := slug.ParseRepository(path)
		if err != nil {
			return nil, errors.Wrapf(err, "Splitting '%s' into owner and name failed", path)
		}

		return &Remote{Host: matches[1], Repository: repo}, nil
	}

	return nil, errors.Errorf("Unknown git remote: %s", remoteURL)
}

func getRemoteURL(dir, remoteName string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", errors.New("This command must be run from inside a git repository")
		}
		return "", errors.Wrap(err, "unable to open the git repository")
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return "", errors.Wrapf(err, "Error finding the %s git remote", remoteName)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", errors.Errorf("The %s git remote has no URL", remoteName)
	}
	return urls[0], nil
}
