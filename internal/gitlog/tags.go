package gitlog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/mod/semver"
)

// DefaultFetchTimeout bounds tag fetches to prevent indefinite hangs.
const DefaultFetchTimeout = 60 * time.Second

// PreviousTag returns the name of the highest semantic-version tag in the
// repository, which marks the previous release. Tags are compared after
// stripping the given prefix (typically "v"); tags that are not valid
// semantic versions are ignored. Returns an empty string when no release
// tag exists, meaning the changelog covers the whole history.
func (r *Repo) PreviousTag(prefix string) (string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var best, bestVer string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		v := canonicalSemver(name, prefix)
		if v == "" {
			logDebug("[gitlog] PreviousTag: skipping non-semver tag %s", name)
			return nil
		}
		if best == "" || semver.Compare(v, bestVer) > 0 {
			best, bestVer = name, v
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating tags: %w", err)
	}

	logDebug("[gitlog] PreviousTag: %q", best)
	return best, nil
}

// canonicalSemver strips the tag prefix and returns the canonical "vX.Y.Z"
// form for comparison, or empty string if the tag is not a valid semver.
func canonicalSemver(tag, prefix string) string {
	trimmed := strings.TrimPrefix(tag, prefix)
	if !strings.HasPrefix(trimmed, "v") {
		trimmed = "v" + trimmed
	}
	if !semver.IsValid(trimmed) {
		return ""
	}
	return trimmed
}

// FetchTags refreshes tags from all configured remotes so the previous
// release tag is current before the commit range is computed. It continues
// on failure: network problems degrade to a stderr warning, never an error.
// SSH remotes are skipped when no SSH agent is available.
func (r *Repo) FetchTags(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		logDebug("[gitlog] FetchTags: context already cancelled")
		return nil
	}

	remotes, err := r.repo.Remotes()
	if err != nil {
		logDebug("[gitlog] FetchTags: no remotes: %v", err)
		return nil
	}

	for _, remote := range remotes {
		if err := ctx.Err(); err != nil {
			logDebug("[gitlog] FetchTags: context cancelled, stopping fetch")
			return nil
		}
		if err := r.fetchRemoteTags(ctx, remote); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to fetch tags from remote '%s': %v\n",
				remote.Config().Name, err)
		}
	}

	return nil
}

// fetchRemoteTags fetches tags from a single remote with context and authentication.
func (r *Repo) fetchRemoteTags(ctx context.Context, remote *git.Remote) error {
	remoteConfig := remote.Config()
	if len(remoteConfig.URLs) == 0 {
		return nil
	}

	url := remoteConfig.URLs[0]

	if isSSHURL(url) && !isSSHAgentAvailable() {
		logDebug("[gitlog] skipping fetch from remote '%s': SSH URL without SSH agent available", remoteConfig.Name)
		return nil
	}

	auth := getAuthForURL(url)
	logDebug("[gitlog] fetching tags from remote '%s' (%s)", remoteConfig.Name, url)

	err := r.repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remoteConfig.Name,
		Auth:       auth,
		Tags:       git.AllTags,
		RefSpecs:   []config.RefSpec{"+refs/tags/*:refs/tags/*"},
	})

	// Timeouts degrade gracefully: stale tags beat a failed run.
	if ctx.Err() != nil {
		logDebug("[gitlog] fetch from remote '%s' timed out or cancelled", remoteConfig.Name)
		return nil
	}

	if err == git.NoErrAlreadyUpToDate {
		return nil
	}

	return err
}

// getAuthForURL returns the appropriate authentication method for a remote URL.
// SSH URLs use SSH agent auth, HTTPS URLs use environment credentials.
func getAuthForURL(url string) transport.AuthMethod {
	if isSSHURL(url) {
		auth, err := ssh.NewSSHAgentAuth("git")
		if err != nil {
			logDebug("[gitlog] SSH agent auth failed: %v", err)
			return nil
		}
		return auth
	}

	username := os.Getenv("GIT_USERNAME")
	password := os.Getenv("GIT_PASSWORD")
	if username == "" {
		username = os.Getenv("GITHUB_TOKEN")
		if username != "" {
			password = "" // GitHub token can be used as username with empty password
		}
	}

	if username != "" {
		return &http.BasicAuth{
			Username: username,
			Password: password,
		}
	}

	return nil
}

// isSSHURL checks if a URL is an SSH URL.
// Detects git@ (SCP-style), ssh://, and git+ssh:// schemes.
func isSSHURL(url string) bool {
	return strings.HasPrefix(url, "git@") ||
		strings.HasPrefix(url, "ssh://") ||
		strings.HasPrefix(url, "git+ssh://")
}

// isSSHAgentAvailable checks if an SSH agent is available.
// Returns true only if SSH_AUTH_SOCK is set and non-empty.
func isSSHAgentAvailable() bool {
	sock := strings.TrimSpace(os.Getenv("SSH_AUTH_SOCK"))
	return sock != ""
}
