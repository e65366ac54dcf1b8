package gitlog

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStderr runs fn and returns what it wrote to stderr. Not safe for
// parallel tests - it swaps the process-global os.Stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestFetchTags_NoRemotes(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	tr.commit(t, "feat: a")
	r := &Repo{repo: tr.repo}

	assert.NoError(t, r.FetchTags(context.Background()))
}

func TestFetchTags_UnreachableRemoteWarnsButSucceeds(t *testing.T) {
	tr := newTestRepo(t)
	tr.commit(t, "feat: a")
	_, err := tr.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{filepath.Join(t.TempDir(), "missing.git")},
	})
	require.NoError(t, err)
	r := &Repo{repo: tr.repo}

	stderr := captureStderr(t, func() {
		assert.NoError(t, r.FetchTags(context.Background()))
	})
	assert.Contains(t, stderr, "Warning: failed to fetch tags from remote 'origin'")
}

func TestFetchTags_SSHRemoteSkippedWithoutAgent(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")

	tr := newTestRepo(t)
	tr.commit(t, "feat: a")
	_, err := tr.repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:example/example.git"},
	})
	require.NoError(t, err)
	r := &Repo{repo: tr.repo}

	stderr := captureStderr(t, func() {
		assert.NoError(t, r.FetchTags(context.Background()))
	})
	assert.Empty(t, stderr, "a skipped SSH remote is not a failure")
}

func TestFetchTags_CancelledContext(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	tr.commit(t, "feat: a")
	r := &Repo{repo: tr.repo}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, r.FetchTags(ctx))
}

func TestIsSSHURL(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		url  string
		want bool
	}{
		"scp style":      {url: "git@github.com:x/y.git", want: true},
		"ssh scheme":     {url: "ssh://git@host/x.git", want: true},
		"git+ssh scheme": {url: "git+ssh://host/x.git", want: true},
		"https":          {url: "https://github.com/x/y.git", want: false},
		"local path":     {url: "/srv/git/x.git", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, isSSHURL(tt.url))
		})
	}
}

func TestGetAuthForURL(t *testing.T) {
	t.Run("https with username and password", func(t *testing.T) {
		t.Setenv("GIT_USERNAME", "bot")
		t.Setenv("GIT_PASSWORD", "hunter2")
		t.Setenv("GITHUB_TOKEN", "")

		auth := getAuthForURL("https://github.com/x/y.git")
		require.IsType(t, &http.BasicAuth{}, auth)
		basic := auth.(*http.BasicAuth)
		assert.Equal(t, "bot", basic.Username)
		assert.Equal(t, "hunter2", basic.Password)
	})

	t.Run("https with token only", func(t *testing.T) {
		t.Setenv("GIT_USERNAME", "")
		t.Setenv("GIT_PASSWORD", "")
		t.Setenv("GITHUB_TOKEN", "tok")

		auth := getAuthForURL("https://github.com/x/y.git")
		require.IsType(t, &http.BasicAuth{}, auth)
		assert.Equal(t, "tok", auth.(*http.BasicAuth).Username)
	})

	t.Run("https without credentials", func(t *testing.T) {
		t.Setenv("GIT_USERNAME", "")
		t.Setenv("GIT_PASSWORD", "")
		t.Setenv("GITHUB_TOKEN", "")

		assert.Nil(t, getAuthForURL("https://github.com/x/y.git"))
	})

	t.Run("ssh without agent", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "")

		assert.Nil(t, getAuthForURL("git@github.com:x/y.git"))
	})
}

func TestIsSSHAgentAvailable(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "")
		assert.False(t, isSSHAgentAvailable())
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv("SSH_AUTH_SOCK", "/tmp/agent.sock")
		assert.True(t, isSSHAgentAvailable())
	})
}
