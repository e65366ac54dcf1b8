package gitlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRepo is an in-memory repository for exercising range and tag queries
// without touching the filesystem.
type testRepo struct {
	repo *git.Repository
	wt   *git.Worktree
	seq  int
	when time.Time
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	return &testRepo{
		repo: repo,
		wt:   wt,
		when: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// commit writes a unique file change and commits it with the given message.
func (tr *testRepo) commit(t *testing.T, message string) plumbing.Hash {
	t.Helper()
	return tr.commitWithParents(t, message)
}

// commitWithParents commits with explicit parent hashes, for building
// branching and merge topologies. No parents means the current HEAD.
func (tr *testRepo) commitWithParents(t *testing.T, message string, parents ...plumbing.Hash) plumbing.Hash {
	t.Helper()

	tr.seq++
	tr.when = tr.when.Add(time.Minute)

	name := fmt.Sprintf("file-%d.txt", tr.seq)
	require.NoError(t, util.WriteFile(tr.wt.Filesystem, name, []byte(message), 0o644))
	_, err := tr.wt.Add(name)
	require.NoError(t, err)

	sig := &object.Signature{Name: "Tester", Email: "tester@example.com", When: tr.when}
	hash, err := tr.wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig, Parents: parents})
	require.NoError(t, err)
	return hash
}

func (tr *testRepo) tag(t *testing.T, name string, hash plumbing.Hash) {
	t.Helper()
	_, err := tr.repo.CreateTag(name, hash, nil)
	require.NoError(t, err)
}

func (tr *testRepo) annotatedTag(t *testing.T, name string, hash plumbing.Hash) {
	t.Helper()
	_, err := tr.repo.CreateTag(name, hash, &git.CreateTagOptions{
		Message: "release " + name,
		Tagger:  &object.Signature{Name: "Tester", Email: "tester@example.com", When: tr.when},
	})
	require.NoError(t, err)
}

func TestSubjects(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	first := tr.commit(t, "feat: initial feature")
	tr.tag(t, "v1.0.0", first)
	tr.commit(t, "fix: correct the feature\n\nLong body that must not leak\ninto the subject line.")
	tr.commit(t, "docs: describe the feature")
	r := &Repo{repo: tr.repo}

	t.Run("range since tag excludes the tagged commit", func(t *testing.T) {
		subjects, err := r.Subjects("v1.0.0", "")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"docs: describe the feature",
			"fix: correct the feature",
		}, subjects)
	})

	t.Run("empty from walks the whole history", func(t *testing.T) {
		subjects, err := r.Subjects("", "")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"docs: describe the feature",
			"fix: correct the feature",
			"feat: initial feature",
		}, subjects)
	})

	t.Run("unknown revision fails", func(t *testing.T) {
		_, err := r.Subjects("v9.9.9", "")
		assert.Error(t, err)
	})
}

func TestSubjects_MergeTopology(t *testing.T) {
	t.Parallel()

	// A feature branch forks before the release tag and merges after it.
	// Its commits are not reachable from the tag, so they belong to the
	// range even though the walk from HEAD reaches the tag first.
	tr := newTestRepo(t)
	base := tr.commit(t, "feat: base")
	branch := tr.commitWithParents(t, "feat: branch work", base)
	release := tr.commitWithParents(t, "fix: mainline fix", base)
	tr.tag(t, "v1.0.0", release)
	tr.commitWithParents(t, "Merge branch 'feature'", release, branch)
	r := &Repo{repo: tr.repo}

	subjects, err := r.Subjects("v1.0.0", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"Merge branch 'feature'",
		"feat: branch work",
	}, subjects)
	assert.NotContains(t, subjects, "feat: base")
	assert.NotContains(t, subjects, "fix: mainline fix")
}

func TestSubjects_AnnotatedTagPeeled(t *testing.T) {
	t.Parallel()

	tr := newTestRepo(t)
	first := tr.commit(t, "feat: base")
	tr.annotatedTag(t, "v2.0.0", first)
	tr.commit(t, "fix: after release")
	r := &Repo{repo: tr.repo}

	subjects, err := r.Subjects("v2.0.0", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"fix: after release"}, subjects)
}

func TestPreviousTag(t *testing.T) {
	t.Parallel()

	t.Run("highest semver tag wins", func(t *testing.T) {
		t.Parallel()

		tr := newTestRepo(t)
		a := tr.commit(t, "feat: a")
		b := tr.commit(t, "feat: b")
		c := tr.commit(t, "feat: c")
		tr.tag(t, "v0.9.0", a)
		tr.tag(t, "v1.10.0", c)
		tr.tag(t, "v1.2.0", b)
		tr.tag(t, "nightly", c) // not semver, ignored
		r := &Repo{repo: tr.repo}

		tag, err := r.PreviousTag("v")
		require.NoError(t, err)
		// Numeric comparison: 1.10.0 beats 1.2.0.
		assert.Equal(t, "v1.10.0", tag)
	})

	t.Run("no tags means whole history", func(t *testing.T) {
		t.Parallel()

		tr := newTestRepo(t)
		tr.commit(t, "feat: only commit")
		r := &Repo{repo: tr.repo}

		tag, err := r.PreviousTag("v")
		require.NoError(t, err)
		assert.Empty(t, tag)
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		tr := newTestRepo(t)
		a := tr.commit(t, "feat: a")
		tr.tag(t, "release-1.4.0", a)
		r := &Repo{repo: tr.repo}

		tag, err := r.PreviousTag("release-")
		require.NoError(t, err)
		assert.Equal(t, "release-1.4.0", tag)
	})
}

func TestCanonicalSemver(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tag    string
		prefix string
		want   string
	}{
		"v prefix":          {tag: "v1.2.0", prefix: "v", want: "v1.2.0"},
		"bare version":      {tag: "1.2.0", prefix: "v", want: "v1.2.0"},
		"custom prefix":     {tag: "release-1.2.0", prefix: "release-", want: "v1.2.0"},
		"prerelease":        {tag: "v1.2.0-rc.1", prefix: "v", want: "v1.2.0-rc.1"},
		"not a version":     {tag: "nightly", prefix: "v", want: ""},
		"partial version":   {tag: "v1", prefix: "v", want: "v1"},
		"garbage with dots": {tag: "a.b.c", prefix: "v", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, canonicalSemver(tt.tag, tt.prefix))
		})
	}
}

func TestSubjectOf(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		message string
		want    string
	}{
		"single line":        {message: "feat: x", want: "feat: x"},
		"multi line body":    {message: "fix: y\n\ndetails here", want: "fix: y"},
		"trailing newline":   {message: "docs: z\n", want: "docs: z"},
		"surrounding spaces": {message: "  chore: w  \nrest", want: "chore: w"},
		"empty message":      {message: "", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, subjectOf(tt.message))
		})
	}
}
