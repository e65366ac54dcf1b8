// Package gitlog provides the version-control collaborators for relnotes:
// previous release tag discovery and commit subject collection for a range.
// It uses the go-git library so no git CLI installation is required.
package gitlog

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo wraps an opened git repository.
type Repo struct {
	repo *git.Repository
}

// Open opens the git repository at the specified path or current working
// directory. It uses go-git's PlainOpenWithOptions with DetectDotGit enabled
// to traverse up the directory tree to find the repository root.
func Open(path string) (*Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[gitlog] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	logDebug("[gitlog] repository opened successfully")
	return &Repo{repo: repo}, nil
}

// Subjects returns the commit subject lines in the range from..to, newest
// first. A commit is in the range when it is reachable from to but not from
// from, the same set git log from..to reports, so side-branch commits merged
// after the from tag are included. An empty from walks the whole history
// ("since beginning"); an empty to means HEAD. Multi-line commit bodies are
// not included - only the first line of each message.
func (r *Repo) Subjects(from, to string) ([]string, error) {
	toHash, err := r.resolveCommit(to)
	if err != nil {
		return nil, err
	}

	excluded, err := r.reachableFrom(from)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: toHash})
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var subjects []string
	err = iter.ForEach(func(c *object.Commit) error {
		if excluded[c.Hash] {
			return nil
		}
		subjects = append(subjects, subjectOf(c.Message))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commit log: %w", err)
	}

	logDebug("[gitlog] Subjects: %d commits in range %s..%s", len(subjects), from, to)
	return subjects, nil
}

// reachableFrom returns the set of commit hashes reachable from the given
// revision, including the revision itself. A nil map is returned for the
// empty revision, meaning nothing is excluded.
func (r *Repo) reachableFrom(rev string) (map[plumbing.Hash]bool, error) {
	if rev == "" {
		return nil, nil
	}

	hash, err := r.resolveCommit(rev)
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: hash})
	if err != nil {
		return nil, fmt.Errorf("reading commit log from %q: %w", rev, err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]bool)
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history of %q: %w", rev, err)
	}

	return seen, nil
}

// resolveCommit resolves a revision identifier to a commit hash.
// An empty revision resolves to HEAD. Annotated tags are peeled to the
// commit they point at.
func (r *Repo) resolveCommit(rev string) (plumbing.Hash, error) {
	if rev == "" {
		head, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("getting HEAD reference: %w", err)
		}
		return head.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving revision %q: %w", rev, err)
	}

	// Peel annotated tags to their target commit.
	if tag, err := r.repo.TagObject(*hash); err == nil {
		commit, err := tag.Commit()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("peeling tag %q: %w", rev, err)
		}
		return commit.Hash, nil
	}

	return *hash, nil
}

// subjectOf returns the first line of a commit message, trimmed.
func subjectOf(message string) string {
	subject, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(subject)
}
