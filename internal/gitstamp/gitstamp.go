// Package gitstamp derives a reproducible banner stamp from git history.
package gitstamp

import (
	"io"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"

	"github.com/teranos/astgen/errors"
)

// ErrNotTracked is returned when the file has no commit history.
var ErrNotTracked = errors.New("file is not tracked by git")

// ShortHashLen is the abbreviated hash length used in stamps.
const ShortHashLen = 7

// Stamp identifies the last commit that touched a file.
type Stamp struct {
	Hash string
	When time.Time
}

// String renders the stamp for the banner, e.g. "2024-01-01T00:00:00Z (1a2b3c4)".
func (s Stamp) String() string {
	hash := s.Hash
	if len(hash) > ShortHashLen {
		hash = hash[:ShortHashLen]
	}
	return s.When.UTC().Format(time.RFC3339) + " (" + hash + ")"
}

// LastCommit finds the most recent commit reachable from HEAD that modified
// path. The repository is discovered by walking up from the file.
func LastCommit(path string) (*Stamp, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, errors.Wrapf(ErrNotTracked, "%s is not inside a git repository", path)
		}
		return nil, errors.Wrapf(err, "failed to open repository for %s", path)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open worktree")
	}
	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to relate %s to the worktree", path)
	}
	rel = filepath.ToSlash(rel)

	head, err := repo.Head()
	if err != nil {
		return nil, errors.Wrapf(ErrNotTracked, "repository has no HEAD: %v", err)
	}

	commits, err := repo.Log(&git.LogOptions{From: head.Hash(), FileName: &rel})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read history of %s", rel)
	}
	defer commits.Close()

	c, err := commits.Next()
	if err == io.EOF {
		return nil, errors.Wrapf(ErrNotTracked, "%s has no commits", rel)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read history of %s", rel)
	}

	return &Stamp{Hash: c.Hash.String(), When: c.Committer.When}, nil
}
