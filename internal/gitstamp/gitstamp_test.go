package gitstamp

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/astgen/errors"
)

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string, when time.Time) plumbing.Hash {
	t.Helper()
	full := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(filepath.ToSlash(name))
	require.NoError(t, err)

	hash, err := wt.Commit("update "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "astgen", Email: "astgen@example.com", When: when},
	})
	require.NoError(t, err)
	return hash
}

func TestLastCommit(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	first := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	hash := commitFile(t, repo, dir, "rust/ast.txt", "struct A;", first)
	commitFile(t, repo, dir, "README", "unrelated", first.Add(time.Hour))

	stamp, err := LastCommit(filepath.Join(dir, "rust", "ast.txt"))
	require.NoError(t, err)
	assert.Equal(t, hash.String(), stamp.Hash)
	assert.True(t, first.Equal(stamp.When), "got %s", stamp.When)
	assert.Equal(t, "2024-01-02T03:04:05Z ("+hash.String()[:7]+")", stamp.String())

	second := first.Add(48 * time.Hour)
	hash = commitFile(t, repo, dir, "rust/ast.txt", "struct B;", second)

	stamp, err = LastCommit(filepath.Join(dir, "rust", "ast.txt"))
	require.NoError(t, err)
	assert.Equal(t, hash.String(), stamp.Hash)
	assert.True(t, second.Equal(stamp.When))
}

func TestLastCommitNotTracked(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	untracked := filepath.Join(dir, "ast.txt")
	require.NoError(t, os.WriteFile(untracked, []byte("struct A;"), 0644))

	_, err = LastCommit(untracked)
	assert.True(t, errors.Is(err, ErrNotTracked), "empty repository: %v", err)

	commitFile(t, repo, dir, "other.txt", "x", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err = LastCommit(untracked)
	assert.True(t, errors.Is(err, ErrNotTracked), "untracked file: %v", err)
}

func TestStampString(t *testing.T) {
	s := Stamp{Hash: "abc", When: time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("x", 3600))}
	assert.Equal(t, "2024-01-01T00:00:00Z (abc)", s.String())
}
