package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

// initFixtureRepo creates a local git repository with the given files and
// a single commit, and returns its path. Local paths are valid clone URLs
// for go-git, which keeps these tests off the network.
func initFixtureRepo(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, content, 0o644))
	}

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(".")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "fixture",
			Email: "fixture@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestRepoName(t *testing.T) {
	assert.Equal(t, "repo", RepoName("https://github.com/user/repo.git"))
	assert.Equal(t, "repo", RepoName("https://github.com/user/repo"))
	assert.Equal(t, "repo", RepoName("https://github.com/user/repo/"))
	assert.Equal(t, "repo", RepoName("git@github.com:user/repo.git"))
	assert.Equal(t, "my-project", RepoName("https://gitlab.com/group/sub/my-project.git"))
	assert.Equal(t, "repository", RepoName(""))
}

func TestCloneRepository(t *testing.T) {
	src := initFixtureRepo(t, map[string][]byte{
		"README.md":   []byte("# fixture\n"),
		"src/main.go": []byte("package main\n"),
	})

	wc, err := CloneRepository(context.Background(), src, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = wc.Close() })

	assert.Equal(t, src, wc.URL)
	assert.DirExists(t, wc.Root)
	assert.FileExists(t, filepath.Join(wc.Root, "README.md"))
	assert.FileExists(t, filepath.Join(wc.Root, "src", "main.go"))
}

func TestCloneRepository_CloseRemovesWorkingCopy(t *testing.T) {
	src := initFixtureRepo(t, map[string][]byte{"a.txt": []byte("a")})

	wc, err := CloneRepository(context.Background(), src, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, wc.Close())
	assert.NoDirExists(t, wc.Root)
}

func TestCloneRepository_FetchFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-repo")

	wc, err := CloneRepository(context.Background(), missing, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, wc)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, missing, fetchErr.URL)
}
