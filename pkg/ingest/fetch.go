package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// FetchError wraps a failure to obtain the working copy: invalid URL,
// network failure, or denied access. It is always fatal to the run.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch repository %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// WorkingCopy is a transient local clone of the remote repository. It is
// owned exclusively by one run and must be removed via Close on every exit
// path.
type WorkingCopy struct {
	URL  string // Source repository URL.
	Name string // Repository name derived from the URL.
	Root string // Temporary directory holding the clone.

	logger *zap.Logger
}

// CloneRepository clones the repository at url into a fresh temporary
// directory using the caller's ambient credentials. On failure the
// temporary directory is removed and a FetchError is returned.
func CloneRepository(ctx context.Context, url string, logger *zap.Logger) (*WorkingCopy, error) {
	tmpDir, err := os.MkdirTemp("", "gitfeed-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}

	logger.Info("Cloning repository",
		zap.String("url", url),
		zap.String("workingCopy", tmpDir))

	if _, err := git.PlainCloneContext(ctx, tmpDir, false, &git.CloneOptions{
		URL: url,
	}); err != nil {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			logger.Warn("Failed to remove temporary directory after clone failure",
				zap.String("workingCopy", tmpDir), zap.Error(rmErr))
		}
		return nil, &FetchError{URL: url, Err: err}
	}

	return &WorkingCopy{
		URL:    url,
		Name:   RepoName(url),
		Root:   tmpDir,
		logger: logger,
	}, nil
}

// Close removes the working copy from disk.
func (wc *WorkingCopy) Close() error {
	wc.logger.Debug("Removing working copy", zap.String("workingCopy", wc.Root))
	if err := os.RemoveAll(wc.Root); err != nil {
		return fmt.Errorf("failed to remove working copy %s: %w", wc.Root, err)
	}
	return nil
}

// RepoName derives the repository name from its URL.
// Example: https://github.com/user/repo.git -> repo
func RepoName(url string) string {
	trimmed := strings.TrimRight(url, "/")
	name := trimmed[strings.LastIndexByte(trimmed, '/')+1:]
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		return "repository"
	}
	return name
}
