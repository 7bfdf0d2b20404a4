package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// BuildTree renders the working copy's directory structure with box-drawing
// connectors, rooted at the repository name. The version-control metadata
// directory and pattern-excluded paths are omitted; extension and size
// filters apply only to the contents artifact, not the tree.
func BuildTree(root, repoName string, excl *Exclusion, logger *zap.Logger) (string, error) {
	var b strings.Builder
	b.WriteString("Directory structure:\n")
	b.WriteString(fmt.Sprintf("└── %s/\n", repoName))

	lines, err := treeLines(root, root, excl, "    ", logger)
	if err != nil {
		return "", err
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// treeLines builds the connector lines for one directory level.
// os.ReadDir returns entries sorted by name, which keeps the tree
// deterministic.
func treeLines(dir, root string, excl *Exclusion, prefix string, logger *zap.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	visible := make([]os.DirEntry, 0, len(entries))
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		relPath, relErr := filepath.Rel(root, entryPath)
		if relErr != nil {
			logger.Warn("Failed to determine relative path in tree", zap.String("path", entryPath), zap.Error(relErr))
			continue
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			if entry.Name() == git.GitDirName {
				continue
			}
			if excl.MatchesPattern(relPath + "/") {
				continue
			}
		} else if excl.MatchesPattern(relPath) {
			continue
		}
		visible = append(visible, entry)
	}

	var lines []string
	for i, entry := range visible {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(visible)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		if entry.IsDir() {
			lines = append(lines, prefix+connector+entry.Name()+"/")
			sub, err := treeLines(filepath.Join(dir, entry.Name()), root, excl, childPrefix, logger)
			if err != nil {
				logger.Warn("Failed to render subtree",
					zap.String("directory", filepath.Join(dir, entry.Name())),
					zap.Error(err))
				continue
			}
			lines = append(lines, sub...)
		} else {
			lines = append(lines, prefix+connector+entry.Name())
		}
	}
	return lines, nil
}
