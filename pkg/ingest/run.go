// Package ingest implements the fetch-filter-serialize pipeline: clone a
// remote repository into a scoped working copy, walk its tree applying the
// exclusion config, and concatenate the surviving file contents with path
// headers into a single output document.
package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run executes one full pipeline pass: fetch, walk+filter, tree, serialize,
// cleanup. The working copy is removed on every exit path, including
// cancellation of ctx. Output files are only created after a successful
// fetch, so a failed fetch leaves nothing behind.
func Run(ctx context.Context, args Arguments, logger *zap.Logger) error {
	startTime := time.Now()

	excl := NewExclusion(args.ExcludeExts, args.MaxFileSizeMB, args.ExcludePatterns, logger)

	wc, err := CloneRepository(ctx, args.RepoURL, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := wc.Close(); closeErr != nil {
			logger.Warn("Failed to clean up working copy", zap.Error(closeErr))
		}
	}()

	files, err := CollectFiles(wc.Root, excl, logger, args.Verbose)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	outputPath := args.Output
	if outputPath == "" {
		outputPath = filepath.Join(wc.Name, DefaultOutputName)
	}

	if !args.NoTree {
		treePath := args.Tree
		if treePath == "" {
			treePath = filepath.Join(wc.Name, DefaultTreeName)
		}
		treeContent, treeErr := BuildTree(wc.Root, wc.Name, excl, logger)
		if treeErr != nil {
			return fmt.Errorf("failed to generate directory structure: %w", treeErr)
		}
		if err := ensureDirectory(filepath.Dir(treePath)); err != nil {
			return err
		}
		if err := os.WriteFile(treePath, []byte(treeContent), 0o644); err != nil {
			return fmt.Errorf("failed to write directory structure: %w", err)
		}
		logger.Info("Directory structure saved", zap.String("treeFile", treePath))
	}

	var out io.Writer
	if outputPath == "-" {
		out = os.Stdout
	} else {
		if err := ensureDirectory(filepath.Dir(outputPath)); err != nil {
			return err
		}
		outFile, createErr := os.Create(outputPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := outFile.Close(); closeErr != nil {
				logger.Warn("Failed to close output file", zap.String("outputFile", outputPath), zap.Error(closeErr))
			}
		}()
		out = outFile
	}

	stats, err := SerializeFiles(out, files, logger)
	if err != nil {
		return err
	}

	logger.Info("Serialized repository",
		zap.String("repository", wc.Name),
		zap.String("outputFile", outputPath),
		zap.Int("includedFiles", stats.Included),
		zap.Int("skippedBinary", stats.SkippedBinary),
		zap.Int("unreadableFiles", stats.Failed),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
