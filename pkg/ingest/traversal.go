package ingest

import (
	"io/fs"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// CollectFiles walks the working copy and returns the regular files that
// survive filtering, in lexicographic path order so output is reproducible
// across runs on the same tree. The version-control metadata directory is
// always pruned. Per-entry errors are logged and skipped; they never abort
// the walk.
func CollectFiles(root string, excl *Exclusion, logger *zap.Logger, verbose bool) ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Failed to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if d.Name() == git.GitDirName {
				return filepath.SkipDir
			}
			if relPath != "." && excl.MatchesPattern(relPath+"/") {
				if verbose {
					logger.Debug("Skipping excluded directory", zap.String("directory", relPath))
				}
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			if verbose {
				logger.Debug("Skipping irregular entry", zap.String("path", relPath))
			}
			return nil
		}

		if excl.ExcludedExt(relPath) {
			if verbose {
				logger.Debug("Skipping file due to excluded extension",
					zap.String("path", relPath),
					zap.String("extension", filepath.Ext(relPath)))
			}
			return nil
		}

		if excl.MatchesPattern(relPath) {
			if verbose {
				logger.Debug("Skipping file due to exclusion pattern", zap.String("path", relPath))
			}
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			logger.Warn("Failed to get file info", zap.String("path", relPath), zap.Error(infoErr))
			return nil
		}

		if excl.TooLarge(info.Size()) {
			if verbose {
				logger.Debug("Skipping file due to size limit",
					zap.String("path", relPath),
					zap.Int64("sizeBytes", info.Size()))
			}
			return nil
		}

		files = append(files, FileInfo{
			RelPath: relPath,
			AbsPath: path,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Completed file collection", zap.Int("fileCount", len(files)))
	return files, nil
}
