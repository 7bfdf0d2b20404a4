package ingest

import (
	"path/filepath"
	"strings"

	"gitfeed/pkg/exclude"

	"go.uber.org/zap"
)

// Exclusion holds the caller-supplied rules determining which files are
// omitted from the output: an extension set, a size cap, and optional
// gitignore-style patterns. Immutable for the duration of a run.
type Exclusion struct {
	exts     map[string]struct{}
	maxBytes int64
	patterns *exclude.RuleSet
}

// NewExclusion normalizes extensions (lowercase, leading dot) and compiles
// pattern lines. A maxFileSizeMB of 0 disables the size cap.
func NewExclusion(exts []string, maxFileSizeMB float64, patternLines []string, logger *zap.Logger) *Exclusion {
	extSet := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		extSet[NormalizeExt(ext)] = struct{}{}
	}

	rs := exclude.NewRuleSet(logger)
	rs.CompileLines(patternLines...)

	var maxBytes int64
	if maxFileSizeMB > 0 {
		maxBytes = int64(maxFileSizeMB * 1024 * 1024)
	}

	return &Exclusion{
		exts:     extSet,
		maxBytes: maxBytes,
		patterns: rs,
	}
}

// ExcludedExt reports whether the path's extension is in the excluded set.
// Matching is case-insensitive.
func (e *Exclusion) ExcludedExt(path string) bool {
	if len(e.exts) == 0 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, excluded := e.exts[ext]
	return excluded
}

// TooLarge reports whether a file of the given size exceeds the cap.
func (e *Exclusion) TooLarge(size int64) bool {
	return e.maxBytes > 0 && size > e.maxBytes
}

// MatchesPattern reports whether the relative path matches an exclusion
// pattern. Directory paths must carry a trailing slash.
func (e *Exclusion) MatchesPattern(relPath string) bool {
	if e.patterns.Len() == 0 {
		return false
	}
	return e.patterns.MatchesPath(relPath)
}

// NormalizeExt lowercases an extension and ensures a leading dot, so that
// "LOG", "log", and ".log" all exclude the same files.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
