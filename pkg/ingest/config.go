package ingest

// Arguments holds the configuration options for one serialization run.
type Arguments struct {
	RepoURL         string   // Remote repository URL to clone and serialize.
	Output          string   // Destination for the contents artifact; "-" means stdout.
	Tree            string   // Destination for the directory-structure artifact.
	NoTree          bool     // If true, skip writing the directory-structure artifact.
	ExcludeExts     []string // File extensions to exclude; leading dot optional, case-insensitive.
	ExcludePatterns []string // Gitignore-style patterns applied to relative paths.
	MaxFileSizeMB   float64  // Maximum file size in megabytes; 0 means unbounded.
	Verbose         bool     // If true, enables detailed logging of skipped files.
}

// Default artifact names, placed inside a directory named after the
// repository when no explicit destination is given.
const (
	DefaultOutputName = "contents.txt"
	DefaultTreeName   = "directory_structure.txt"
)

// FileInfo identifies one regular file that survived filtering.
type FileInfo struct {
	RelPath string // Slash-separated path relative to the working copy root.
	AbsPath string // Absolute path on disk.
	Size    int64  // Size in bytes at collection time.
}
