package ingest

import (
	"bytes"
	"os"
	"unicode/utf8"
)

// ReadStatus classifies the outcome of reading one file. The decision to
// skip or include is an explicit value so callers can act on it and tests
// can assert it.
type ReadStatus int

const (
	// StatusIncluded means the file decoded as text and its content is
	// ready to serialize.
	StatusIncluded ReadStatus = iota
	// StatusBinary means the file looks like binary data and is skipped.
	StatusBinary
	// StatusFailed means the file could not be read; Err carries the cause.
	StatusFailed
)

// ReadResult is the per-file outcome produced by ReadFileText.
type ReadResult struct {
	Status  ReadStatus
	Content []byte
	Err     error
}

// ReadFileText reads a file and decides whether it is serializable text.
// A read error never aborts the run; it is reported in the result.
func ReadFileText(path string) ReadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadResult{Status: StatusFailed, Err: err}
	}
	if isBinary(data) {
		return ReadResult{Status: StatusBinary}
	}
	return ReadResult{Status: StatusIncluded, Content: data}
}

// sniffLen bounds how much of a file the binary heuristic inspects.
const sniffLen = 512

// isBinary reports whether content looks like binary data. A NUL byte is
// decisive; valid UTF-8 is decisive the other way. Otherwise the first
// 512 bytes are sampled and a high ratio of non-printable characters
// marks the file binary.
func isBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	sample := data
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}

	if bytes.IndexByte(sample, 0) != -1 {
		return true
	}
	if utf8.Valid(data) {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
