package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// sectionSeparator frames each path header in the output document.
var sectionSeparator = strings.Repeat("=", 48)

// SerializeStats summarizes one serialization pass.
type SerializeStats struct {
	Included      int // Files written to the output document.
	SkippedBinary int // Files skipped because they look like binary data.
	Failed        int // Files skipped because they could not be read.
}

// SerializeFiles streams the surviving files to w in collection order: for
// each file a path header followed by its content and a blank separator.
// Read failures are logged and skipped; a write failure aborts the run.
func SerializeFiles(w io.Writer, files []FileInfo, logger *zap.Logger) (SerializeStats, error) {
	var stats SerializeStats
	writer := bufio.NewWriter(w)

	for _, f := range files {
		res := ReadFileText(f.AbsPath)
		switch res.Status {
		case StatusFailed:
			logger.Warn("Skipping unreadable file",
				zap.String("path", f.RelPath),
				zap.Error(res.Err))
			stats.Failed++
			continue
		case StatusBinary:
			logger.Warn("Skipping binary file", zap.String("path", f.RelPath))
			stats.SkippedBinary++
			continue
		}

		if err := writeSection(writer, f.RelPath, res.Content); err != nil {
			return stats, fmt.Errorf("failed to write section for %s: %w", f.RelPath, err)
		}
		stats.Included++
	}

	if err := writer.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}
	return stats, nil
}

// writeSection emits one output section: separator, path header, separator,
// the raw file content, then two newlines.
func writeSection(w *bufio.Writer, relPath string, content []byte) error {
	if _, err := fmt.Fprintf(w, "%s\nFile: %s\n%s\n", sectionSeparator, relPath, sectionSeparator); err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	_, err := w.WriteString("\n\n")
	return err
}
