package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gitfeed/cmd"
	"gitfeed/pkg/logging"
	"gitfeed/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	v := version.Get()
	if err := logging.Setup(false, "gitfeed", v.Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	// An interrupt cancels the in-flight clone; the working copy is still
	// removed on the way out before the process exits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx, logger); err != nil {
		logger.Error("gitfeed execution failed", zap.Error(err))
		syncLogger(logger)
		stop()
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger, but only when stderr is a terminal or a
// regular file. Syncing a pipe returns "invalid argument" on some platforms.
func syncLogger(logger *zap.Logger) {
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
