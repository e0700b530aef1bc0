package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Oscarnordstrom/rcat/cmd"
	"github.com/Oscarnordstrom/rcat/pkg/logging"
	"github.com/Oscarnordstrom/rcat/pkg/version"
)

func main() {
	logger, err := logging.Setup(false, "rcat", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		logger.Error("rcat failed", zap.Error(err))
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger. Syncing stderr fails with EINVAL when
// it is neither a terminal nor a regular file, so that case is skipped.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
