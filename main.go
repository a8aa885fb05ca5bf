package main

import (
	"log"
	"os"
	"strings"

	"wikigen/cmd"
	"wikigen/pkg/logging"
	"wikigen/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	debug := os.Getenv("WIKIGEN_DEBUG") != ""
	if err := logging.Setup(debug, "wikigen", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	// Execute the root command
	if err := cmd.Execute(logger); err != nil {
		logger.Fatal("wikigen execution failed", zap.Error(err))
	}

	// Check if stderr is a terminal or a regular file before attempting to sync;
	// syncing a pipe reports "invalid argument" on some platforms.
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
