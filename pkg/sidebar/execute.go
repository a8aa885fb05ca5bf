// File: pkg/sidebar/execute.go
package sidebar

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Execute runs one full generation pass: resolve the root, load settings,
// apply command-line options, scan the tree, render the document, and
// overwrite the sidebar file under the root.
func Execute(args Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()

	root, err := filepath.Abs(args.Root)
	if err != nil {
		logger.Error("Failed to resolve root path", zap.String("root", args.Root), zap.Error(err))
		return fmt.Errorf("failed to resolve root path: %w", err)
	}
	logger.Info("Starting sidebar generation", zap.String("root", root))

	settings, err := LoadSettings(root, logger)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if option, ok := settings.ApplyOptions(args.Options, logger); !ok {
		// Report the bad option on the console and generate anyway.
		color.Yellow("Unsupported option: %s", option)
	}

	filter := NewFilter(root, settings, logger)
	scanner := NewScanner(root, filter, logger)
	tree, err := scanner.Scan()
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}

	titles := NewTitleResolver(settings.KeepFileName, logger)
	renderer := NewRenderer(titles, logger)
	document := renderer.Render(root, tree)

	output := args.Output
	if output == "" {
		output = OutputFileName
	}
	outputPath := filepath.Join(root, output)
	if err := writeSidebar(outputPath, document, logger); err != nil {
		return fmt.Errorf("failed to write sidebar: %w", err)
	}

	logger.Info("Sidebar generation completed",
		zap.String("outputFile", outputPath),
		zap.Int("documents", countFiles(tree)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// writeSidebar overwrites the sidebar file with the rendered document.
func writeSidebar(path, document string, logger *zap.Logger) error {
	outFile, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create sidebar file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close sidebar file", zap.String("file", path), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(document); err != nil {
		logger.Error("Failed to write sidebar content", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush sidebar file", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// countFiles counts the file leaves in the tree.
func countFiles(node *Node) int {
	count := 0
	for _, child := range node.Children {
		if child.Dir {
			count += countFiles(child)
		} else {
			count++
		}
	}
	return count
}
