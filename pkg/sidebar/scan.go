// File: pkg/sidebar/scan.go
package sidebar

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Scanner builds the filtered documentation tree for one run.
type Scanner struct {
	root   string
	filter *Filter
	logger *zap.Logger
}

// NewScanner returns a Scanner for the given root using the provided filter.
func NewScanner(root string, filter *Filter, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		root:   root,
		filter: filter,
		logger: logger,
	}
}

// Scan walks the scan root and returns the filtered tree. The returned node
// has no children when the tree holds no eligible documents.
func (s *Scanner) Scan() (*Node, error) {
	return s.scanDir(s.root)
}

// scanDir lists one directory and assembles its ordered children:
// subdirectories first, files second, each group sorted case-insensitively.
// Subtrees without any eligible descendant are pruned.
func (s *Scanner) scanDir(dir string) (*Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Error("Failed to read directory", zap.String("directory", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var dirs []*Node
	var files []*Node

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			// Dot directories (.git, .config, ...) are never descended into.
			if strings.HasPrefix(name, ".") {
				s.logger.Debug("Skipping dot directory", zap.String("directory", path))
				continue
			}
			if s.filter.Ignore(path, true) {
				s.logger.Debug("Skipping filtered directory", zap.String("directory", path))
				continue
			}
			subtree, err := s.scanDir(path)
			if err != nil {
				s.logger.Warn("Skipping unreadable directory", zap.String("directory", path), zap.Error(err))
				continue
			}
			if len(subtree.Children) == 0 {
				s.logger.Debug("Pruning empty subtree", zap.String("directory", path))
				continue
			}
			dirs = append(dirs, subtree)
			continue
		}

		if s.filter.Ignore(path, false) {
			continue
		}

		relPath, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			relPath = name // Fallback to the bare name if the root relation fails
		}
		files = append(files, &Node{
			Name:    name,
			RelPath: relPath,
			Ext:     strings.ToLower(filepath.Ext(name)),
		})
		s.logger.Debug("Added file to tree", zap.String("file", relPath))
	}

	// Sort siblings case-insensitively, directories and files independently.
	sort.SliceStable(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Name) < strings.ToLower(dirs[j].Name)
	})
	sort.SliceStable(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})

	node := &Node{Name: filepath.Base(dir), Dir: true}
	node.Children = append(node.Children, dirs...)
	node.Children = append(node.Children, files...)
	return node, nil
}
