// File: pkg/sidebar/filter.go
package sidebar

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// SupportedExtensions lists the document types that may appear in the
// sidebar, keyed by lower-cased extension.
var SupportedExtensions = map[string]bool{
	".docx": true,
	".html": true,
	".md":   true,
	".pdf":  true,
	".pptx": true,
	".xlsx": true,
}

// Filter decides per filesystem entry whether it belongs in the sidebar.
type Filter struct {
	root     string
	settings *Settings
	logger   *zap.Logger
}

// NewFilter returns a Filter bound to the scan root and resolved settings.
func NewFilter(root string, settings *Settings, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filter{
		root:     root,
		settings: settings,
		logger:   logger,
	}
}

// Ignore reports whether the entry at path should be left out of the tree.
// Rule order matters: a whitelisted path survives both the root-level file
// suppression and the exclude prefixes.
func (f *Filter) Ignore(path string, isDir bool) bool {
	if f.settings.Whitelist[path] {
		f.logger.Debug("Keeping whitelisted entry", zap.String("path", path))
		return false
	}

	if !isDir {
		if filepath.Dir(path) == f.root {
			f.logger.Debug("Ignoring file directly under the root", zap.String("path", path))
			return true
		}
		if !SupportedExtensions[strings.ToLower(filepath.Ext(path))] {
			f.logger.Debug("Ignoring file with unsupported extension",
				zap.String("path", path),
				zap.String("extension", filepath.Ext(path)))
			return true
		}
	}

	for _, prefix := range f.settings.Exclude {
		if strings.HasPrefix(path, prefix) {
			f.logger.Debug("Ignoring excluded entry",
				zap.String("path", path),
				zap.String("prefix", prefix))
			return true
		}
	}

	return false
}
