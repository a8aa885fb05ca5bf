// File: pkg/sidebar/settings.go
package sidebar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// settingsFile mirrors the JSON layout of generate_wiki_sidebar.json. Paths
// are listed relative to the scan root with forward slashes; keepFileName is
// documented as both boolean and 0/1, so it decodes leniently.
type settingsFile struct {
	Whitelist    []string    `json:"whitelist"`
	Exclude      []string    `json:"exclude"`
	KeepFileName lenientBool `json:"keepFileName"`
}

// lenientBool accepts true/false as well as the numeric 0/1 form.
type lenientBool bool

func (b *lenientBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", "1":
		*b = true
	case "false", "0", "null":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %s", data)
	}
	return nil
}

// DefaultSettings returns the configuration used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{Whitelist: map[string]bool{}}
}

// LoadSettings resolves the settings file for the given root and returns the
// normalized configuration. The file is searched directly under the root
// first, then under its .config subfolder. A missing file is not an error; a
// file that exists but does not parse is.
func LoadSettings(root string, logger *zap.Logger) (*Settings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	candidates := []string{
		filepath.Join(root, SettingsFileName),
		filepath.Join(root, ".config", SettingsFileName),
	}

	for _, path := range candidates {
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Debug("Settings file not present", zap.String("path", path))
				continue
			}
			logger.Error("Failed to read settings file", zap.String("path", path), zap.Error(err))
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}

		var raw settingsFile
		if err := json.Unmarshal(content, &raw); err != nil {
			logger.Error("Failed to parse settings file",
				zap.String("path", path),
				zap.ByteString("content", content),
				zap.Error(err))
			return nil, fmt.Errorf("failed to parse settings file %s (content: %s): %w", path, content, err)
		}

		settings := normalizeSettings(&raw, root)
		logger.Debug("Loaded settings file",
			zap.String("path", path),
			zap.Int("whitelistEntries", len(settings.Whitelist)),
			zap.Int("excludeEntries", len(settings.Exclude)),
			zap.Bool("keepFileName", settings.KeepFileName))
		return settings, nil
	}

	logger.Debug("No settings file found, using defaults", zap.String("root", root))
	return DefaultSettings(), nil
}

// normalizeSettings anchors every whitelist and exclude entry at the scan
// root with platform separators. Exclude entries get a trailing separator so
// they only ever match as directory prefixes.
func normalizeSettings(raw *settingsFile, root string) *Settings {
	settings := DefaultSettings()
	settings.KeepFileName = bool(raw.KeepFileName)

	for _, entry := range raw.Whitelist {
		settings.Whitelist[filepath.Join(root, filepath.FromSlash(entry))] = true
	}
	for _, entry := range raw.Exclude {
		prefix := filepath.Join(root, filepath.FromSlash(entry))
		settings.Exclude = append(settings.Exclude, prefix+string(os.PathSeparator))
	}

	return settings
}

// ApplyOptions processes command-line options against the settings. The only
// recognized option is KeepFileNameFlag. Processing halts at the first
// unrecognized non-empty argument, which is returned so the caller can
// report it; generation continues regardless.
func (s *Settings) ApplyOptions(options []string, logger *zap.Logger) (string, bool) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, option := range options {
		if option == "" {
			continue
		}
		if option == KeepFileNameFlag {
			s.KeepFileName = true
			logger.Debug("Enabled keep-file-name mode via command line")
			continue
		}
		logger.Warn("Unsupported command-line option", zap.String("option", option))
		return option, false
	}

	return "", true
}
