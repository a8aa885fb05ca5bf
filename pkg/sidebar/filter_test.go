package sidebar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterIgnore(t *testing.T) {
	root := filepath.Join(string(os.PathSeparator), "docs")
	sep := string(os.PathSeparator)

	settings := DefaultSettings()
	settings.Whitelist[filepath.Join(root, "rootfile.md")] = true
	settings.Whitelist[filepath.Join(root, "drafts", "keep.md")] = true
	settings.Whitelist[filepath.Join(root, "guides", "notes.txt")] = true
	settings.Exclude = []string{filepath.Join(root, "drafts") + sep}

	filter := NewFilter(root, settings, nil)

	t.Run("file in subdirectory with supported extension is kept", func(t *testing.T) {
		assert.False(t, filter.Ignore(filepath.Join(root, "guides", "intro.md"), false))
		assert.False(t, filter.Ignore(filepath.Join(root, "guides", "report.PDF"), false))
	})

	t.Run("file directly under the root is ignored", func(t *testing.T) {
		assert.True(t, filter.Ignore(filepath.Join(root, "readme.md"), false))
	})

	t.Run("whitelisted root file is kept", func(t *testing.T) {
		assert.False(t, filter.Ignore(filepath.Join(root, "rootfile.md"), false))
	})

	t.Run("unsupported extension is ignored", func(t *testing.T) {
		assert.True(t, filter.Ignore(filepath.Join(root, "guides", "notes.bak"), false))
		assert.True(t, filter.Ignore(filepath.Join(root, "guides", "script.sh"), false))
	})

	t.Run("whitelisted unsupported extension is kept", func(t *testing.T) {
		assert.False(t, filter.Ignore(filepath.Join(root, "guides", "notes.txt"), false))
	})

	t.Run("excluded prefix is ignored", func(t *testing.T) {
		assert.True(t, filter.Ignore(filepath.Join(root, "drafts", "wip.md"), false))
		assert.True(t, filter.Ignore(filepath.Join(root, "drafts", "deep", "wip.md"), false))
	})

	t.Run("whitelist overrides exclude", func(t *testing.T) {
		assert.False(t, filter.Ignore(filepath.Join(root, "drafts", "keep.md"), false))
	})

	t.Run("exclude prefix does not match sibling directories", func(t *testing.T) {
		assert.False(t, filter.Ignore(filepath.Join(root, "drafts-final", "done.md"), false))
	})

	t.Run("directories only honor whitelist and exclude", func(t *testing.T) {
		assert.False(t, filter.Ignore(filepath.Join(root, "guides"), true))
		assert.True(t, filter.Ignore(filepath.Join(root, "drafts", "deep"), true))
	})
}
