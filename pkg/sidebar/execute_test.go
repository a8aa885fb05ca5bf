package sidebar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSidebar(t *testing.T, root string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, OutputFileName))
	require.NoError(t, err)
	return string(content)
}

// stripTimestamps drops the banner lines that embed the generation time.
func stripTimestamps(document string) string {
	var kept []string
	for _, line := range strings.Split(document, "\n") {
		if strings.Contains(line, "Generated on") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func TestExecuteGeneratesSidebar(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "intro.md"), []byte("# Getting Started\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "report.pdf"), []byte("%PDF-1.4"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme.md"), []byte("# Root Readme\n"), 0644))

	require.NoError(t, Execute(Arguments{Root: root}, nil))

	document := readSidebar(t, root)
	assert.Contains(t, document, "<summary>Guides</summary>")
	assert.Contains(t, document, "- [Getting Started](./guides/intro)")
	assert.Contains(t, document, "- [report.pdf](./guides/report.pdf)")
	// Root-level files never surface.
	assert.NotContains(t, document, "readme")
}

func TestExecuteHonorsSettingsFile(t *testing.T) {
	root := t.TempDir()
	settings := `{
		"whitelist": ["drafts/keep.md"],
		"exclude": ["drafts"]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(root, SettingsFileName), []byte(settings), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "drafts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "drafts", "wip.md"), []byte("# Work In Progress\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "drafts", "keep.md"), []byte("# Kept Draft\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "intro.md"), []byte("# Getting Started\n"), 0644))

	require.NoError(t, Execute(Arguments{Root: root}, nil))

	document := readSidebar(t, root)
	assert.Contains(t, document, "- [Kept Draft](./drafts/keep)")
	assert.NotContains(t, document, "Work In Progress")
	assert.Contains(t, document, "- [Getting Started](./guides/intro)")
}

func TestExecuteWhitelistedRootFileIsKept(t *testing.T) {
	root := t.TempDir()
	settings := `{"whitelist": ["overview.md"]}`
	require.NoError(t, os.WriteFile(filepath.Join(root, SettingsFileName), []byte(settings), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "overview.md"), []byte("# Overview\n"), 0644))

	require.NoError(t, Execute(Arguments{Root: root}, nil))

	document := readSidebar(t, root)
	assert.Contains(t, document, "- [Overview](./overview)")
}

func TestExecuteKeepFileNameOption(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "notes.md"), []byte("# A Fancy Title\n"), 0644))

	require.NoError(t, Execute(Arguments{Root: root, Options: []string{KeepFileNameFlag}}, nil))

	document := readSidebar(t, root)
	assert.Contains(t, document, "- [notes](./guides/notes)")
	assert.NotContains(t, document, "A Fancy Title")
}

func TestExecuteUnsupportedOptionStillGenerates(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "intro.md"), []byte("# Getting Started\n"), 0644))

	require.NoError(t, Execute(Arguments{Root: root, Options: []string{"--bogus"}}, nil))

	document := readSidebar(t, root)
	assert.Contains(t, document, "- [Getting Started](./guides/intro)")
}

func TestExecuteMalformedSettingsIsFatal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, SettingsFileName), []byte("not json"), 0644))

	err := Execute(Arguments{Root: root}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), SettingsFileName)
	assert.NoFileExists(t, filepath.Join(root, OutputFileName))
}

func TestExecuteOverwritesPreviousOutput(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "intro.md"), []byte("# Getting Started\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, OutputFileName), []byte("stale content"), 0644))

	require.NoError(t, Execute(Arguments{Root: root}, nil))

	document := readSidebar(t, root)
	assert.NotContains(t, document, "stale content")
	assert.Contains(t, document, "- [Getting Started](./guides/intro)")
}

func TestExecuteRoundTripIsStable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides", "deep"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "intro.md"), []byte("# Getting Started\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "deep", "detail.md"), []byte("no heading\n"), 0644))

	require.NoError(t, Execute(Arguments{Root: root}, nil))
	first := readSidebar(t, root)

	require.NoError(t, Execute(Arguments{Root: root}, nil))
	second := readSidebar(t, root)

	// Identical output modulo the embedded timestamps. The generated file
	// itself sits at the root and is therefore never indexed.
	assert.Equal(t, stripTimestamps(first), stripTimestamps(second))
}

func TestExecuteCustomOutputName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "guides", "intro.md"), []byte("# Getting Started\n"), 0644))

	require.NoError(t, Execute(Arguments{Root: root, Output: "nav.md"}, nil))

	content, err := os.ReadFile(filepath.Join(root, "nav.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "- [Getting Started](./guides/intro)")
}
