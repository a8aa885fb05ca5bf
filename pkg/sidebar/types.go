// File: pkg/sidebar/types.go
package sidebar

// Arguments holds the configuration options for a sidebar generation run.
type Arguments struct {
	Root    string   // Root directory of the documentation tree to index.
	Output  string   // Name of the generated file inside Root; defaults to OutputFileName.
	Options []string // Raw command-line options forwarded to the option parser.
}

// Settings is the per-run configuration resolved from the optional settings
// file and the command-line options. It is built once and not modified after
// option processing.
type Settings struct {
	Whitelist    map[string]bool // Absolute paths that are always kept.
	Exclude      []string        // Absolute prefixes dropped from the tree, trailing separator included.
	KeepFileName bool            // Use bare filenames as titles instead of extracted headings.
}

// Node is one entry of the scanned documentation tree: either a directory
// with ordered children or a file leaf.
type Node struct {
	Name     string  // Base name of the entry.
	Dir      bool    // True for directory nodes.
	Children []*Node // Directories first, each group sorted case-insensitively.
	RelPath  string  // File leaves only: path relative to the scan root.
	Ext      string  // File leaves only: lower-cased extension, dot included.
}

// Entry is a rendered link produced for one file at one directory level.
type Entry struct {
	Title  string // Display title shown in the sidebar.
	Target string // Link target relative to the wiki root.
}

// Constants
const (
	SettingsFileName = "generate_wiki_sidebar.json" // Settings file looked up under the root and .config/.
	OutputFileName   = "_sidebar.md"                // Generated navigation document.
	KeepFileNameFlag = "--keep-file-name"           // The only recognized command-line option.
)
