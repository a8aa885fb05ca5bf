// File: pkg/sidebar/render.go
package sidebar

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// indentStep is the indentation added per directory depth.
const indentStep = "  "

// Renderer converts a scanned tree into the sidebar document.
type Renderer struct {
	titles *TitleResolver
	logger *zap.Logger
	now    func() time.Time
}

// NewRenderer returns a Renderer using the given title resolver.
func NewRenderer(titles *TitleResolver, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		titles: titles,
		logger: logger,
		now:    time.Now,
	}
}

// Render produces the full sidebar document for the tree rooted at node,
// wrapped in the generated-content banner. root is the absolute scan root
// used to resolve titles from file content.
func (r *Renderer) Render(root string, node *Node) string {
	body := r.renderLevel(root, node, "", "")
	timestamp := r.now().Format("2006-01-02 15:04:05 MST")

	var sb strings.Builder
	sb.WriteString(banner(timestamp))
	sb.WriteString("<!-- markdownlint-disable MD033 -->\n\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	sb.WriteString(banner(timestamp))

	document := sb.String()
	r.logger.Debug("Rendered sidebar document",
		zap.Int("sizeBytes", len(document)),
		zap.String("timestamp", timestamp))
	return document
}

// banner returns the warning comment wrapped around the generated document.
func banner(timestamp string) string {
	return fmt.Sprintf("<!--\n  WARNING: this file is generated automatically, do not edit it by hand.\n  Generated on %s by wikigen.\n-->\n", timestamp)
}

// renderLevel emits one directory level: a collapsible section per
// subdirectory first, then the sorted link list for the files, everything
// indented to the current depth. folder accumulates the relative path with
// forward slashes.
func (r *Renderer) renderLevel(root string, node *Node, folder, indent string) string {
	var sb strings.Builder
	var entries []Entry

	for _, child := range node.Children {
		if child.Dir {
			sb.WriteString(indent + "<details>\n")
			sb.WriteString(indent + "  <summary>" + capitalize(child.Name) + "</summary>\n\n")
			sb.WriteString(r.renderLevel(root, child, joinFolder(folder, child.Name), indent+indentStep))
			sb.WriteString("\n" + indent + "</details>\n")
			continue
		}
		entries = append(entries, Entry{
			Title:  r.titles.Resolve(filepath.Join(root, filepath.FromSlash(child.RelPath))),
			Target: linkTarget(folder, child.Name),
		})
	}

	// Ordinal sort on the title; ties keep insertion order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Title < entries[j].Title
	})

	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("%s- [%s](%s)\n", indent, entry.Title, entry.Target))
	}

	return sb.String()
}

// linkTarget builds the wiki link for a file: forward slashes, rooted at
// "./", with the ".md" suffix dropped because the viewer resolves markdown
// pages without it.
func linkTarget(folder, name string) string {
	target := "./" + name
	if folder != "" {
		target = "./" + folder + "/" + name
	}
	return strings.TrimSuffix(target, ".md")
}

// joinFolder appends a directory name to the accumulated relative path.
func joinFolder(folder, name string) string {
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// capitalize upper-cases the first rune of a directory name for its section header.
func capitalize(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}
