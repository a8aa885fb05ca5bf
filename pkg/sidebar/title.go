// File: pkg/sidebar/title.go
package sidebar

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"
)

// attributeBlockPattern matches a trailing inline attribute block such as
// the {#anchor} form some wikis attach to headings.
var attributeBlockPattern = regexp.MustCompile(`\{[^}]*\}\s*$`)

// TitleResolver derives display titles for sidebar entries.
type TitleResolver struct {
	markdown     goldmark.Markdown
	keepFileName bool
	logger       *zap.Logger
}

// NewTitleResolver returns a TitleResolver. With keepFileName set, markdown
// files are titled by their bare filename without reading their content.
func NewTitleResolver(keepFileName bool, logger *zap.Logger) *TitleResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TitleResolver{
		markdown:     goldmark.New(),
		keepFileName: keepFileName,
		logger:       logger,
	}
}

// Resolve returns the display title for the file at path. Markdown files are
// titled by their first level-1 heading; an unreadable file, a missing
// heading, or keepFileName mode falls back to the filename with the .md
// suffix removed. Every other extension keeps its full filename.
func (r *TitleResolver) Resolve(path string) string {
	name := filepath.Base(path)
	if strings.ToLower(filepath.Ext(name)) != ".md" {
		return name
	}

	fallback := strings.TrimSuffix(name, filepath.Ext(name))
	if r.keepFileName {
		return fallback
	}

	content, err := os.ReadFile(path)
	if err != nil {
		r.logger.Warn("Failed to read file for title extraction", zap.String("file", path), zap.Error(err))
		return fallback
	}

	if title := r.firstHeading(content); title != "" {
		return title
	}
	return fallback
}

// firstHeading walks the markdown AST and returns the text of the first
// level-1 heading, cleaned of attribute blocks and stray '#' characters.
func (r *TitleResolver) firstHeading(source []byte) string {
	doc := r.markdown.Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = cleanHeadingText(extractText(heading, source))
		return ast.WalkStop, nil
	})

	return title
}

// extractText collects the raw text segments beneath a node.
func extractText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			sb.Write(textNode.Segment.Value(source))
		} else {
			sb.WriteString(extractText(child, source))
		}
	}
	return sb.String()
}

// cleanHeadingText strips a trailing attribute block, then surrounding
// whitespace and residual '#' characters.
func cleanHeadingText(heading string) string {
	heading = attributeBlockPattern.ReplaceAllString(heading, "")
	heading = strings.TrimSpace(heading)
	heading = strings.Trim(heading, "#")
	return strings.TrimSpace(heading)
}
