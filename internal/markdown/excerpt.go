package markdown

import (
	"strings"

	stripmd "github.com/writeas/go-strip-markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Summary carries the metadata fallbacks derived from a post body: the first
// top-level heading and a plain-text excerpt of the first paragraph.
type Summary struct {
	ContentTitle string
	Excerpt      string
}

var summaryParser = goldmark.New()

// ExtractSummary walks the Markdown AST and returns the content title and
// excerpt used when frontmatter omits title or description. The excerpt is
// stripped of Markdown syntax so it reads as plain text in listings and
// feeds.
func ExtractSummary(body []byte) Summary {
	root := summaryParser.Parser().Parse(text.NewReader(body))

	var summary Summary
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if summary.ContentTitle == "" && node.Level == 1 {
				summary.ContentTitle = strings.TrimSpace(string(node.Text(body)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if summary.Excerpt == "" {
				raw := strings.TrimSpace(string(node.Text(body)))
				summary.Excerpt = strings.TrimSpace(stripmd.Strip(raw))
			}
			return ast.WalkSkipChildren, nil
		}
		if summary.ContentTitle != "" && summary.Excerpt != "" {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return summary
}
