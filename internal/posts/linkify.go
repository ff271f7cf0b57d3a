package posts

import (
	"path"
	"regexp"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

var markdownLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

// Linkify rewrites relative Markdown links that point at sibling source
// files, replacing each file target with the permalink of the post collected
// from it. permalinks is keyed by content-root-relative source path. Targets
// that resolve to no collected source are left untouched and reported once
// per distinct target through onBroken.
func Linkify(content, sourcePath string, permalinks map[string]string, onBroken interfaces.BrokenLinkFunc) string {
	reported := map[string]struct{}{}

	return markdownLinkPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := markdownLinkPattern.FindStringSubmatch(match)
		label, target := m[1], strings.TrimSpace(m[2])

		// A quoted link title stays attached to the rewritten target.
		title := ""
		if i := strings.IndexAny(target, " \t"); i >= 0 {
			title = target[i:]
			target = target[:i]
		}

		base, anchor := target, ""
		if i := strings.IndexByte(base, '#'); i >= 0 {
			anchor = base[i:]
			base = base[:i]
		}

		if !isRelativeSourceLink(base) {
			return match
		}

		resolved := path.Clean(path.Join(path.Dir(sourcePath), base))
		permalink, ok := permalinks[resolved]
		if !ok {
			if onBroken != nil {
				if _, seen := reported[target]; !seen {
					reported[target] = struct{}{}
					onBroken(target, sourcePath)
				}
			}
			return match
		}

		return "[" + label + "](" + permalink + anchor + title + ")"
	})
}

// isRelativeSourceLink reports whether a link target is a relative reference
// to a Markdown source file. Absolute URLs, site-absolute paths, and bare
// anchors are not rewritten.
func isRelativeSourceLink(target string) bool {
	if target == "" ||
		strings.HasPrefix(target, "/") ||
		strings.HasPrefix(target, "#") ||
		strings.Contains(target, "://") ||
		strings.HasPrefix(target, "mailto:") {
		return false
	}
	ext := path.Ext(target)
	return ext == ".md" || ext == ".mdx"
}
