package posts

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// deriveSlug applies the slug precedence chain: explicit frontmatter slug,
// then the date-prefixed link derived from the filename, then the bare
// source path without its extension.
func deriveSlug(fm interfaces.FrontMatter, dateLink *interfaces.DateLink, relPath string) string {
	if s := strings.TrimSpace(fm.Slug); s != "" {
		return s
	}
	if dateLink != nil {
		return dateLink.Link
	}
	return stripSourceExtension(relPath)
}

// buildTags resolves frontmatter tag labels into tag records whose permalinks
// point at the tag listing page under the blog route.
func buildTags(labels []string, baseURL, routeBasePath string) ([]interfaces.Tag, error) {
	if len(labels) == 0 {
		return nil, nil
	}

	tags := make([]interfaces.Tag, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		normalized, err := slug.Normalize(label)
		if err != nil {
			return nil, fmt.Errorf("blog posts: normalize tag %q: %w", label, err)
		}
		tags = append(tags, interfaces.Tag{
			Label:     label,
			Permalink: NormalizeURL(baseURL, routeBasePath, "tags", normalized),
		})
	}
	return tags, nil
}
