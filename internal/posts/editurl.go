package posts

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// resolveEditURL produces the per-post edit link according to the configured
// policy. Template policies join the base URL with the site-relative path of
// the owning content root; the root is the default one unless localized edit
// targets were requested.
func resolveEditURL(policy runtimeconfig.EditURLPolicy, editLocalized bool, siteDir, locale string, paths interfaces.ContentPaths, doc *interfaces.Document) string {
	switch policy.Kind {
	case runtimeconfig.EditURLTemplate:
		root := paths.ContentPath
		if editLocalized {
			root = doc.Root
		}
		return NormalizeURL(policy.BaseURL, siteRelative(siteDir, root), doc.RelPath)
	case runtimeconfig.EditURLCustom:
		if policy.Resolve == nil {
			return ""
		}
		return policy.Resolve(runtimeconfig.EditURLContext{
			ContentPath: siteRelative(siteDir, doc.Root),
			Path:        doc.RelPath,
			Locale:      locale,
		})
	default:
		return ""
	}
}

// siteRelative expresses a content root relative to the site directory,
// slash-separated. Roots outside the site directory pass through unchanged.
func siteRelative(siteDir, root string) string {
	if siteDir == "" {
		return filepath.ToSlash(root)
	}
	rel, err := filepath.Rel(siteDir, root)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(root)
	}
	return filepath.ToSlash(rel)
}
