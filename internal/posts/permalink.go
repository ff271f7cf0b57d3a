package posts

import "strings"

// NormalizeURL joins URL fragments with single slashes, collapsing duplicate
// separators between parts while leaving an absolute scheme intact. Relative
// results are rooted at "/".
func NormalizeURL(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		cleaned = append(cleaned, part)
	}
	if len(cleaned) == 0 {
		return "/"
	}

	joined := strings.Join(cleaned, "/")

	scheme := ""
	if i := strings.Index(joined, "://"); i >= 0 {
		scheme = joined[:i+3]
		joined = joined[i+3:]
	}

	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", "/")
	}

	if scheme == "" && !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	if len(joined) > 1 {
		joined = strings.TrimSuffix(joined, "/")
	}

	return scheme + joined
}
