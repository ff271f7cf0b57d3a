package interfaces

import "time"

// ContentPaths names the directory pair searched for blog source files. The
// localized path is consulted first so translated copies shadow the default
// content on a per-file basis.
type ContentPaths struct {
	// ContentPath is the default content root (e.g. "blog").
	ContentPath string
	// ContentPathLocalized holds the locale-specific content root, when any.
	ContentPathLocalized string
}

// List returns the lookup order applied during per-file directory resolution:
// localized first, then the default root. Empty entries are elided.
func (p ContentPaths) List() []string {
	paths := make([]string, 0, 2)
	if p.ContentPathLocalized != "" {
		paths = append(paths, p.ContentPathLocalized)
	}
	if p.ContentPath != "" {
		paths = append(paths, p.ContentPath)
	}
	return paths
}

// FrontMatter models the recognized metadata block parsed from the top of a
// blog source file. Unrecognized keys are preserved in Custom so host schemas
// can validate them; Raw carries the full decoded map.
type FrontMatter struct {
	Title       string
	Description string
	Slug        string
	Date        time.Time
	Tags        []string
	Draft       bool
	// LegacyID carries the deprecated `id` frontmatter field. Collectors warn
	// when it is present but still honour it for backwards compatibility.
	LegacyID string
	Custom   map[string]any
	Raw      map[string]any
}

// Document is a parsed blog source file before post derivation. RelPath is
// slash-separated and relative to Root, the content directory that actually
// owns the file after localized/default resolution.
type Document struct {
	Root         string
	RelPath      string
	FrontMatter  FrontMatter
	Body         []byte
	ContentTitle string
	Excerpt      string
	// ChangeTime is the filesystem timestamp used when neither frontmatter
	// nor the filename carries a date.
	ChangeTime time.Time
}

// Tag pairs a raw tag label with the permalink of its listing page.
type Tag struct {
	Label     string
	Permalink string
}

// PostMetadata is the derived, render-ready metadata for a single post.
type PostMetadata struct {
	Permalink     string
	EditURL       string
	Source        string
	Title         string
	Description   string
	Date          time.Time
	FormattedDate string
	Tags          []Tag
	// ReadingTime is minutes of estimated reading, nil when the option is off.
	ReadingTime *int
	Truncated   bool
}

// BlogPost is one collected post. Instances are immutable after collection;
// IDs are unique by convention only (derived from slug or title).
type BlogPost struct {
	ID       string
	Metadata PostMetadata
}

// DateLink is the transient pairing of a parsed filename date with the
// date-prefixed URL fragment built from it.
type DateLink struct {
	Date time.Time
	Link string
}

// BrokenLinkFunc reports a relative Markdown link whose target is not part of
// the collected sources. This is an observability side effect, not an error.
type BrokenLinkFunc func(link, sourcePath string)
