// Package markdown discovers and parses blog source files. It resolves the
// localized/default content roots on a per-file basis, extracts the
// recognized frontmatter schema, and derives the content title and excerpt
// used as metadata fallbacks by the post collector.
package markdown
