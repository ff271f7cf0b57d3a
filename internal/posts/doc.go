// Package posts derives render-ready blog post records from parsed Markdown
// sources: permalink and slug derivation, date precedence, edit URLs, tag
// permalinks, reading time, truncation, cross-post link resolution, and
// syndication feed assembly.
package posts
