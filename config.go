package blog

import (
	"github.com/goliatone/go-blog/internal/runtimeconfig"
)

// Config is the root configuration consumed by New.
type Config = runtimeconfig.Config

// SiteConfig describes the site the blog content is mounted on.
type SiteConfig = runtimeconfig.SiteConfig

// ContentConfig mirrors the ingestion options recognized by the collector.
type ContentConfig = runtimeconfig.ContentConfig

// FeedConfig captures the syndication feed channel options.
type FeedConfig = runtimeconfig.FeedConfig

// LoggingConfig configures the go-logger backed provider.
type LoggingConfig = runtimeconfig.LoggingConfig

// EditURLKind selects how per-post edit URLs are produced.
type EditURLKind = runtimeconfig.EditURLKind

// EditURLPolicy is the resolved form of the edit URL option.
type EditURLPolicy = runtimeconfig.EditURLPolicy

// EditURLContext is handed to custom edit URL resolvers.
type EditURLContext = runtimeconfig.EditURLContext

// EditURLFunc resolves an edit URL for a single file.
type EditURLFunc = runtimeconfig.EditURLFunc

const (
	// EditURLNone disables edit links entirely.
	EditURLNone = runtimeconfig.EditURLNone
	// EditURLTemplate appends the site-relative file path to a base URL.
	EditURLTemplate = runtimeconfig.EditURLTemplate
	// EditURLCustom delegates to a caller-supplied resolver.
	EditURLCustom = runtimeconfig.EditURLCustom
)

// Configuration validation errors.
var (
	ErrSiteURLRequired      = runtimeconfig.ErrSiteURLRequired
	ErrContentPathRequired  = runtimeconfig.ErrContentPathRequired
	ErrFeedOptionsRequired  = runtimeconfig.ErrFeedOptionsRequired
	ErrEditURLPolicyInvalid = runtimeconfig.ErrEditURLPolicyInvalid
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
)

// DefaultTruncateMarker matches the conventional truncation comment.
var DefaultTruncateMarker = runtimeconfig.DefaultTruncateMarker

// DefaultConfig returns a configuration with the conventional blog layout.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
