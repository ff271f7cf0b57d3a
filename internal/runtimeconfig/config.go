package runtimeconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ErrSiteURLRequired indicates the site URL was left empty.
var ErrSiteURLRequired = errors.New("blog config: site URL is required")

// ErrContentPathRequired indicates the default content root was left empty.
var ErrContentPathRequired = errors.New("blog config: content path is required")

// ErrFeedOptionsRequired guards feed generation behind explicit feed options.
var ErrFeedOptionsRequired = errors.New("blog config: feed options are required")

// ErrEditURLPolicyInvalid indicates an edit URL policy mixing template and callback.
var ErrEditURLPolicyInvalid = errors.New("blog config: edit URL policy is invalid")

// ErrLoggingLevelInvalid indicates an unsupported logging level.
var ErrLoggingLevelInvalid = errors.New("blog config: unsupported logging level")

// ErrLoggingFormatInvalid indicates an unsupported logging output format.
var ErrLoggingFormatInvalid = errors.New("blog config: unsupported logging format")

// SiteConfig describes the site the blog content is mounted on.
type SiteConfig struct {
	// URL is the absolute site origin, e.g. "https://example.com".
	URL string
	// BaseURL is the mount path below the origin, e.g. "/".
	BaseURL string
	// Title names the site; used as the feed channel title fallback.
	Title string
	// SiteDir is the project root; source aliases and template edit URLs are
	// expressed relative to it.
	SiteDir string
	// Locale drives long-form date formatting, e.g. "en" or "fr".
	Locale string
	// Production hides draft posts when true. Callers pass this explicitly
	// rather than relying on ambient environment reads.
	Production bool
}

// EditURLKind selects how per-post edit URLs are produced.
type EditURLKind int

const (
	// EditURLNone disables edit links entirely.
	EditURLNone EditURLKind = iota
	// EditURLTemplate appends the site-relative file path to a base URL.
	EditURLTemplate
	// EditURLCustom delegates to a caller-supplied resolver.
	EditURLCustom
)

// EditURLContext is handed to custom edit URL resolvers.
type EditURLContext struct {
	// ContentPath is the content root that owns the file, relative to SiteDir.
	ContentPath string
	// Path is the file path relative to the content root, slash-separated.
	Path string
	// Locale is the site locale active for this build.
	Locale string
}

// EditURLFunc resolves an edit URL for a single file. Returning an empty
// string suppresses the link for that post.
type EditURLFunc func(ctx EditURLContext) string

// EditURLPolicy is the resolved form of the polymorphic edit URL option:
// none, a template base URL, or a custom callback.
type EditURLPolicy struct {
	Kind    EditURLKind
	BaseURL string
	Resolve EditURLFunc
}

// ContentConfig mirrors the ingestion options recognized by the collector.
type ContentConfig struct {
	Paths interfaces.ContentPaths
	// Include lists glob patterns, relative to the content roots, selecting
	// source files. Exclude patterns are subtracted from the include set.
	Include []string
	Exclude []string
	// RouteBasePath is the URL segment posts are served under, e.g. "blog".
	RouteBasePath string
	// TruncateMarker splits post bodies into summary and remainder.
	TruncateMarker *regexp.Regexp
	ShowReadingTime bool
	EditURL         EditURLPolicy
	// EditLocalizedFiles points template edit URLs at the localized copy of a
	// file instead of the default-root copy.
	EditLocalizedFiles bool
	// FrontMatterSchema optionally validates the full frontmatter map against
	// a JSON schema; violations fail the collection run.
	FrontMatterSchema map[string]any
}

// FeedConfig captures the syndication feed channel options.
type FeedConfig struct {
	Title       string
	Description string
	Language    string
	Copyright   string
}

// LoggingConfig configures the go-logger backed provider.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// Config is the root configuration consumed by blog.New.
type Config struct {
	Site    SiteConfig
	Content ContentConfig
	// Feed enables feed generation when non-nil; BuildFeed fails fast
	// otherwise.
	Feed    *FeedConfig
	Logging LoggingConfig
	// Routes optionally declares site route groups used for channel-level
	// links (the blog index, localized variants).
	Routes *urlkit.Config
}

// DefaultTruncateMarker matches the conventional truncation comment.
var DefaultTruncateMarker = regexp.MustCompile(`<!--\s*truncate\s*-->`)

// DefaultConfig returns a configuration with the conventional blog layout.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			BaseURL: "/",
			Locale:  "en",
		},
		Content: ContentConfig{
			Paths: interfaces.ContentPaths{
				ContentPath: "blog",
			},
			Include:         []string{"**/*.md", "**/*.mdx"},
			RouteBasePath:   "blog",
			TruncateMarker:  DefaultTruncateMarker,
			ShowReadingTime: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration preconditions shared by every operation.
// Feed options are deliberately not required here; only BuildFeed needs them.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Site.URL) == "" {
		return ErrSiteURLRequired
	}
	if strings.TrimSpace(cfg.Content.Paths.ContentPath) == "" {
		return ErrContentPathRequired
	}
	if cfg.Content.EditURL.Kind == EditURLCustom && cfg.Content.EditURL.Resolve == nil {
		return fmt.Errorf("%w: custom policy without resolver", ErrEditURLPolicyInvalid)
	}
	if cfg.Content.EditURL.Kind == EditURLTemplate && strings.TrimSpace(cfg.Content.EditURL.BaseURL) == "" {
		return fmt.Errorf("%w: template policy without base URL", ErrEditURLPolicyInvalid)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
