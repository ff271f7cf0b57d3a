// Package blog turns a directory of Markdown sources into ordered,
// render-ready blog post records, a syndication feed, and resolved
// cross-post links. Content discovery follows the conventional layout: a
// default content root plus an optional localized root whose files shadow
// the default copies.
package blog

import (
	"context"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/gorilla/feeds"

	"github.com/goliatone/go-blog/internal/commands"
	postscmd "github.com/goliatone/go-blog/internal/commands/posts"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Post is one collected blog post.
type Post = interfaces.BlogPost

// PostMetadata is the derived, render-ready metadata for a single post.
type PostMetadata = interfaces.PostMetadata

// Tag pairs a raw tag label with the permalink of its listing page.
type Tag = interfaces.Tag

// ContentPaths names the directory pair searched for blog source files.
type ContentPaths = interfaces.ContentPaths

// BrokenLinkFunc reports a relative Markdown link whose target is not part
// of the collected sources.
type BrokenLinkFunc = interfaces.BrokenLinkFunc

// Collection is the result of one collection run.
type Collection = posts.Collection

// Logger exports the leveled logging contract accepted by the module.
type Logger = interfaces.Logger

// LoggerProvider exposes named loggers to the module.
type LoggerProvider = interfaces.LoggerProvider

// Feed exports the assembled syndication feed type.
type Feed = feeds.Feed

// CollectPostsCommand triggers a collection run through the command layer.
type CollectPostsCommand = postscmd.CollectPostsCommand

// BuildFeedCommand assembles and serializes the feed through the command layer.
type BuildFeedCommand = postscmd.BuildFeedCommand

// CollectPostsSink receives the collection produced by a command run.
type CollectPostsSink = postscmd.CollectPostsSink

// BuildFeedSink receives the serialized feed document.
type BuildFeedSink = postscmd.BuildFeedSink

// Option configures module construction.
type Option func(*Module)

// WithLoggerProvider overrides the default go-logger backed provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// Module is the top level blog runtime façade.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	routes    *urlkit.RouteManager
	collector *posts.Collector
	feeds     *posts.FeedBuilder
}

// New validates the configuration and constructs the module. Feed options
// may be absent; only feed generation requires them.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if cfg.Routes != nil {
		m.routes = urlkit.NewRouteManager(cfg.Routes)
	}

	collector, err := posts.NewCollector(cfg, logging.PostsLogger(m.provider))
	if err != nil {
		return nil, err
	}
	m.collector = collector
	m.feeds = posts.NewFeedBuilder(cfg, m.routes)

	return m, nil
}

// Posts runs a collection over the content roots and returns every post
// sorted by date descending, together with the source-to-permalink index.
// Draft posts are excluded when the site runs in production mode.
func (m *Module) Posts(ctx context.Context) (*Collection, error) {
	return m.collector.Collect(ctx)
}

// Feed collects the posts and assembles the syndication feed. It returns
// nil when the blog has no posts and fails fast when feed options are not
// configured.
func (m *Module) Feed(ctx context.Context) (*feeds.Feed, error) {
	return m.feeds.BuildFromCollector(ctx, m.collector)
}

// SerializeFeed renders an assembled feed as "rss", "atom", or "json".
func (m *Module) SerializeFeed(feed *feeds.Feed, format string) (string, error) {
	language := ""
	if m.cfg.Feed != nil {
		language = m.cfg.Feed.Language
	}
	return posts.SerializeFeed(feed, format, language)
}

// Linkify rewrites relative Markdown links in content against the permalink
// index of a collection. Broken links are logged and additionally reported
// through onBroken when supplied; the content is returned otherwise
// unchanged.
func (m *Module) Linkify(content, sourcePath string, collection *Collection, onBroken BrokenLinkFunc) string {
	if collection == nil {
		return content
	}

	logger := logging.LinksLogger(m.provider)
	report := func(link, src string) {
		logger.Warn("relative blog link has no matching source", "link", link, "source_path", src)
		if onBroken != nil {
			onBroken(link, src)
		}
	}

	return posts.Linkify(content, sourcePath, collection.Permalinks, report)
}

// Truncate splits text at the configured truncate marker, returning the
// summary portion.
func (m *Module) Truncate(text string) string {
	return posts.Truncate(text, m.cfg.Content.TruncateMarker)
}

// ContentPathList returns the content roots in lookup order: localized
// first, then the default.
func (m *Module) ContentPathList() []string {
	return m.cfg.Content.Paths.List()
}

// CollectPostsHandler returns a command handler that runs post collection
// and delivers the result to sink.
func (m *Module) CollectPostsHandler(sink CollectPostsSink) *postscmd.CollectPostsHandler {
	return postscmd.NewCollectPostsHandler(m.cfg, commands.CommandLogger(m.provider, "posts"), sink)
}

// BuildFeedHandler returns a command handler that assembles, serializes,
// and optionally persists the feed.
func (m *Module) BuildFeedHandler(sink BuildFeedSink) *postscmd.BuildFeedHandler {
	return postscmd.NewBuildFeedHandler(m.cfg, m.routes, commands.CommandLogger(m.provider, "posts"), sink)
}
