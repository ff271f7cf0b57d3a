package posts

import (
	"context"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/gorilla/feeds"

	"github.com/goliatone/go-blog/internal/runtimeconfig"
)

// feedEpoch is the channel timestamp used when no post carries a usable
// date. The empty-collection guard makes it unreachable in practice; it is
// kept so the fallback stays well-defined.
var feedEpoch = time.Unix(0, 0).UTC()

const (
	feedRouteGroup = "blog"
	feedIndexRoute = "index"
)

// FeedBuilder assembles the syndication feed for a collected blog.
type FeedBuilder struct {
	cfg    runtimeconfig.Config
	routes *urlkit.RouteManager
}

// NewFeedBuilder returns a feed builder. routes may be nil; the channel link
// then falls back to the site URL joined with the blog route base path.
func NewFeedBuilder(cfg runtimeconfig.Config, routes *urlkit.RouteManager) *FeedBuilder {
	return &FeedBuilder{cfg: cfg, routes: routes}
}

// Build assembles the feed from an existing collection. It fails fast when
// feed options are absent and returns nil, without error, when the blog has
// no posts.
func (b *FeedBuilder) Build(collection *Collection) (*feeds.Feed, error) {
	if b.cfg.Feed == nil {
		return nil, runtimeconfig.ErrFeedOptionsRequired
	}
	if collection == nil || len(collection.Posts) == 0 {
		return nil, nil
	}

	title := strings.TrimSpace(b.cfg.Feed.Title)
	if title == "" {
		title = b.cfg.Site.Title
	}

	updated := feedEpoch
	if latest := collection.Posts[0].Metadata.Date; !latest.IsZero() {
		updated = latest
	}

	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: b.channelLink()},
		Description: b.cfg.Feed.Description,
		Copyright:   b.cfg.Feed.Copyright,
		Updated:     updated,
	}

	for _, post := range collection.Posts {
		absolute := NormalizeURL(b.cfg.Site.URL, post.Metadata.Permalink)
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       post.Metadata.Title,
			Id:          absolute,
			Link:        &feeds.Link{Href: absolute},
			Description: post.Metadata.Description,
			Created:     post.Metadata.Date,
		})
	}

	return feed, nil
}

// BuildFromCollector runs a fresh collection and builds the feed from it.
func (b *FeedBuilder) BuildFromCollector(ctx context.Context, collector *Collector) (*feeds.Feed, error) {
	if b.cfg.Feed == nil {
		return nil, runtimeconfig.ErrFeedOptionsRequired
	}
	collection, err := collector.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return b.Build(collection)
}

// channelLink resolves the feed channel link, preferring a declared "blog"
// route group over the configured base path.
func (b *FeedBuilder) channelLink() string {
	if b.routes != nil {
		if href, err := indexRouteLink(b.routes); err == nil && href != "" {
			return href
		}
	}
	return NormalizeURL(b.cfg.Site.URL, b.cfg.Site.BaseURL, b.cfg.Content.RouteBasePath)
}

// indexRouteLink builds the blog index URL from the route manager. Lookups
// are guarded because go-urlkit panics on unknown groups and routes.
func indexRouteLink(manager *urlkit.RouteManager) (href string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("blog feed: route lookup: %v", rec)
		}
	}()
	group := manager.Group(feedRouteGroup)
	return group.Builder(feedIndexRoute).Build()
}

// SerializeFeed renders a feed in the requested syndication format. The
// channel language only has an RSS representation, so it is applied while
// building the RSS channel; atom and json renditions ignore it.
func SerializeFeed(feed *feeds.Feed, format, language string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "rss":
		rss := (&feeds.Rss{Feed: feed}).RssFeed()
		rss.Language = language
		return feeds.ToXML(rss)
	case "atom":
		return feed.ToAtom()
	case "json":
		return feed.ToJSON()
	default:
		return "", fmt.Errorf("blog feed: unsupported format %q", format)
	}
}
