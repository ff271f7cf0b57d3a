package posts

import (
	"context"
	"strings"
	"testing"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

func feedConfig() runtimeconfig.Config {
	cfg := collectorConfig()
	cfg.Site.Title = "Example Site"
	cfg.Feed = &runtimeconfig.FeedConfig{
		Title:       "Example Blog",
		Description: "Posts from the example site",
		Language:    "en",
		Copyright:   "Copyright Example",
	}
	return cfg
}

func feedCollection() *Collection {
	return &Collection{
		Posts: []interfaces.BlogPost{
			{
				ID: "welcome-aboard",
				Metadata: interfaces.PostMetadata{
					Permalink:   "/blog/welcome-aboard",
					Title:       "Welcome",
					Description: "A proper welcome note",
					Date:        time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			{
				ID: "2019/03/14/first-post",
				Metadata: interfaces.PostMetadata{
					Permalink:   "/blog/2019/03/14/first-post",
					Title:       "First Post",
					Description: "The very first post",
					Date:        time.Date(2019, 3, 14, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		Permalinks: map[string]string{},
	}
}

func TestFeedBuild(t *testing.T) {
	builder := NewFeedBuilder(feedConfig(), nil)

	feed, err := builder.Build(feedCollection())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if feed == nil {
		t.Fatalf("expected a feed")
	}

	if feed.Title != "Example Blog" {
		t.Fatalf("unexpected title %q", feed.Title)
	}
	if feed.Link.Href != "https://example.com/blog" {
		t.Fatalf("unexpected channel link %q", feed.Link.Href)
	}
	if !feed.Updated.Equal(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected updated to track newest post, got %v", feed.Updated)
	}
	if len(feed.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(feed.Items))
	}
	if feed.Items[0].Link.Href != "https://example.com/blog/welcome-aboard" {
		t.Fatalf("expected absolute item link, got %q", feed.Items[0].Link.Href)
	}
}

func TestFeedBuildTitleFallsBackToSite(t *testing.T) {
	cfg := feedConfig()
	cfg.Feed.Title = ""

	feed, err := NewFeedBuilder(cfg, nil).Build(feedCollection())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if feed.Title != "Example Site" {
		t.Fatalf("expected site title fallback, got %q", feed.Title)
	}
}

func TestFeedBuildNilWhenEmpty(t *testing.T) {
	feed, err := NewFeedBuilder(feedConfig(), nil).Build(&Collection{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if feed != nil {
		t.Fatalf("expected nil feed for empty blog, got %#v", feed)
	}
}

func TestFeedBuildRequiresOptions(t *testing.T) {
	cfg := feedConfig()
	cfg.Feed = nil

	_, err := NewFeedBuilder(cfg, nil).Build(feedCollection())
	if err != runtimeconfig.ErrFeedOptionsRequired {
		t.Fatalf("expected ErrFeedOptionsRequired, got %v", err)
	}
}

func TestFeedChannelLinkUsesRouteManager(t *testing.T) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "blog",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"index": "/articles",
				},
			},
		},
	})

	feed, err := NewFeedBuilder(feedConfig(), manager).Build(feedCollection())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if feed.Link.Href != "https://example.com/articles" {
		t.Fatalf("expected route manager link, got %q", feed.Link.Href)
	}
}

func TestFeedChannelLinkFallsBackWithoutRoute(t *testing.T) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{Name: "other", BaseURL: "https://example.com", Paths: map[string]string{"x": "/x"}},
		},
	})

	feed, err := NewFeedBuilder(feedConfig(), manager).Build(feedCollection())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if feed.Link.Href != "https://example.com/blog" {
		t.Fatalf("expected base path fallback, got %q", feed.Link.Href)
	}
}

func TestFeedBuildFromCollector(t *testing.T) {
	cfg := feedConfig()
	collector, err := NewCollector(cfg, nil)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	feed, err := NewFeedBuilder(cfg, nil).BuildFromCollector(context.Background(), collector)
	if err != nil {
		t.Fatalf("BuildFromCollector: %v", err)
	}
	if feed == nil || len(feed.Items) == 0 {
		t.Fatalf("expected items from collected posts")
	}
}

func TestSerializeFeedFormats(t *testing.T) {
	feed, err := NewFeedBuilder(feedConfig(), nil).Build(feedCollection())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rss, err := SerializeFeed(feed, "rss", "en")
	if err != nil {
		t.Fatalf("SerializeFeed rss: %v", err)
	}
	if !strings.Contains(rss, "<language>en</language>") {
		t.Fatalf("expected RSS language element, got %s", rss)
	}

	atom, err := SerializeFeed(feed, "atom", "en")
	if err != nil {
		t.Fatalf("SerializeFeed atom: %v", err)
	}
	if !strings.Contains(atom, "<feed") {
		t.Fatalf("expected atom document, got %s", atom)
	}

	jsonFeed, err := SerializeFeed(feed, "json", "en")
	if err != nil {
		t.Fatalf("SerializeFeed json: %v", err)
	}
	if !strings.Contains(jsonFeed, "\"title\"") {
		t.Fatalf("expected json feed, got %s", jsonFeed)
	}

	if _, err := SerializeFeed(feed, "bogus", "en"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
