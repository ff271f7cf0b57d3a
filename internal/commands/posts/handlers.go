package postscmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	command "github.com/goliatone/go-command"
	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const (
	collectOperation   = "posts.collect"
	buildFeedOperation = "posts.build_feed"
)

var (
	_ command.Commander[CollectPostsCommand] = (*CollectPostsHandler)(nil)
	_ command.Commander[BuildFeedCommand]    = (*BuildFeedHandler)(nil)
)

// CollectPostsSink receives the collection produced by a successful run.
type CollectPostsSink func(ctx context.Context, collection *posts.Collection) error

// CollectPostsHandler runs post collection via the shared command handler
// foundation.
type CollectPostsHandler struct {
	inner *commands.Handler[CollectPostsCommand]
}

// NewCollectPostsHandler creates a handler bound to the supplied base
// configuration. Message fields override the configured content roots and
// production flag per run.
func NewCollectPostsHandler(cfg runtimeconfig.Config, logger interfaces.Logger, sink CollectPostsSink, opts ...commands.HandlerOption[CollectPostsCommand]) *CollectPostsHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg CollectPostsCommand) error {
		runCfg := cfg
		if path := strings.TrimSpace(msg.ContentPath); path != "" {
			runCfg.Content.Paths.ContentPath = path
		}
		if path := strings.TrimSpace(msg.ContentPathLocalized); path != "" {
			runCfg.Content.Paths.ContentPathLocalized = path
		}
		if msg.Production {
			runCfg.Site.Production = true
		}

		collector, err := posts.NewCollector(runCfg, baseLogger)
		if err != nil {
			return err
		}
		collection, err := collector.Collect(ctx)
		if err != nil {
			return err
		}
		if sink != nil {
			return sink(ctx, collection)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CollectPostsCommand]{
		commands.WithLogger[CollectPostsCommand](baseLogger),
		commands.WithOperation[CollectPostsCommand](collectOperation),
		commands.WithMessageFields(func(msg CollectPostsCommand) map[string]any {
			fields := map[string]any{}
			if msg.ContentPath != "" {
				fields["content_path"] = msg.ContentPath
			}
			if msg.Production {
				fields["production"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CollectPostsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CollectPostsHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CollectPostsCommand].
func (h *CollectPostsHandler) Execute(ctx context.Context, msg CollectPostsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildFeedSink receives the serialized feed document.
type BuildFeedSink func(ctx context.Context, format, payload string) error

// BuildFeedHandler assembles and serializes the blog feed.
type BuildFeedHandler struct {
	inner *commands.Handler[BuildFeedCommand]
}

// NewBuildFeedHandler creates a feed handler. routes may be nil; OutputPath
// on the message and the sink are both optional delivery targets.
func NewBuildFeedHandler(cfg runtimeconfig.Config, routes *urlkit.RouteManager, logger interfaces.Logger, sink BuildFeedSink, opts ...commands.HandlerOption[BuildFeedCommand]) *BuildFeedHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildFeedCommand) error {
		collector, err := posts.NewCollector(cfg, baseLogger)
		if err != nil {
			return err
		}
		feed, err := posts.NewFeedBuilder(cfg, routes).BuildFromCollector(ctx, collector)
		if err != nil {
			return err
		}
		if feed == nil {
			baseLogger.Info("no posts collected, skipping feed generation")
			return nil
		}

		language := ""
		if cfg.Feed != nil {
			language = cfg.Feed.Language
		}
		payload, err := posts.SerializeFeed(feed, msg.Format, language)
		if err != nil {
			return err
		}

		if path := strings.TrimSpace(msg.OutputPath); path != "" {
			if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
				return fmt.Errorf("write feed %s: %w", path, err)
			}
		}
		if sink != nil {
			return sink(ctx, msg.Format, payload)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildFeedCommand]{
		commands.WithLogger[BuildFeedCommand](baseLogger),
		commands.WithOperation[BuildFeedCommand](buildFeedOperation),
		commands.WithMessageFields(func(msg BuildFeedCommand) map[string]any {
			fields := map[string]any{}
			if msg.Format != "" {
				fields["format"] = msg.Format
			}
			if msg.OutputPath != "" {
				fields["output_path"] = msg.OutputPath
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildFeedCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildFeedHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildFeedCommand].
func (h *BuildFeedHandler) Execute(ctx context.Context, msg BuildFeedCommand) error {
	return h.inner.Execute(ctx, msg)
}
