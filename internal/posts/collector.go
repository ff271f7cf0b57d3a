package posts

import (
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/validation"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Collection is the result of one collection run: the ordered post list plus
// the source-path to permalink index consumed by the feed builder and the
// link resolver.
type Collection struct {
	Posts []interfaces.BlogPost
	// Permalinks is keyed by content-root-relative source path.
	Permalinks map[string]string
}

// Collector derives ordered blog post records from the configured content
// roots. A collector is safe to reuse; every Collect call is an independent
// run with its own run identifier.
type Collector struct {
	cfg    runtimeconfig.Config
	loader *markdown.Loader
	logger interfaces.Logger
}

// NewCollector builds a collector for the given configuration. The logger
// may be nil; per-run context fields are attached internally.
func NewCollector(cfg runtimeconfig.Config, logger interfaces.Logger) (*Collector, error) {
	loader, err := markdown.NewLoader(markdown.LoaderConfig{
		Paths:   cfg.Content.Paths,
		Include: cfg.Content.Include,
		Exclude: cfg.Content.Exclude,
	})
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Collector{cfg: cfg, loader: loader, logger: logger}, nil
}

// Collect discovers, parses, and derives every post under the content roots,
// sorted by date descending. Source files are processed concurrently; the
// first failure cancels the remaining work and fails the run, naming the
// offending file. A missing content directory yields an empty collection.
func (c *Collector) Collect(ctx context.Context) (*Collection, error) {
	runID := uuid.NewString()
	logger := logging.WithFields(c.logger, map[string]any{"run_id": runID})
	if fields := logging.ContextFields(ctx); len(fields) > 0 {
		logger = logging.WithFields(logger, fields)
	}

	files, err := c.loader.Discover(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Debug("no blog sources found", "content_path", c.cfg.Content.Paths.ContentPath)
		return &Collection{}, nil
	}

	results := make([]*interfaces.BlogPost, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, file := range files {
		group.Go(func() error {
			post, err := c.processFile(groupCtx, logger, file)
			if err != nil {
				logger.Error("blog source processing failed",
					"source_path", file.RelPath,
					"error", err)
				return fmt.Errorf("process blog source %s: %w", file.RelPath, err)
			}
			results[i] = post
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	collection := &Collection{
		Permalinks: make(map[string]string, len(results)),
	}
	for i, post := range results {
		if post == nil {
			continue
		}
		collection.Posts = append(collection.Posts, *post)
		rel := files[i].RelPath
		if _, dup := collection.Permalinks[rel]; dup {
			logger.Warn("duplicate blog source path, last one wins", "source_path", rel)
		}
		collection.Permalinks[rel] = post.Metadata.Permalink
	}

	sort.SliceStable(collection.Posts, func(i, j int) bool {
		return collection.Posts[i].Metadata.Date.After(collection.Posts[j].Metadata.Date)
	})

	warnDuplicatePermalinks(logger, collection.Posts)

	logger.Info("blog collection completed",
		"post_count", len(collection.Posts),
		"source_count", len(files))
	return collection, nil
}

func (c *Collector) processFile(ctx context.Context, logger interfaces.Logger, file markdown.SourceFile) (*interfaces.BlogPost, error) {
	doc, err := c.loader.LoadFile(ctx, file)
	if err != nil {
		return nil, err
	}

	if schema := c.cfg.Content.FrontMatterSchema; len(schema) > 0 {
		if err := validation.ValidateFrontMatter(schema, doc.FrontMatter.Raw); err != nil {
			return nil, err
		}
	}

	if doc.FrontMatter.Draft && c.cfg.Site.Production {
		return nil, nil
	}

	entryLogger := logging.WithCollectionContext(logger, "", file.RelPath, c.cfg.Site.Locale)
	if doc.FrontMatter.LegacyID != "" {
		entryLogger.Warn(`frontmatter field "id" is deprecated, use "slug" instead`)
	}

	dateLink, baseName := parseSourceName(file.RelPath)

	date := doc.ChangeTime
	if dateLink != nil {
		date = dateLink.Date
	}
	if !doc.FrontMatter.Date.IsZero() {
		date = doc.FrontMatter.Date
	}

	slugValue := deriveSlug(doc.FrontMatter, dateLink, file.RelPath)
	permalink := NormalizeURL(c.cfg.Site.BaseURL, c.cfg.Content.RouteBasePath, slugValue)

	title := doc.FrontMatter.Title
	if title == "" {
		title = doc.ContentTitle
	}
	if title == "" {
		title = baseName
	}

	description := doc.FrontMatter.Description
	if description == "" {
		description = doc.Excerpt
	}

	formatted, err := FormatDate(date, c.cfg.Site.Locale)
	if err != nil {
		return nil, err
	}

	tags, err := buildTags(doc.FrontMatter.Tags, c.cfg.Site.BaseURL, c.cfg.Content.RouteBasePath)
	if err != nil {
		return nil, err
	}

	var readingTime *int
	if c.cfg.Content.ShowReadingTime {
		minutes := ReadingTime(string(doc.Body))
		readingTime = &minutes
	}

	id := doc.FrontMatter.LegacyID
	if id == "" {
		id = slugValue
	}

	return &interfaces.BlogPost{
		ID: id,
		Metadata: interfaces.PostMetadata{
			Permalink: permalink,
			EditURL: resolveEditURL(c.cfg.Content.EditURL, c.cfg.Content.EditLocalizedFiles,
				c.cfg.Site.SiteDir, c.cfg.Site.Locale, c.cfg.Content.Paths, doc),
			Source:        sourceAlias(c.cfg.Site.SiteDir, doc),
			Title:         title,
			Description:   description,
			Date:          date,
			FormattedDate: formatted,
			Tags:          tags,
			ReadingTime:   readingTime,
			Truncated:     isTruncated(string(doc.Body), c.cfg.Content.TruncateMarker),
		},
	}, nil
}

// sourceAlias expresses the owning file as a site-rooted alias path.
func sourceAlias(siteDir string, doc *interfaces.Document) string {
	return "@site/" + path.Join(siteRelative(siteDir, doc.Root), doc.RelPath)
}

func warnDuplicatePermalinks(logger interfaces.Logger, posts []interfaces.BlogPost) {
	seen := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		if _, dup := seen[post.Metadata.Permalink]; dup {
			logger.Warn("duplicate blog post permalink",
				"permalink", post.Metadata.Permalink,
				"post_id", post.ID)
			continue
		}
		seen[post.Metadata.Permalink] = struct{}{}
	}
}
