package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
)

func main() {
	if err := runFeed(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("blog feed: %v", err)
	}
}

func runFeed(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("blog-feed", flag.ExitOnError)
	siteURL := fs.String("site-url", "https://localhost", "Absolute site origin used for permalinks")
	baseURL := fs.String("base-url", "/", "Mount path below the origin")
	contentDir := fs.String("content-dir", "blog", "Path to the blog content root")
	localizedDir := fs.String("localized-dir", "", "Optional localized content root")
	routeBase := fs.String("route-base", "blog", "URL segment posts are served under")
	locale := fs.String("locale", "en", "Locale for long-form date formatting")
	title := fs.String("title", "", "Feed channel title")
	description := fs.String("description", "", "Feed channel description")
	language := fs.String("language", "en", "Feed channel language")
	copyright := fs.String("copyright", "", "Feed channel copyright notice")
	format := fs.String("format", "rss", "Feed rendition: rss, atom, or json")
	output := fs.String("output", "", "Write the serialized feed to this file instead of stdout")
	logFormat := fs.String("log-format", "console", "Log output format: json, console, or pretty")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := blog.DefaultConfig()
	cfg.Site.URL = *siteURL
	cfg.Site.BaseURL = *baseURL
	cfg.Site.Locale = *locale
	cfg.Site.Production = true
	cfg.Content.Paths = blog.ContentPaths{
		ContentPath:          *contentDir,
		ContentPathLocalized: *localizedDir,
	}
	cfg.Content.RouteBasePath = *routeBase
	cfg.Logging.Format = *logFormat
	cfg.Feed = &blog.FeedConfig{
		Title:       *title,
		Description: *description,
		Language:    *language,
		Copyright:   *copyright,
	}

	module, err := blog.New(cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	handler := module.BuildFeedHandler(func(ctx context.Context, _ string, payload string) error {
		if *output != "" {
			return nil
		}
		_, err := io.WriteString(out, payload)
		return err
	})

	cmd := blog.BuildFeedCommand{Format: *format, OutputPath: *output}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute feed command: %w", err)
	}
	return nil
}
