package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
)

func main() {
	if err := runScan(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("blog scan: %v", err)
	}
}

func runScan(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("blog-scan", flag.ExitOnError)
	siteURL := fs.String("site-url", "https://localhost", "Absolute site origin used for permalinks")
	baseURL := fs.String("base-url", "/", "Mount path below the origin")
	contentDir := fs.String("content-dir", "blog", "Path to the blog content root")
	localizedDir := fs.String("localized-dir", "", "Optional localized content root")
	routeBase := fs.String("route-base", "blog", "URL segment posts are served under")
	locale := fs.String("locale", "en", "Locale for long-form date formatting")
	production := fs.Bool("production", false, "Hide draft posts")
	asJSON := fs.Bool("json", false, "Emit the collection as JSON")
	logFormat := fs.String("log-format", "console", "Log output format: json, console, or pretty")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := blog.DefaultConfig()
	cfg.Site.URL = *siteURL
	cfg.Site.BaseURL = *baseURL
	cfg.Site.Locale = *locale
	cfg.Site.Production = *production
	cfg.Content.Paths = blog.ContentPaths{
		ContentPath:          *contentDir,
		ContentPathLocalized: *localizedDir,
	}
	cfg.Content.RouteBasePath = *routeBase
	cfg.Logging.Format = *logFormat

	module, err := blog.New(cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	handler := module.CollectPostsHandler(func(ctx context.Context, collection *blog.Collection) error {
		if *asJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(collection.Posts)
		}
		for _, post := range collection.Posts {
			fmt.Fprintf(out, "%s\t%s\t%s\n", post.Metadata.FormattedDate, post.Metadata.Title, post.Metadata.Permalink)
		}
		fmt.Fprintf(out, "%d posts\n", len(collection.Posts))
		return nil
	})

	if err := handler.Execute(context.Background(), blog.CollectPostsCommand{Production: *production}); err != nil {
		return fmt.Errorf("execute collect command: %w", err)
	}
	return nil
}
