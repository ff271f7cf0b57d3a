package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// LoaderConfig configures how blog source files are discovered.
type LoaderConfig struct {
	// Paths is the localized/default content root pair. Discovery walks both;
	// the localized copy of a file shadows the default one.
	Paths interfaces.ContentPaths
	// Include selects files by slash-separated glob patterns relative to a
	// content root. Patterns support "**" segments.
	Include []string
	// Exclude subtracts matches from the include set.
	Exclude []string
}

// SourceFile is a discovered blog source before parsing. RelPath is
// slash-separated and relative to Root.
type SourceFile struct {
	Root    string
	RelPath string
}

// Loader resolves source files across the content root pair and parses them
// into documents.
type Loader struct {
	paths   interfaces.ContentPaths
	include []glob.Glob
	exclude []glob.Glob
}

// NewLoader compiles the include/exclude patterns and returns a loader.
// Invalid patterns fail construction rather than silently matching nothing.
func NewLoader(cfg LoaderConfig) (*Loader, error) {
	include, err := compilePatterns(cfg.Include)
	if err != nil {
		return nil, fmt.Errorf("blog loader: include pattern: %w", err)
	}
	exclude, err := compilePatterns(cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("blog loader: exclude pattern: %w", err)
	}
	return &Loader{
		paths:   cfg.Paths,
		include: include,
		exclude: exclude,
	}, nil
}

// Discover enumerates matching files across both content roots, localized
// root first so its files win per-name conflicts. A missing default root
// yields an empty result, not an error.
func (l *Loader) Discover(ctx context.Context) ([]SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(l.paths.ContentPath); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("blog loader: stat content path %s: %w", l.paths.ContentPath, err)
	}

	owners := map[string]string{}
	for _, root := range l.paths.List() {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		if err := l.walkRoot(ctx, root, owners); err != nil {
			return nil, err
		}
	}

	rels := make([]string, 0, len(owners))
	for rel := range owners {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	files := make([]SourceFile, 0, len(rels))
	for _, rel := range rels {
		files = append(files, SourceFile{Root: owners[rel], RelPath: rel})
	}
	return files, nil
}

// LoadFile reads and parses a single discovered source file.
func (l *Loader) LoadFile(ctx context.Context, file SourceFile) (*interfaces.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := filepath.Join(file.Root, filepath.FromSlash(file.RelPath))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("blog loader: read %s: %w", file.RelPath, err)
	}
	info, err := os.Stat(full)
	if err != nil {
		return nil, fmt.Errorf("blog loader: stat %s: %w", file.RelPath, err)
	}

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("blog loader: %s: %w", file.RelPath, err)
	}

	summary := ExtractSummary(body)

	return &interfaces.Document{
		Root:         file.Root,
		RelPath:      file.RelPath,
		FrontMatter:  fm,
		Body:         body,
		ContentTitle: summary.ContentTitle,
		Excerpt:      summary.Excerpt,
		ChangeTime:   info.ModTime().UTC(),
	}, nil
}

func (l *Loader) walkRoot(ctx context.Context, root string, owners map[string]string) error {
	fsys := os.DirFS(root)
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := filepath.ToSlash(path)
		if !l.matches(rel) {
			return nil
		}
		if _, claimed := owners[rel]; claimed {
			// An earlier (localized) root already owns this file.
			return nil
		}
		owners[rel] = root
		return nil
	})
}

func (l *Loader) matches(rel string) bool {
	included := false
	for _, g := range l.include {
		if g.Match(rel) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, g := range l.exclude {
		if g.Match(rel) {
			return false
		}
	}
	return true
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", pattern, err)
		}
		out = append(out, g)

		// "**/" globs must also match files at the root of the content
		// directory, where no separator precedes the name.
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok && rest != "" {
			flat, err := glob.Compile(rest, '/')
			if err != nil {
				return nil, fmt.Errorf("compile %q: %w", rest, err)
			}
			out = append(out, flat)
		}
	}
	return out, nil
}
