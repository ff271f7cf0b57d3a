package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured frontmatter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	fm, err := envelopeToFrontMatter(meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, err
	}
	return fm, body, nil
}

// frontMatterEnvelope is the recognized schema. Date stays untyped because
// authors write both quoted strings and bare YAML dates; parseDate below
// accepts either. Unrecognized keys land in Custom.
type frontMatterEnvelope struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Slug        string         `yaml:"slug"`
	Date        any            `yaml:"date"`
	Tags        []string       `yaml:"tags"`
	Draft       bool           `yaml:"draft"`
	ID          string         `yaml:"id"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) (interfaces.FrontMatter, error) {
	date, err := parseDate(env.Date)
	if err != nil {
		return interfaces.FrontMatter{}, err
	}

	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+7)
	for key, value := range env.Custom {
		raw[key] = value
	}
	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Description != "" {
		raw["description"] = env.Description
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	// Raw keeps the author-supplied shape so schema validation sees what was
	// actually written.
	if env.Date != nil {
		raw["date"] = env.Date
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if env.ID != "" {
		raw["id"] = env.ID
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:       env.Title,
		Description: env.Description,
		Slug:        env.Slug,
		Date:        date,
		Tags:        append([]string(nil), env.Tags...),
		Draft:       env.Draft,
		LegacyID:    env.ID,
		Custom:      cloneMap(env.Custom),
		Raw:         raw,
	}, nil
}

// parseDate accepts the shapes YAML hands back for a date value: a bare
// timestamp decoded as time.Time, or a string parsed permissively in UTC.
func parseDate(value any) (time.Time, error) {
	switch typed := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return typed.UTC(), nil
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return time.Time{}, nil
		}
		parsed, err := dateparse.ParseIn(trimmed, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse frontmatter date %q: %w", trimmed, err)
		}
		return parsed.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("parse frontmatter date: unsupported value %v", value)
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
