package posts

import (
	"testing"
	"time"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestDeriveSlugPrecedence(t *testing.T) {
	dateLink := &interfaces.DateLink{
		Date: time.Date(2019, 3, 14, 0, 0, 0, 0, time.UTC),
		Link: "2019/03/14/my-post",
	}

	got := deriveSlug(interfaces.FrontMatter{Slug: "explicit"}, dateLink, "2019-03-14-my-post.md")
	if got != "explicit" {
		t.Fatalf("expected frontmatter slug to win, got %q", got)
	}

	got = deriveSlug(interfaces.FrontMatter{}, dateLink, "2019-03-14-my-post.md")
	if got != "2019/03/14/my-post" {
		t.Fatalf("expected date link slug, got %q", got)
	}

	got = deriveSlug(interfaces.FrontMatter{}, nil, "notes/greetings.md")
	if got != "notes/greetings" {
		t.Fatalf("expected extension-stripped path, got %q", got)
	}
}

func TestBuildTags(t *testing.T) {
	tags, err := buildTags([]string{"golang", "Release Notes", " "}, "/", "blog")
	if err != nil {
		t.Fatalf("buildTags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected blank labels to be skipped, got %#v", tags)
	}
	if tags[0].Label != "golang" || tags[0].Permalink != "/blog/tags/golang" {
		t.Fatalf("unexpected tag: %#v", tags[0])
	}
	if tags[1].Label != "Release Notes" || tags[1].Permalink != "/blog/tags/release-notes" {
		t.Fatalf("expected normalized tag permalink, got %#v", tags[1])
	}
}

func TestBuildTagsEmpty(t *testing.T) {
	tags, err := buildTags(nil, "/", "blog")
	if err != nil || tags != nil {
		t.Fatalf("expected no tags, got %#v (%v)", tags, err)
	}
}
