package markdown

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Post" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Slug != "sample-post" {
		t.Fatalf("FrontMatter Slug mismatch, got %q", fm.Slug)
	}
	if fm.Description != "Hand-written description" {
		t.Fatalf("FrontMatter Description mismatch, got %q", fm.Description)
	}
	want := time.Date(2020, 5, 5, 0, 0, 0, 0, time.UTC)
	if !fm.Date.Equal(want) {
		t.Fatalf("FrontMatter Date mismatch, got %v", fm.Date)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "golang" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if fm.Custom["featured"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["slug"] != "sample-post" {
		t.Fatalf("FrontMatter Raw slug missing: %#v", fm.Raw)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Sample Post") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterStringDate(t *testing.T) {
	source := []byte("---\ntitle: Quoted\ndate: \"2019-06-07\"\n---\n\nBody.\n")

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	want := time.Date(2019, 6, 7, 0, 0, 0, 0, time.UTC)
	if !fm.Date.Equal(want) {
		t.Fatalf("expected quoted date to parse, got %v", fm.Date)
	}
}

func TestParseFrontMatterInvalidDate(t *testing.T) {
	source := []byte("---\ntitle: Broken\ndate: \"not a date\"\n---\n\nBody.\n")

	if _, _, err := ParseFrontMatter(source); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestParseFrontMatterLegacyID(t *testing.T) {
	source := []byte("---\nid: legacy-handle\ntitle: Old Post\n---\n\nBody.\n")

	fm, _, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.LegacyID != "legacy-handle" {
		t.Fatalf("expected legacy id to be carried, got %q", fm.LegacyID)
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	source := []byte("# Plain\n\nNo frontmatter at all.\n")

	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" || !fm.Date.IsZero() {
		t.Fatalf("expected zero frontmatter, got %#v", fm)
	}
	if !strings.Contains(string(body), "# Plain") {
		t.Fatalf("body missing: %q", string(body))
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
