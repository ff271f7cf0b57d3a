package postscmd

import "testing"

func TestCollectPostsCommandType(t *testing.T) {
	if got := (CollectPostsCommand{}).Type(); got != "blog.posts.collect" {
		t.Fatalf("unexpected message type %q", got)
	}
}

func TestBuildFeedCommandValidate(t *testing.T) {
	for _, format := range []string{"", "rss", "atom", "json", "RSS"} {
		if err := (BuildFeedCommand{Format: format}).Validate(); err != nil {
			t.Fatalf("expected %q to validate, got %v", format, err)
		}
	}
	if err := (BuildFeedCommand{Format: "xml"}).Validate(); err == nil {
		t.Fatalf("expected unsupported format to fail validation")
	}
}
