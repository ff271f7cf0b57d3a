package postscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	collectPostsMessageType = "blog.posts.collect"
	buildFeedMessageType    = "blog.posts.build_feed"
)

// CollectPostsCommand triggers a full collection run over the configured
// content roots. Collected posts are delivered to the sink registered on the
// handler.
type CollectPostsCommand struct {
	// Production hides draft posts for this run regardless of the base
	// configuration.
	Production bool `json:"production,omitempty"`
	// ContentPath optionally overrides the default content root.
	ContentPath string `json:"content_path,omitempty"`
	// ContentPathLocalized optionally overrides the localized content root.
	ContentPathLocalized string `json:"content_path_localized,omitempty"`
}

// Type implements command.Message.
func (CollectPostsCommand) Type() string { return collectPostsMessageType }

// Validate implements command.Message; every field is optional.
func (cmd CollectPostsCommand) Validate() error { return nil }

// BuildFeedCommand assembles the syndication feed and serializes it in the
// requested format.
type BuildFeedCommand struct {
	// Format selects the rendition: "rss", "atom", or "json". Empty means rss.
	Format string `json:"format,omitempty"`
	// OutputPath, when set, writes the serialized feed to the filesystem.
	OutputPath string `json:"output_path,omitempty"`
}

// Type implements command.Message.
func (BuildFeedCommand) Type() string { return buildFeedMessageType }

// Validate restricts Format to the supported renditions.
func (cmd BuildFeedCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Format, validation.By(func(value any) error {
			format := strings.ToLower(strings.TrimSpace(value.(string)))
			switch format {
			case "", "rss", "atom", "json":
				return nil
			default:
				return validation.NewError("blog.posts.build_feed.format_invalid",
					"format must be rss, atom, or json")
			}
		})),
	)
}
