package runtimeconfig

import (
	"errors"
	"testing"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Content.Paths.ContentPath != "blog" {
		t.Fatalf("expected default content path blog, got %q", cfg.Content.Paths.ContentPath)
	}
	if len(cfg.Content.Include) != 2 {
		t.Fatalf("expected md and mdx include patterns, got %#v", cfg.Content.Include)
	}
	if !cfg.Content.TruncateMarker.MatchString("before\n<!-- truncate -->\nafter") {
		t.Fatalf("default truncate marker did not match")
	}
	if cfg.Site.Locale != "en" {
		t.Fatalf("expected default locale en, got %q", cfg.Site.Locale)
	}
}

func TestValidateRequiresSiteURL(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); !errors.Is(err, ErrSiteURLRequired) {
		t.Fatalf("expected ErrSiteURLRequired, got %v", err)
	}
}

func TestValidateRequiresContentPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.URL = "https://example.com"
	cfg.Content.Paths = interfaces.ContentPaths{}

	if err := cfg.Validate(); !errors.Is(err, ErrContentPathRequired) {
		t.Fatalf("expected ErrContentPathRequired, got %v", err)
	}
}

func TestValidateEditURLPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.URL = "https://example.com"
	cfg.Content.EditURL = EditURLPolicy{Kind: EditURLCustom}

	if err := cfg.Validate(); !errors.Is(err, ErrEditURLPolicyInvalid) {
		t.Fatalf("expected ErrEditURLPolicyInvalid for custom policy, got %v", err)
	}

	cfg.Content.EditURL = EditURLPolicy{Kind: EditURLTemplate}
	if err := cfg.Validate(); !errors.Is(err, ErrEditURLPolicyInvalid) {
		t.Fatalf("expected ErrEditURLPolicyInvalid for template policy, got %v", err)
	}

	cfg.Content.EditURL = EditURLPolicy{Kind: EditURLTemplate, BaseURL: "https://github.com/acme/site/edit/main"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid template policy, got %v", err)
	}
}

func TestValidateLoggingOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.URL = "https://example.com"

	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "pretty"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid logging config, got %v", err)
	}
}
