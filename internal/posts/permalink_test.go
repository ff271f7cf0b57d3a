package posts

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{"relative join", []string{"/", "blog", "welcome-aboard"}, "/blog/welcome-aboard"},
		{"duplicate separators", []string{"/docs/", "/blog/", "/2019/03/14/post"}, "/docs/blog/2019/03/14/post"},
		{"absolute", []string{"https://example.com", "blog", "post"}, "https://example.com/blog/post"},
		{"absolute with base", []string{"https://example.com/", "/", "blog"}, "https://example.com/blog"},
		{"empty parts skipped", []string{"", "blog", ""}, "/blog"},
		{"nothing", nil, "/"},
		{"trailing slash trimmed", []string{"/blog/"}, "/blog"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeURL(tc.parts...); got != tc.want {
				t.Fatalf("NormalizeURL(%v) = %q, want %q", tc.parts, got, tc.want)
			}
		})
	}
}
