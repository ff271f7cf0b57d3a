package posts

import "regexp"

// Truncate returns the portion of text before the first truncate marker
// match. Text without the marker, or a nil marker, passes through unchanged.
func Truncate(text string, marker *regexp.Regexp) string {
	if marker == nil {
		return text
	}
	if loc := marker.FindStringIndex(text); loc != nil {
		return text[:loc[0]]
	}
	return text
}

func isTruncated(text string, marker *regexp.Regexp) bool {
	return marker != nil && marker.MatchString(text)
}
