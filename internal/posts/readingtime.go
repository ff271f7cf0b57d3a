package posts

import (
	"strings"

	stripmd "github.com/writeas/go-strip-markdown"
)

const wordsPerMinute = 200

// ReadingTime estimates whole minutes of reading for a Markdown body. The
// body is stripped of Markdown syntax before counting words; non-empty
// bodies always report at least one minute.
func ReadingTime(body string) int {
	words := len(strings.Fields(stripmd.Strip(body)))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
