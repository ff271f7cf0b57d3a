package posts

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// datedSourcePattern recognizes date-prefixed source names such as
// "2019-03-14-my-post" anywhere below the content root. Date fields are
// permissive: one to four digits for the year, one or two for month and day.
var datedSourcePattern = regexp.MustCompile(`^(?:(.*)/)?(\d{1,4})-(\d{1,2})-(\d{1,2})-([^/]+)$`)

// parseSourceName inspects a content-root-relative source path (extension
// already stripped) and returns the embedded date plus the date-prefixed link
// fragment when the name carries a date, along with the bare post name.
func parseSourceName(relPath string) (*interfaces.DateLink, string) {
	trimmed := stripSourceExtension(relPath)

	m := datedSourcePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, trimmed
	}

	year, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, trimmed
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	folder := m[1]
	name := m[5]

	link := date.Format("2006/01/02")
	if folder != "" {
		link += "/" + folder
	}
	link += "/" + name

	return &interfaces.DateLink{Date: date, Link: link}, name
}

func stripSourceExtension(relPath string) string {
	for _, ext := range []string{".mdx", ".md"} {
		if strings.HasSuffix(relPath, ext) {
			return strings.TrimSuffix(relPath, ext)
		}
	}
	return relPath
}

var mondayLocales = map[string]monday.Locale{
	"en":    monday.LocaleEnUS,
	"en-us": monday.LocaleEnUS,
	"en-gb": monday.LocaleEnGB,
	"da":    monday.LocaleDaDK,
	"de":    monday.LocaleDeDE,
	"es":    monday.LocaleEsES,
	"fi":    monday.LocaleFiFI,
	"fr":    monday.LocaleFrFR,
	"fr-ca": monday.LocaleFrCA,
	"it":    monday.LocaleItIT,
	"ja":    monday.LocaleJaJP,
	"ko":    monday.LocaleKoKR,
	"nb":    monday.LocaleNbNO,
	"nl":    monday.LocaleNlNL,
	"pl":    monday.LocalePlPL,
	"pt":    monday.LocalePtPT,
	"pt-br": monday.LocalePtBR,
	"ru":    monday.LocaleRuRU,
	"sv":    monday.LocaleSvSE,
	"tr":    monday.LocaleTrTR,
	"zh":    monday.LocaleZhCN,
	"zh-cn": monday.LocaleZhCN,
	"zh-tw": monday.LocaleZhTW,
}

// FormatDate renders a post date as a long-form, locale-aware string. An
// unsupported locale is a hard error that names the date being formatted so
// the failing post is easy to locate.
func FormatDate(date time.Time, locale string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(locale))
	if key == "" {
		key = "en"
	}

	loc, ok := mondayLocales[key]
	if !ok {
		if base, _, found := strings.Cut(key, "-"); found {
			loc, ok = mondayLocales[base]
		}
	}
	if !ok {
		return "", fmt.Errorf("blog posts: format date %s: unsupported locale %q",
			date.UTC().Format("2006-01-02"), locale)
	}

	return monday.Format(date.UTC(), "January 2, 2006", loc), nil
}
