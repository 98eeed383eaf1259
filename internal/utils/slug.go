package utils

import (
	"regexp"
	"strings"
	"time"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
)

// MakeSlug turns a title into a URL slug: lowercase, punctuation
// stripped, runs of whitespace/underscores/hyphens collapsed to a
// single hyphen, capped at MaxSlugLength. An empty result falls back
// to a date-stamped placeholder.
func MakeSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
		slug = strings.Trim(slug, "-")
	}
	if slug == "" {
		slug = DefaultSlugPrefix + "-" + time.Now().Format("20060102")
	}
	return slug
}
