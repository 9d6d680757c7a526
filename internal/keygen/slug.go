package keygen

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// SlugMaxLength is the maximum length of a generated slug
	SlugMaxLength = 50
	// slugMaxAttempts is the number of numeric suffixes tried before
	// falling back to a timestamp suffix
	slugMaxAttempts = 10
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a title: lowercase, strip
// everything outside [a-z0-9 -], whitespace to hyphens, collapse
// repeated hyphens, trim, truncate to SlugMaxLength.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > SlugMaxLength {
		s = s[:SlugMaxLength]
	}
	return s
}

// UniqueSlug returns a slug for title not present according to exists.
// It tries the base slug, then base-2, base-3, ... and finally falls
// back to a timestamp suffix, so it always returns a value.
func UniqueSlug(title string, exists func(string) bool) string {
	base := Slugify(title)
	if base == "" {
		base = "post"
	}

	if !exists(base) {
		return base
	}

	for i := 2; i <= slugMaxAttempts+1; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !exists(candidate) {
			return candidate
		}
	}

	return fmt.Sprintf("%s-%d", base, time.Now().UnixMilli())
}
