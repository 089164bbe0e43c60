package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a title. The same title always
// produces the same slug: lowercase, runs of anything outside [a-z0-9]
// collapse to a single hyphen, no leading or trailing hyphens.
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)

	hyphenated := strings.ReplaceAll(lower, " ", "-")

	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "-")

	normalized := hyphenRuns.ReplaceAllString(cleaned, "-")

	return strings.Trim(normalized, "-")
}
