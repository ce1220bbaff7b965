// Package songkey derives cache keys and URL slugs from free-text
// artist and song names.
package songkey

import (
	"regexp"
	"strings"
)

var slugDisallowed = regexp.MustCompile(`[^a-z0-9-]`)

// CacheKey builds the canonical cache key for an (artist, song) pair.
// Both parts are lowercased and joined with a hyphen. Inputs are not
// trimmed, so callers must supply already-trimmed strings. Pairs that
// differ only in case collide on purpose.
func CacheKey(artist, song string) string {
	return strings.ToLower(artist) + "-" + strings.ToLower(song)
}

// Slug converts free text into a URL path fragment. The text is
// lowercased and spaces become hyphens, then every remaining character
// outside [a-z0-9-] is stripped. Empty input yields an empty slug.
func Slug(text string) string {
	s := strings.ReplaceAll(strings.ToLower(text), " ", "-")
	return slugDisallowed.ReplaceAllString(s, "")
}
