// Package utils holds small helpers shared by the use-case layer.
package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// SanitizeContent strips any HTML markup from user-generated text while
// leaving plain text byte-for-byte intact. Stored content is plain
// text; rendering concerns stay with clients.
func SanitizeContent(s string) string {
	// StrictPolicy escapes entities after stripping tags; unescape so
	// plain text like "a & b" round-trips unchanged.
	return html.UnescapeString(strict.Sanitize(s))
}

// SanitizeTitle additionally collapses newlines, titles are single-line.
func SanitizeTitle(s string) string {
	sanitized := SanitizeContent(s)
	sanitized = strings.ReplaceAll(sanitized, "\r\n", " ")
	sanitized = strings.ReplaceAll(sanitized, "\n", " ")
	return strings.TrimSpace(sanitized)
}
