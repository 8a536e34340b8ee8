// Package sanitize strips markup from free-text input before it reaches
// the service layer. Descriptions and search terms are stored and echoed
// back to clients, so anything tag-shaped is removed and the remainder is
// HTML-escaped.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// String removes HTML/script tags, escapes special characters, and trims
// surrounding whitespace.
func String(s string) string {
	stripped := tagRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(html.EscapeString(stripped))
}
