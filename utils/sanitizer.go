package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy removes every tag. Model output and staff input are plain text.
var StrictPolicy = bluemonday.StrictPolicy()

// StripHTML removes all markup and returns plain text. bluemonday escapes the
// remaining text, so entities are decoded again before the text reaches a
// template that escapes on its own.
func StripHTML(s string) string {
	return html.UnescapeString(StrictPolicy.Sanitize(s))
}

// CleanText strips markup and collapses surrounding whitespace
func CleanText(s string) string {
	return strings.TrimSpace(StripHTML(s))
}
