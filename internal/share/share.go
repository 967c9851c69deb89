// Package share builds share payloads for a quote and hands them to the
// clipboard or the system browser.
package share

import (
	"net/url"
	"strings"
)

// IntentURL is the tweet compose endpoint the share link points at.
const IntentURL = "https://twitter.com/intent/tweet"

// Text formats a quote the way it is shared: "QUOTE" - AUTHOR.
func Text(quote, author string) string {
	return `"` + quote + `" - ` + author
}

// BuildShareURL returns the tweet intent URL pre-filled with Text(quote, author).
// It never fails; empty input still yields a well-formed URL.
func BuildShareURL(quote, author string) string {
	return IntentURL + "?text=" + encodeComponent(Text(quote, author))
}

// encodeComponent percent-encodes s for use as a single query value,
// writing spaces as %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
