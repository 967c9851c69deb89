// Package palette holds the fixed accent colours and offline fallback quotes,
// plus the random selection helpers that draw from them.
package palette

// DefaultColor is the accent used before the first quote has been fetched.
const DefaultColor = "#4A90E2"

// Colors is the ordered accent palette. Every fetch, successful or not,
// picks its accent from this list.
var Colors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
}

// Contains reports whether color is one of the given palette entries.
func Contains(colors []string, color string) bool {
	for _, c := range colors {
		if c == color {
			return true
		}
	}
	return false
}
