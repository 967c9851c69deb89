package components

import (
	"strings"

	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Notice renders a full-width warning banner with a dismiss hint on the
// right. Returns an empty string when there is no message.
func Notice(width int, message, dismissKey string) string {
	if message == "" || width < 10 {
		return ""
	}

	left := "⚠ " + message
	right := ""
	if dismissKey != "" {
		right = dismissKey + " to dismiss"
	}

	inner := width - 4
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	content := left + strings.Repeat(" ", gap) + right

	return styles.Notice.Width(width).Render(content)
}
