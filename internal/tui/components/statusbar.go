package components

import (
	"strings"

	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the line between the content and the footer. message is
// left-aligned; meta is right-aligned and dropped when both do not fit.
func StatusBar(width int, message string, isError bool, meta string) string {
	if message == "" && meta == "" {
		return ""
	}

	style := styles.MutedText
	if isError {
		style = styles.ErrorText
	}
	left := style.Render(message)
	right := styles.MutedText.Render(meta)

	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if meta == "" || gap < 1 {
		right, gap = "", 0
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(left + strings.Repeat(" ", gap) + right)
}
