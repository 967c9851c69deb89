// Package components provides render-only building blocks shared by the
// quotebox TUI models.
package components

import (
	"strings"

	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Header renders the top bar.
//
//	❝ quotebox > random quote             quoteslate.vercel.app
//	──────────────────────────────────────────────────────────
//
// accent tints the mark before the brand; empty uses the chrome blue. A
// source that does not fit is truncated, then dropped.
func Header(width int, breadcrumb, source, accent string) string {
	if width < 10 {
		return ""
	}

	markColor := lipgloss.Color(accent)
	if accent == "" {
		markColor = styles.Blue
	}
	left := lipgloss.NewStyle().Foreground(markColor).Render("❝ ") +
		styles.Title.Foreground(styles.Blue).Render("quotebox")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	inner := width - 4
	right := ""
	if room := inner - lipgloss.Width(left) - 1; source != "" && room >= 4 {
		right = styles.Subtitle.Render(ansi.Truncate(source, room, "…"))
	}
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right)
}
