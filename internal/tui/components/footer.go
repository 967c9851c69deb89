package components

import (
	"strings"

	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a single key binding for the footer.
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer renders the key hint bar. Hints that do not fit on one line are
// dropped from the end, so list the important ones first.
func Footer(width int, bindings []KeyBinding) string {
	if width < 10 || len(bindings) == 0 {
		return ""
	}

	avail := width - 4
	sep := styles.KeySepStyle.Render("  ")
	var line strings.Builder
	for i, b := range bindings {
		part := styles.FormatKeyBinding(b.Key, b.Desc)
		if i > 0 {
			part = sep + part
		}
		if lipgloss.Width(line.String())+lipgloss.Width(part) > avail {
			break
		}
		line.WriteString(part)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(line.String())
}

// BindingsFrom converts enabled bubbles key bindings into footer entries.
func BindingsFrom(keys ...key.Binding) []KeyBinding {
	out := make([]KeyBinding, 0, len(keys))
	for _, k := range keys {
		if !k.Enabled() {
			continue
		}
		h := k.Help()
		out = append(out, KeyBinding{Key: h.Key, Desc: h.Desc})
	}
	return out
}
