package styles

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	lightInk = "#FFFFFF"
	darkInk  = "#1A1A1A"
)

// Contrast returns a foreground that stays readable on top of the given
// background hex color. Invalid input yields the light ink.
func Contrast(bg string) lipgloss.Color {
	c, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(lightInk)
	}
	// Perceptual lightness in CIE L*a*b*; above the midpoint dark text reads better.
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color(darkInk)
	}
	return lipgloss.Color(lightInk)
}

// Dim blends the accent toward the terminal's dark surface. Used for the
// card border so it follows the accent without overpowering the quote.
func Dim(accent string, amount float64) lipgloss.Color {
	c, err := colorful.Hex(accent)
	if err != nil {
		return DimGray
	}
	surface, _ := colorful.Hex(string(Dark))
	return lipgloss.Color(c.BlendLab(surface, amount).Clamped().Hex())
}

// AccentBadge renders text as a filled badge in the accent color.
func AccentBadge(accent, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(accent)).
		Foreground(Contrast(accent)).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// QuoteText is the style for the quote body in the given accent.
func QuoteText(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Bold(true)
}

// QuoteAuthor is the style for the attribution line in the given accent.
func QuoteAuthor(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Italic(true)
}

// QuoteCard is a rounded panel whose border follows the accent.
func QuoteCard(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(Border).
		BorderForeground(Dim(accent, 0.35)).
		Padding(1, 3)
}
