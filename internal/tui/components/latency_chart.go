package components

import (
	"fmt"
	"math"

	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the fixed height for all metric sparklines.
const chartHeight = 5

// LatencyChart renders a single-series sparkline with a label header, used
// for fetch durations in milliseconds. A muted placeholder is returned when
// data is empty.
func LatencyChart(label string, data []float64, width int, suffix string) string {
	if len(data) == 0 {
		return styles.MutedText.Render(label + ": no data")
	}

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < 10 {
		plotWidth = 10
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	// Summary line: latest, min, max.
	latest := data[len(data)-1]
	lo, hi := minMax(data)
	summary := styles.MutedText.Render(
		fmt.Sprintf("  last: %s  min: %s  max: %s",
			formatValue(latest, suffix),
			formatValue(lo, suffix),
			formatValue(hi, suffix),
		),
	)

	header := styles.Label.Render(label)
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, summary)
}

// minMax returns the minimum and maximum values from a slice.
func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// formatValue renders a millisecond value, switching to seconds once it
// reaches a full second.
func formatValue(v float64, suffix string) string {
	if suffix == "ms" && v >= 1_000 {
		return fmt.Sprintf("%.2fs", v/1_000)
	}
	return fmt.Sprintf("%.0f%s", v, suffix)
}
