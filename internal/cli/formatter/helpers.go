package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders fractional hours compactly: "3h", "2.5h".
func FormatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	n := strings.TrimRight(fmt.Sprintf("%.2f", hours), "0")
	return strings.TrimSuffix(n, ".") + "h"
}

// padCell right-pads a styled cell to a visible width, measuring through
// any ANSI escapes.
func padCell(cell string, width int) string {
	pad := width - lipgloss.Width(cell)
	if pad < 0 {
		pad = 0
	}
	return cell + strings.Repeat(" ", pad)
}

// renderColumns aligns styled cells under their headers with a dimmed
// rule between: the layout both ledger and week-summary tables share.
// Columns follow their widest cell; the last column is left ragged.
func renderColumns(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const gap = "  "
	total := len(gap) * (len(headers) - 1)
	for _, w := range widths {
		total += w
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(padCell(StyleHeader.Render(h), widths[i]))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(strings.Repeat("─", total)))
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(gap)
			}
			if i == len(row)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(padCell(cell, widths[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// WeekdayName returns the short weekday name for a plan day's ISO date.
func WeekdayName(iso string) string {
	t, err := time.ParseInLocation("2006-01-02", iso, time.Local)
	if err != nil {
		return "???"
	}
	return t.Format("Mon")
}
