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
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a compact absolute date string.
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// DateRange renders an iteration's inclusive date span.
func DateRange(start, end time.Time) string {
	return fmt.Sprintf("%s – %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatDays renders a day count with two decimals, coloring negative
// capacity red so over-subscribed members stand out.
func FormatDays(v float64) string {
	text := fmt.Sprintf("%.2f", v)
	if v < 0 {
		return StyleRed.Render(text)
	}
	return StyleFg.Render(text)
}

// FormatPercent renders an availability percentage. Values above 100 are
// legal (overtime commitments) and rendered purple.
func FormatPercent(v float64) string {
	text := fmt.Sprintf("%.0f%%", v)
	switch {
	case v > 100:
		return StylePurple.Render(text)
	case v < 50:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// FormatRate renders a 0..1 attendance rate as a percentage.
func FormatRate(v float64) string {
	return FormatPercent(v * 100)
}

// ActivePill returns a colored indicator for an iteration's tracking state.
func ActivePill(active bool) string {
	if active {
		return StyleGreen.Render("● Active")
	}
	return StyleDim.Render("○ Planned")
}

// SignedDays renders a variance amount with an explicit sign.
func SignedDays(v float64) string {
	text := fmt.Sprintf("%+.2f", v)
	switch {
	case v > 0:
		return StyleGreen.Render(text)
	case v < 0:
		return StyleRed.Render(text)
	default:
		return StyleBlue.Render(text)
	}
}
