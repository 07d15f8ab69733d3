package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// VarianceColor returns the lipgloss style for a variance classification.
func VarianceColor(label domain.VarianceLabel) lipgloss.Style {
	switch label {
	case domain.VarianceOver:
		return StyleGreen
	case domain.VarianceUnder:
		return StyleRed
	case domain.VarianceBalanced:
		return StyleBlue
	default:
		return StyleDim
	}
}

// VarianceIndicator returns a colored variance indicator such as "● Over-capacity".
func VarianceIndicator(label domain.VarianceLabel) string {
	switch label {
	case domain.VarianceOver:
		return StyleGreen.Render("● " + string(label))
	case domain.VarianceUnder:
		return StyleRed.Render("▼ " + string(label))
	case domain.VarianceBalanced:
		return StyleBlue.Render("■ " + string(label))
	default:
		return StyleDim.Render("● " + string(label))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
