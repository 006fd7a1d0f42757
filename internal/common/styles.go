package common

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	CountStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true).
			Width(5).
			Align(lipgloss.Right)

	WarnStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// Counted is one line of a counts section.
type Counted struct {
	Label string
	Count int
}

// RenderCounts renders a titled, bordered block of right-aligned counts.
func RenderCounts(title string, rows []Counted) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(CountStyle.Render(fmt.Sprintf("%d", r.Count)))
		b.WriteString("  ")
		b.WriteString(r.Label)
	}
	return SectionStyle.Render(b.String())
}
