package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// cardHeight is the rendered height of one contact card: two content
// lines plus top and bottom border.
const cardHeight = 4

// MinCardWidth is the narrowest a card is rendered, regardless of window width.
const MinCardWidth = 24

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	favColor    = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}

	topBarStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
			Background(accentColor)

	tabStyle       = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Underline(true).Padding(0, 2)

	fabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "15", Dark: "0"}).
			Background(accentColor).
			Padding(0, 1)

	nameStyle   = lipgloss.NewStyle().Bold(true)
	mutedText   = lipgloss.NewStyle().Foreground(mutedColor)
	switchOn    = lipgloss.NewStyle().Foreground(favColor).Render("━━●")
	switchOff   = lipgloss.NewStyle().Foreground(mutedColor).Render("○━━")
	labelStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(dimColor)
	activeButtonStyle = buttonStyle.
				Bold(true).
				Foreground(accentColor).
				BorderForeground(accentColor)
)

// FocusedCard returns a lipgloss style with an accent-colored rounded border.
func FocusedCard() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1)
}

// UnfocusedCard returns a lipgloss style with a dim rounded border.
func UnfocusedCard() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dimColor).
		Padding(0, 1)
}

// CardWidth calculates the outer card width for a total window width,
// leaving one column of margin on each side (minimum MinCardWidth).
func CardWidth(totalWidth int) int {
	w := totalWidth - 2
	if w < MinCardWidth {
		return MinCardWidth
	}
	return w
}
