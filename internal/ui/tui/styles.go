package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentPrimary = lipgloss.Color("#50E3C2")
	passColor     = lipgloss.Color("#3FB950")
	failColor     = lipgloss.Color("#FF6B6B")
	mutedText     = lipgloss.Color("#8CA1AE")
	cursorBG      = lipgloss.Color("#1F3A47")
)

var (
	titleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(accentPrimary)

	subtitleStyle = lipgloss.NewStyle().Foreground(mutedText)

	passStyle  = lipgloss.NewStyle().Foreground(passColor)
	failStyle  = lipgloss.NewStyle().Foreground(failColor)
	mutedStyle = lipgloss.NewStyle().Foreground(mutedText)

	cursorStyle = lipgloss.NewStyle().Background(cursorBG).Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(accentPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(accentPrimary)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(mutedText)

	disabledTabStyle = tabStyle.Foreground(lipgloss.Color("#4A5862"))

	infoStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(mutedText).
			Italic(true)
)

func statusStyle(passed bool) lipgloss.Style {
	if passed {
		return passStyle
	}
	return failStyle
}
