package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center)

	nameStyle = lipgloss.NewStyle().
			Width(nameWidth).
			MaxWidth(nameWidth).
			PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center)

	cursorStyle = cellStyle.
			Background(lipgloss.Color("236")).
			Bold(true)

	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	unsetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(2)

	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
)
