package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Faint(true)
	doneStyle    = cellStyle.Foreground(lipgloss.Color("10"))
	failedStyle  = cellStyle.Foreground(lipgloss.Color("9"))
	pendingStyle = cellStyle.Foreground(lipgloss.Color("11"))
)
