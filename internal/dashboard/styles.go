package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/statuskit/sysmon/internal/ui"
)

// Styles for the watch view.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	lineStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true)
)
