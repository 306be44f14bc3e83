package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Private brand colors.
	colorIris   = lipgloss.Color("#5D3FD3")
	colorSlate  = lipgloss.Color("#667085")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorGreen  = lipgloss.Color("42")
	colorRed    = lipgloss.Color("196")
	colorYellow = lipgloss.Color("214")

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(colorRed).
				Foreground(colorWhite)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true)

	notificationStyle = lipgloss.NewStyle().
				Foreground(colorSlate)

	// Outcome Styles.
	doneStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	cancelledStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	bodyStyle = lipgloss.NewStyle().
			Padding(1, 2)
)
