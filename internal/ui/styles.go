package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")

	// Styles
	infoStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	headerStyle = lipgloss.NewStyle().
			Bold(true)
)

const (
	infoTag    = "[INFO]"
	successTag = "[SUCCESS]"
	warningTag = "[WARNING]"
	errorTag   = "[ERROR]"
)
