package ui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
var (
	colorGreen  = lipgloss.Color("#a6e3a1")
	colorYellow = lipgloss.Color("#f9e2af")
	colorRed    = lipgloss.Color("#f38ba8")
	colorTeal   = lipgloss.Color("#94e2d5")
	colorMauve  = lipgloss.Color("#cba6f7")
	colorMuted  = lipgloss.Color("#5a6278")
	colorBright = lipgloss.Color("#cdd6f4")
)

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	styleLabel   = lipgloss.NewStyle().Foreground(colorBright)
	styleCount   = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	styleSkipped = lipgloss.NewStyle().Foreground(colorMuted)
	styleErrors  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleOK      = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleDryRun  = lipgloss.NewStyle().Italic(true).Foreground(colorYellow)
)
