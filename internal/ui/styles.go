// Package ui holds the lipgloss styles shared by the topic browser.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the browser.
var (
	ColorCyan    = lipgloss.Color("#00FFFF")
	ColorYellow  = lipgloss.Color("#FFFF00")
	ColorGreen   = lipgloss.Color("#00FF00")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorRed     = lipgloss.Color("#FF0000")
)

// Base styles reused by the panels.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	KeywordStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorDimGray)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SpeakerStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	SensitivityStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimGray).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorCyan).
				Padding(0, 1)
)
