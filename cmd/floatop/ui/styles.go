// Package ui implements the floatop operator dashboard: four circuit
// controls, live quality metrics against target bands, stream summary
// and trend sparklines over the session history.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorGood  = lipgloss.Color("#8BC34A")
	colorWarn  = lipgloss.Color("#FFC107")
	colorBad   = lipgloss.Color("#e53935")
	colorMuted = lipgloss.Color("#6b7280")
	colorTitle = lipgloss.Color("#2196F3")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	labelStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	inBandStyle   = lipgloss.NewStyle().Foreground(colorGood)
	outBandStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBad)
	adviceStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	statusStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)
