package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)

	// Heatmap ramp, deep (low potential) to shallow (high).
	rampStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("50")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	rampChars = []rune("·░░▒▒▓▓███")
)
