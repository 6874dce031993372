package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("39")  // Blue
	accentColor  = lipgloss.Color("179") // Sand, close to the document header tint
	mutedColor   = lipgloss.Color("241") // Gray
	successColor = lipgloss.Color("76")  // Green
	errorColor   = lipgloss.Color("196") // Red

	// Base styles
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // Bright cyan
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	valueStyle    = lipgloss.NewStyle().Foreground(accentColor)
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor)
	successStyle  = lipgloss.NewStyle().Foreground(successColor)
)
