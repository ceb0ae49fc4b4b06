// Package styles provides shared lipgloss styles for CLI and TUI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	HeaderStyle  lipgloss.Style
	MutedStyle   lipgloss.Style
	HelpStyle    lipgloss.Style
	DividerStyle lipgloss.Style

	ToastStyle        lipgloss.Style
	ToastTitleStyle   lipgloss.Style
	ToastMessageStyle lipgloss.Style

	ActionPrimaryStyle   lipgloss.Style
	ActionSecondaryStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	MutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Surface)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastTitleStyle = lipgloss.NewStyle().
		Bold(true)
	ToastMessageStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)

	ActionPrimaryStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Primary).
		Foreground(p.Surface).
		Bold(true)
	ActionSecondaryStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Muted)
}

// SeverityColor returns the palette color for a severity name.
func SeverityColor(severity string) lipgloss.Color {
	switch severity {
	case "success":
		return CurrentPalette.Success
	case "error":
		return CurrentPalette.Error
	case "warning":
		return CurrentPalette.Warning
	default:
		return CurrentPalette.Info
	}
}

// SeverityIcon returns the icon for a severity name.
func SeverityIcon(severity string) string {
	switch severity {
	case "success":
		return IconSuccess
	case "error":
		return IconError
	case "warning":
		return IconWarning
	default:
		return IconInfo
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
