// Package styles defines the shared lipgloss styles for overlay and alert
// rendering, themed with Catppuccin Macchiato.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/canopy/alert"
)

// Styles holds all the UI styles
type Styles struct {
	// Overlays
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Footer       lipgloss.Style

	// Alerts
	AlertInfo    lipgloss.Style
	AlertSuccess lipgloss.Style
	AlertWarning lipgloss.Style
	AlertError   lipgloss.Style
	AlertWaiting lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(Subtext0).
			MarginTop(1),

		AlertInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		AlertSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		AlertWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		AlertError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		AlertWaiting: lipgloss.NewStyle().
			Foreground(Overlay0),
	}
}

// Alert returns the appropriate style for an alert severity
func (s *Styles) Alert(severity alert.Severity) lipgloss.Style {
	switch severity {
	case alert.SeveritySuccess:
		return s.AlertSuccess
	case alert.SeverityWarning:
		return s.AlertWarning
	case alert.SeverityError:
		return s.AlertError
	default:
		return s.AlertInfo
	}
}
