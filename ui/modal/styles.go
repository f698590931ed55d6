package modal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/canopy/ui/styles"
)

// Styles holds all modal-specific styles
type Styles struct {
	// Item is the default item style
	Item lipgloss.Style
	// ItemActive is the highlighted/selected item style
	ItemActive lipgloss.Style
	// Label is the form field label style
	Label lipgloss.Style
	// Footer is the style for modal footer hints
	Footer lipgloss.Style
}

// NewStyles creates a new Styles instance using the Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		Item: lipgloss.NewStyle().
			Foreground(styles.Text),

		ItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(styles.Subtext1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}
