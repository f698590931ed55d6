// Package ui provides compositing helpers for placing overlays and alert
// stacks on the terminal screen.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/canopy/ui/styles"
)

// Frame wraps a modal body in the overlay chrome with its title
func Frame(st *styles.Styles, title, body string) string {
	content := body
	if title != "" {
		content = st.OverlayTitle.Render(title) + "\n" + body
	}
	return st.Overlay.Render(content)
}

// Center places a view in the middle of a width x height screen
func Center(width, height int, view string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}

// BottomRight pins a view to the lower-right corner of a width x height
// screen
func BottomRight(width, height int, view string) string {
	return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Bottom, view)
}
