// Package alertview renders the visible alert set as a vertical stack for
// the corner of the screen.
package alertview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/canopy/alert"
	"github.com/riordanpawley/canopy/ui/styles"
)

// Renderer handles rendering of alert notifications
type Renderer struct {
	styles *styles.Styles
}

// New creates a new Renderer with the given styles
func New(st *styles.Styles) *Renderer {
	return &Renderer{styles: st}
}

// Render renders visible alerts as a right-aligned vertical stack, newest at
// the bottom. Returns an empty string when there is nothing to show.
// A waiting count, if non-zero, is appended as a muted footer line.
func (r *Renderer) Render(visible []alert.Alert, waiting int, width int) string {
	if len(visible) == 0 && waiting == 0 {
		return ""
	}

	alertWidth := width / 3
	if alertWidth > 40 {
		alertWidth = 40
	}

	var rendered []string
	for _, a := range visible {
		style := r.styles.Alert(a.Severity)
		line := a.Severity.Icon() + " " + a.Message
		if a.Dismissible {
			line += "  ✕"
		}
		rendered = append(rendered, style.Width(alertWidth).Render(line))
	}

	if waiting > 0 {
		more := fmt.Sprintf("+%d more", waiting)
		rendered = append(rendered, r.styles.AlertWaiting.Render(more))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}
