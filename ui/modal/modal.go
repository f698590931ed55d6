// Package modal provides Bubble Tea dialog components driven by the overlay
// lifecycle: a confirm dialog and a form whose field traversal goes through
// a focus trap.
package modal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/canopy/overlay"
)

// Modal represents a modal dialog component
type Modal interface {
	tea.Model
	ID() overlay.ID
	Title() string
	Size() (width, height int)
}

// CloseMsg signals that the modal wants to be closed
type CloseMsg struct {
	ID overlay.ID
}

// SubmitMsg is sent when a modal's action is confirmed
type SubmitMsg struct {
	ID    overlay.ID
	Value any
}

// Traverser moves focus within the active trap boundary.
// Both *focus.Trap and *focus.Stack satisfy it.
type Traverser interface {
	Next()
	Prev()
}

// KeyMap defines the modal keybindings
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the standard modal keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
