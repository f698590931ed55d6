package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/canopy/overlay"
)

// Confirm is a confirmation dialog with Yes/No options
type Confirm struct {
	id       overlay.ID
	title    string
	message  string
	keys     KeyMap
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult carries the outcome of a confirmation dialog
type ConfirmResult struct {
	Confirmed bool
}

// NewConfirm creates a confirmation dialog for the given overlay
func NewConfirm(id overlay.ID, title, message string) *Confirm {
	return &Confirm{
		id:      id,
		title:   title,
		message: message,
		keys:    DefaultKeyMap(),
		styles:  NewStyles(),
	}
}

// Init initializes the dialog
func (c *Confirm) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Cancel):
		return c, func() tea.Msg { return CloseMsg{ID: c.id} }

	case key.Matches(keyMsg, c.keys.Confirm):
		confirmed := c.selected
		return c, func() tea.Msg {
			return SubmitMsg{ID: c.id, Value: ConfirmResult{Confirmed: confirmed}}
		}

	case key.Matches(keyMsg, c.keys.NextField), key.Matches(keyMsg, c.keys.PrevField):
		c.selected = !c.selected
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, func() tea.Msg {
			return SubmitMsg{ID: c.id, Value: ConfirmResult{Confirmed: true}}
		}
	case "n", "N":
		return c, func() tea.Msg {
			return SubmitMsg{ID: c.id, Value: ConfirmResult{Confirmed: false}}
		}
	case "left", "h":
		c.selected = false
	case "right", "l":
		c.selected = true
	}

	return c, nil
}

// View renders the dialog
func (c *Confirm) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.Item.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.Item
	noStyle := c.styles.Item
	if c.selected {
		yesStyle = c.styles.ItemActive
	} else {
		noStyle = c.styles.ItemActive
	}

	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(c.styles.Footer.Render("←/→/Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// ID returns the dialog's overlay id
func (c *Confirm) ID() overlay.ID {
	return c.id
}

// Title returns the dialog title
func (c *Confirm) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *Confirm) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 60, messageLines + 6
}
