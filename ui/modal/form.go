package modal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/canopy/focus"
	"github.com/riordanpawley/canopy/overlay"
)

// Field describes one form input
type Field struct {
	Label       string
	Placeholder string
}

// Form is a modal with text inputs whose tab traversal runs through a focus
// trap. The trap decides where focus goes; the form mirrors the surface's
// focus position onto its inputs.
type Form struct {
	id       overlay.ID
	title    string
	surface  focus.Surface
	nav      Traverser
	labels   []string
	inputs   []textinput.Model
	elements []focus.ElementID
	keys     KeyMap
	styles   *Styles
}

// NewForm creates a form modal. The caller attaches Boundary().Elements to
// the document and pushes a trap for them before the form receives input.
func NewForm(id overlay.ID, title string, surface focus.Surface, nav Traverser, fields []Field) *Form {
	f := &Form{
		id:      id,
		title:   title,
		surface: surface,
		nav:     nav,
		keys:    DefaultKeyMap(),
		styles:  NewStyles(),
	}

	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.Placeholder
		ti.CharLimit = 200
		ti.Width = 40

		f.labels = append(f.labels, field.Label)
		f.inputs = append(f.inputs, ti)
		f.elements = append(f.elements, FieldElementID(id, i))
	}
	return f
}

// FieldElementID returns the element handle for one form field
func FieldElementID(id overlay.ID, index int) focus.ElementID {
	return focus.ElementID(fmt.Sprintf("%s/field/%d", id, index))
}

// Boundary returns the form's focusable region for trap activation
func (f *Form) Boundary() focus.Boundary {
	return focus.Boundary{
		Root:     focus.ElementID(f.id),
		Elements: f.elements,
	}
}

// Values returns the current field contents in field order
func (f *Form) Values() []string {
	values := make([]string, len(f.inputs))
	for i, input := range f.inputs {
		values[i] = input.Value()
	}
	return values
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	f.syncFocus()
	return textinput.Blink
}

// Update handles messages
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, f.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Cancel):
		return f, func() tea.Msg { return CloseMsg{ID: f.id} }

	case key.Matches(keyMsg, f.keys.Confirm):
		values := f.Values()
		return f, func() tea.Msg { return SubmitMsg{ID: f.id, Value: values} }

	case key.Matches(keyMsg, f.keys.NextField):
		f.nav.Next()
		f.syncFocus()
		return f, nil

	case key.Matches(keyMsg, f.keys.PrevField):
		f.nav.Prev()
		f.syncFocus()
		return f, nil
	}

	return f, f.updateFocusedInput(msg)
}

// View renders the form
func (f *Form) View() string {
	var b strings.Builder

	for i, input := range f.inputs {
		label := f.styles.Label
		if input.Focused() {
			label = f.styles.ItemActive
		}
		b.WriteString(label.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(f.styles.Footer.Render("Tab: Next field • Enter: Submit • Esc: Cancel"))
	return b.String()
}

// ID returns the form's overlay id
func (f *Form) ID() overlay.ID {
	return f.id
}

// Title returns the form title
func (f *Form) Title() string {
	return f.title
}

// Size returns the form dimensions
func (f *Form) Size() (width, height int) {
	return 50, len(f.inputs)*3 + 4
}

// syncFocus mirrors the surface's focus position onto the text inputs
func (f *Form) syncFocus() {
	focused := f.surface.Focused()
	for i := range f.inputs {
		if f.elements[i] == focused {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *Form) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range f.inputs {
		if f.inputs[i].Focused() {
			var cmd tea.Cmd
			f.inputs[i], cmd = f.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}
