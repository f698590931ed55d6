// Package main provides a gallery application exercising the canopy overlay
// lifecycle: nested modals with focus trapping, alert bursts against the
// visible-slot cap, sticky errors, and dismiss-all.
//
// Usage:
//
//	canopy-gallery
//
// Keys: a=info alert, e=error alert, b=burst of 7, m=confirm modal,
// f=form modal (nestable), d=dismiss all alerts, q=quit.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/riordanpawley/canopy"
	"github.com/riordanpawley/canopy/alert"
	"github.com/riordanpawley/canopy/config"
	"github.com/riordanpawley/canopy/focus"
	"github.com/riordanpawley/canopy/host"
	"github.com/riordanpawley/canopy/overlay"
	"github.com/riordanpawley/canopy/ui"
	"github.com/riordanpawley/canopy/ui/alertview"
	"github.com/riordanpawley/canopy/ui/modal"
	"github.com/riordanpawley/canopy/ui/styles"
)

// overlayChangedMsg is sent to the program whenever any overlay changes state
type overlayChangedMsg struct {
	event overlay.Event
}

type model struct {
	console *canopy.Console
	doc     *host.Document
	cfg     config.Config
	styles  *styles.Styles
	alerts  *alertview.Renderer

	modals []modal.Modal
	seq    int
	width  int
	height int
}

func newModel(console *canopy.Console, doc *host.Document, cfg config.Config) *model {
	st := styles.New()
	return &model{
		console: console,
		doc:     doc,
		cfg:     cfg,
		styles:  st,
		alerts:  alertview.New(st),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case overlayChangedMsg:
		if msg.event.Instance.Kind == overlay.KindModal && msg.event.Instance.State == overlay.StateClosed {
			m.removeModal(msg.event.Instance.ID)
		}
		return m, nil

	case modal.CloseMsg:
		m.removeModal(msg.ID)
		_ = m.console.Dismiss(msg.ID)
		return m, nil

	case modal.SubmitMsg:
		m.removeModal(msg.ID)
		_ = m.console.Dismiss(msg.ID)
		return m, m.reportSubmission(msg.Value)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.console.Reset()
		return m, tea.Quit
	}

	// An open modal owns the keyboard
	if len(m.modals) > 0 {
		top := m.modals[len(m.modals)-1]
		updated, cmd := top.Update(msg)
		if replacement, ok := updated.(modal.Modal); ok {
			m.modals[len(m.modals)-1] = replacement
		}
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.console.Reset()
		return m, tea.Quit

	case "a":
		_, _ = m.console.Notify(alert.Config{
			Severity:    alert.SeverityInfo,
			Message:     "Background sync finished",
			Duration:    m.cfg.Alerts.DefaultDuration,
			Dismissible: true,
		})

	case "e":
		cfg := alert.Config{
			Severity:    alert.SeverityError,
			Message:     "Deploy failed: connection refused",
			Dismissible: true,
		}
		if !m.cfg.Alerts.StickyErrors {
			cfg.Duration = m.cfg.Alerts.DefaultDuration
		}
		_, _ = m.console.Notify(cfg)

	case "b":
		for i := 1; i <= 7; i++ {
			_, _ = m.console.Notify(alert.Config{
				Severity: alert.SeveritySuccess,
				Message:  fmt.Sprintf("Job %d of 7 completed", i),
				Duration: m.cfg.Alerts.DefaultDuration,
			})
		}

	case "d":
		_ = m.console.DismissAll()

	case "m":
		return m, m.openConfirm()

	case "f":
		return m, m.openForm()
	}

	return m, nil
}

// openConfirm opens a confirm dialog; its boundary has no focusable
// descendants, so the trap holds focus on the dialog root.
func (m *model) openConfirm() tea.Cmd {
	m.seq++
	root := focus.ElementID(fmt.Sprintf("confirm-%d", m.seq))
	m.doc.Attach(root)

	id, err := m.console.OpenModal(focus.Boundary{Root: root})
	if err != nil {
		return nil
	}
	_ = m.console.Registry().OnCleanup(id, func(overlay.Reason) {
		m.doc.Detach(root)
	})

	dialog := modal.NewConfirm(id, "Restart service", "Restart the gateway now?")
	m.modals = append(m.modals, dialog)
	return dialog.Init()
}

// openForm opens a form modal whose field traversal runs through the focus
// trap stack. Forms nest: opening one over another pushes a second trap.
func (m *model) openForm() tea.Cmd {
	m.seq++
	id := overlay.ID(fmt.Sprintf("form-%d", m.seq))

	form := modal.NewForm(id, "New project", m.doc, m.console.Traps(), []modal.Field{
		{Label: "Name", Placeholder: "project name"},
		{Label: "Owner", Placeholder: "team"},
		{Label: "Region", Placeholder: "us-east-1"},
	})

	boundary := form.Boundary()
	m.doc.Attach(boundary.Root)
	m.doc.Attach(boundary.Elements...)

	if _, err := m.console.OpenModal(boundary, overlay.WithID(id)); err != nil {
		m.doc.Detach(boundary.Elements...)
		m.doc.Detach(boundary.Root)
		return nil
	}
	_ = m.console.Registry().OnCleanup(id, func(overlay.Reason) {
		m.doc.Detach(boundary.Elements...)
		m.doc.Detach(boundary.Root)
	})

	m.modals = append(m.modals, form)
	return form.Init()
}

func (m *model) reportSubmission(value any) tea.Cmd {
	switch v := value.(type) {
	case modal.ConfirmResult:
		severity := alert.SeverityWarning
		message := "Restart cancelled"
		if v.Confirmed {
			severity = alert.SeveritySuccess
			message = "Gateway restarting"
		}
		_, _ = m.console.Notify(alert.Config{
			Severity: severity,
			Message:  message,
			Duration: m.cfg.Alerts.DefaultDuration,
		})
	case []string:
		_, _ = m.console.Notify(alert.Config{
			Severity: alert.SeveritySuccess,
			Message:  "Created project " + strings.Join(v, " / "),
			Duration: m.cfg.Alerts.DefaultDuration,
		})
	}
	return nil
}

func (m *model) removeModal(id overlay.ID) {
	for i, dialog := range m.modals {
		if dialog.ID() == id {
			m.modals = append(m.modals[:i], m.modals[i+1:]...)
			return
		}
	}
}

func (m *model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	base := m.homeView()
	if len(m.modals) > 0 {
		top := m.modals[len(m.modals)-1]
		framed := ui.Frame(m.styles, top.Title(), top.View())
		base = ui.Center(m.width, m.height-1, framed)
	}

	visible := m.console.Alerts().Visible()
	waiting := len(m.console.Alerts().Waiting())
	stack := m.alerts.Render(visible, waiting, m.width)
	if stack == "" {
		return base
	}
	return base + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Right, stack)
}

func (m *model) homeView() string {
	var b strings.Builder
	b.WriteString(m.styles.OverlayTitle.Render("canopy gallery"))
	b.WriteString("\n\n")
	b.WriteString("a: info alert    e: error alert (sticky)    b: burst of 7\n")
	b.WriteString("m: confirm modal    f: form modal (nestable)\n")
	b.WriteString("d: dismiss all alerts    q: quit\n\n")

	active := m.console.ListActive()
	b.WriteString(m.styles.Footer.Render(fmt.Sprintf(
		"active overlays: %d  •  traps: %d  •  focus: %s",
		len(active), m.console.Traps().Len(), m.doc.Focused())))
	return lipgloss.Place(m.width, m.height-1, lipgloss.Left, lipgloss.Top, b.String())
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := zap.NewNop()
	if os.Getenv("CANOPY_DEBUG") != "" {
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()

	doc := host.NewDocument()
	console, err := canopy.New(
		canopy.WithLogger(logger),
		canopy.WithSurface(doc),
		canopy.WithMaxVisibleAlerts(cfg.Alerts.MaxVisible),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating console: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(
		newModel(console, doc, cfg),
		tea.WithAltScreen(),
	)

	unsubscribe := console.OnChange(func(ev overlay.Event) {
		program.Send(overlayChangedMsg{event: ev})
	})
	defer unsubscribe()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	// Ensure timers are stopped even if quit bypassed the key handler
	console.Reset()
}
