// Package canopy coordinates the overlays of a terminal admin console:
// modal dialogs and transient alerts sharing one viewport.
//
// A [Console] composes the three subsystems and owns their wiring:
//
//   - the overlay registry (stacking order, lifecycle state, change
//     notifications, and the single exit path every dismissal trigger
//     funnels through)
//   - the alert queue (bounded visible slots, FIFO promotion, auto-dismiss
//     timers measured from promotion time)
//   - the focus trap stack (per-modal tab cycling, nested modal push/pop,
//     focus restoration on close)
//
// The core is host-independent: timers come from an injected scheduler and
// focus from an injected surface, so the whole lifecycle can be driven
// deterministically in tests via [host.ManualScheduler] and
// [host.Document].
package canopy

import (
	"time"

	"go.uber.org/zap"

	"github.com/riordanpawley/canopy/alert"
	"github.com/riordanpawley/canopy/focus"
	"github.com/riordanpawley/canopy/host"
	"github.com/riordanpawley/canopy/overlay"
)

// Console wires the overlay registry, alert queue, and focus trap stack
// for one document.
type Console struct {
	registry *overlay.Registry
	alerts   *alert.Manager
	traps    *focus.Stack
	surface  focus.Surface
	logger   *zap.Logger
}

// New creates a Console.
//
// With no options the console uses a no-op logger, the system wall-clock
// scheduler, a fresh in-memory document, and the default visible-alert cap.
func New(opts ...Option) (*Console, error) {
	cfg := consoleConfig{
		logger:     zap.NewNop(),
		maxVisible: alert.DefaultMaxVisible,
		clock:      time.Now,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.sched == nil {
		cfg.sched = host.NewSystemScheduler()
	}
	if cfg.surface == nil {
		cfg.surface = host.NewDocument()
	}

	registry := overlay.NewRegistry(cfg.logger)
	return &Console{
		registry: registry,
		alerts: alert.NewManager(registry, cfg.sched,
			alert.WithMaxVisible(cfg.maxVisible),
			alert.WithLogger(cfg.logger),
			alert.WithClock(cfg.clock)),
		traps:   focus.NewStack(cfg.logger),
		surface: cfg.surface,
		logger:  cfg.logger,
	}, nil
}

// OpenModal registers a modal overlay, activates a focus trap for its
// boundary, and returns the overlay id. The trap is released automatically
// when the modal closes, whichever trigger closes it.
func (c *Console) OpenModal(boundary focus.Boundary, opts ...overlay.OpenOption) (overlay.ID, error) {
	id, err := c.registry.Open(overlay.KindModal, opts...)
	if err != nil {
		return "", err
	}

	trap := focus.NewTrap(string(id), c.surface, boundary)
	if err := c.traps.Push(trap); err != nil {
		_ = c.registry.CloseWith(id, overlay.ReasonProgrammatic)
		return "", err
	}
	if err := c.registry.OnCleanup(id, func(overlay.Reason) {
		if err := c.traps.Release(string(id)); err != nil {
			c.logger.Warn("release focus trap", zap.String("id", string(id)), zap.Error(err))
		}
	}); err != nil {
		return "", err
	}
	if err := c.registry.MarkOpen(id); err != nil {
		return "", err
	}
	return id, nil
}

// Notify enqueues an alert and returns its overlay id
func (c *Console) Notify(cfg alert.Config) (overlay.ID, error) {
	return c.alerts.Enqueue(cfg)
}

// Dismiss closes any overlay through the user-action path
func (c *Console) Dismiss(id overlay.ID) error {
	return c.registry.CloseWith(id, overlay.ReasonUser)
}

// DismissAll closes every alert
func (c *Console) DismissAll() error {
	return c.alerts.DismissAll()
}

// Close closes any overlay through the programmatic path
func (c *Console) Close(id overlay.ID) error {
	return c.registry.Close(id)
}

// ListActive returns all registered overlays in stacking order
func (c *Console) ListActive() []overlay.Instance {
	return c.registry.ListActive()
}

// OnChange subscribes to overlay state changes
func (c *Console) OnChange(fn func(overlay.Event)) (unsubscribe func()) {
	return c.registry.OnChange(fn)
}

// FocusNext moves focus forward within the topmost modal's trap
func (c *Console) FocusNext() {
	c.traps.Next()
}

// FocusPrev moves focus backward within the topmost modal's trap
func (c *Console) FocusPrev() {
	c.traps.Prev()
}

// Alerts exposes the alert queue for rendering
func (c *Console) Alerts() *alert.Manager {
	return c.alerts
}

// Registry exposes the overlay registry
func (c *Console) Registry() *overlay.Registry {
	return c.registry
}

// Traps exposes the focus trap stack
func (c *Console) Traps() *focus.Stack {
	return c.traps
}

// Surface returns the focus surface the console traps against
func (c *Console) Surface() focus.Surface {
	return c.surface
}

// Reset closes every overlay and removes all subscriptions, returning the
// console to its initial state. Intended for test isolation and shutdown.
func (c *Console) Reset() {
	c.registry.Reset()
}
