package alert

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/riordanpawley/canopy/overlay"
)

// DefaultMaxVisible is the number of simultaneously visible alerts unless
// configured otherwise
const DefaultMaxVisible = 5

// Config describes one alert. It is immutable once enqueued.
// A zero Duration makes the alert sticky: it stays visible until explicitly
// dismissed.
type Config struct {
	Severity    Severity
	Message     string
	Duration    time.Duration
	Dismissible bool
}

// Alert is a read-only view of a queued or visible alert.
// PromotedAt is zero while the alert is still waiting for a slot.
type Alert struct {
	ID          overlay.ID
	Severity    Severity
	Message     string
	Dismissible bool
	PromotedAt  time.Time
}

// Scheduler schedules the auto-dismiss timers
type Scheduler interface {
	// After runs fn once d has elapsed; the returned cancel is best-effort
	After(d time.Duration, fn func()) (cancel func())
}

// Manager holds pending and visible alerts. Visibility is capped at
// maxVisible; excess alerts wait in arrival order and are promoted as slots
// free. An alert's countdown starts when it becomes visible, not when it was
// enqueued.
//
// All dismissal flows through the overlay registry's exit path, so a timer
// racing a user dismissal tears the alert down exactly once.
type Manager struct {
	registry *overlay.Registry
	sched    Scheduler

	mu         sync.Mutex
	maxVisible int
	visible    []*tracked
	waiting    []*tracked

	logger *zap.Logger
	now    func() time.Time
}

// tracked is the manager's record of one alert
type tracked struct {
	id          overlay.ID
	cfg         Config
	promotedAt  time.Time
	cancelTimer func()
	removed     bool
}

// Option configures a Manager
type Option func(*Manager)

// WithMaxVisible caps the number of simultaneously visible alerts.
// Values below 1 are ignored.
func WithMaxVisible(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.maxVisible = n
		}
	}
}

// WithLogger sets the manager's logger
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock overrides the promotion timestamp source, for tests
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates an alert queue backed by the given registry and
// scheduler
func NewManager(registry *overlay.Registry, sched Scheduler, opts ...Option) *Manager {
	m := &Manager{
		registry:   registry,
		sched:      sched,
		maxVisible: DefaultMaxVisible,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Enqueue registers an alert and returns its overlay id. If a visible slot
// is free the alert is promoted immediately; otherwise it joins the FIFO
// waiting list.
func (m *Manager) Enqueue(cfg Config) (overlay.ID, error) {
	id, err := m.registry.Open(overlay.KindAlert)
	if err != nil {
		return "", err
	}

	t := &tracked{id: id, cfg: cfg}
	if err := m.registry.OnCleanup(id, func(reason overlay.Reason) {
		m.release(t, reason)
	}); err != nil {
		return "", err
	}

	m.mu.Lock()
	promote := len(m.visible) < m.maxVisible
	if promote {
		t.promotedAt = m.now()
		m.visible = append(m.visible, t)
	} else {
		m.waiting = append(m.waiting, t)
	}
	m.mu.Unlock()

	m.logger.Debug("alert enqueued",
		zap.String("id", string(id)),
		zap.String("severity", cfg.Severity.String()),
		zap.Bool("promoted", promote))

	if promote {
		m.activate(t)
	}
	return id, nil
}

// Dismiss closes an alert through the user-action path. Dismissing a waiting
// alert removes it from the queue without promoting anything. Unknown ids
// report overlay.ErrNotFound.
func (m *Manager) Dismiss(id overlay.ID) error {
	return m.registry.CloseWith(id, overlay.ReasonUser)
}

// DismissAll closes every alert: the waiting list first, so that no alert is
// transiently promoted just to be torn down, then the visible set.
func (m *Manager) DismissAll() error {
	m.mu.Lock()
	ids := make([]overlay.ID, 0, len(m.waiting)+len(m.visible))
	for _, t := range m.waiting {
		ids = append(ids, t.id)
	}
	for _, t := range m.visible {
		ids = append(ids, t.id)
	}
	m.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := m.registry.CloseWith(id, overlay.ReasonProgrammatic); err != nil {
			if !errors.Is(err, overlay.ErrNotFound) {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Visible returns the currently visible alerts in promotion order
func (m *Manager) Visible() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return views(m.visible)
}

// Waiting returns the queued alerts in arrival order
func (m *Manager) Waiting() []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return views(m.waiting)
}

// activate marks a promoted alert open and starts its countdown.
// Sticky alerts (zero duration) get no timer.
func (m *Manager) activate(t *tracked) {
	if err := m.registry.MarkOpen(t.id); err != nil {
		m.logger.Warn("activate alert", zap.String("id", string(t.id)), zap.Error(err))
		return
	}
	if t.cfg.Duration <= 0 {
		return
	}

	id := t.id
	cancel := m.sched.After(t.cfg.Duration, func() {
		// A late fire after the alert closed is absorbed by the
		// registry's transition guard.
		_ = m.registry.CloseWith(id, overlay.ReasonTimeout)
	})

	m.mu.Lock()
	if t.removed {
		m.mu.Unlock()
		cancel()
		return
	}
	t.cancelTimer = cancel
	m.mu.Unlock()
}

// release is the cleanup hook run by the registry's exit path. It frees the
// alert's slot and, when a visible alert made room, promotes the oldest
// waiting one. The promoted alert's countdown starts now.
func (m *Manager) release(t *tracked, reason overlay.Reason) {
	m.mu.Lock()
	t.removed = true
	cancel := t.cancelTimer
	t.cancelTimer = nil

	wasVisible := remove(&m.visible, t)
	if !wasVisible {
		remove(&m.waiting, t)
	}

	var promoted *tracked
	if wasVisible && len(m.waiting) > 0 && len(m.visible) < m.maxVisible {
		promoted = m.waiting[0]
		m.waiting = m.waiting[1:]
		promoted.promotedAt = m.now()
		m.visible = append(m.visible, promoted)
	}
	m.mu.Unlock()

	m.logger.Debug("alert released",
		zap.String("id", string(t.id)),
		zap.String("reason", string(reason)),
		zap.Bool("was_visible", wasVisible))

	if cancel != nil {
		cancel()
	}
	if promoted != nil {
		m.activate(promoted)
	}
}

func remove(list *[]*tracked, t *tracked) bool {
	for i, other := range *list {
		if other == t {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

func views(list []*tracked) []Alert {
	out := make([]Alert, 0, len(list))
	for _, t := range list {
		out = append(out, Alert{
			ID:          t.id,
			Severity:    t.cfg.Severity,
			Message:     t.cfg.Message,
			Dismissible: t.cfg.Dismissible,
			PromotedAt:  t.promotedAt,
		})
	}
	return out
}
