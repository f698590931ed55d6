package overlay

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry is the single source of truth for currently active overlays.
// It allocates ids and stacking order, tracks lifecycle state, and notifies
// subscribers on every state change.
//
// All mutations are visible to ListActive immediately; there is no buffering.
// Listeners and cleanup hooks run outside the registry lock, so they may
// synchronously call back into the registry.
type Registry struct {
	mu        sync.Mutex
	records   map[ID]*record
	order     []ID // creation order; ZOrder ascending by construction
	nextZ     int64
	listeners map[int]func(Event)
	nextSub   int
	logger    *zap.Logger
	now       func() time.Time
}

// record is the live registry entry backing an Instance
type record struct {
	inst    Instance
	cleanup []func(Reason)
}

// NewRegistry creates an empty registry.
// A nil logger disables logging.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		records:   make(map[ID]*record),
		listeners: make(map[int]func(Event)),
		logger:    logger,
		now:       time.Now,
	}
}

// OpenOption configures an Open call
type OpenOption func(*openConfig)

type openConfig struct {
	id ID
}

// WithID supplies a caller-managed id instead of a generated one.
// Open fails with ErrDuplicateID if the id is already registered.
func WithID(id ID) OpenOption {
	return func(cfg *openConfig) {
		cfg.id = id
	}
}

// Open registers a new overlay in state Opening and returns its id.
// The id is generated internally unless WithID is given. ZOrder is strictly
// increasing with creation order among all overlays ever opened.
func (r *Registry) Open(kind Kind, opts ...OpenOption) (ID, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r.mu.Lock()
	id := cfg.id
	if id == "" {
		id = ID(uuid.NewString())
	} else if _, exists := r.records[id]; exists {
		r.mu.Unlock()
		return "", &Error{Op: "open", ID: id, Err: ErrDuplicateID}
	}

	r.nextZ++
	rec := &record{inst: Instance{
		ID:        id,
		Kind:      kind,
		CreatedAt: r.now(),
		ZOrder:    r.nextZ,
		State:     StateOpening,
	}}
	r.records[id] = rec
	r.order = append(r.order, id)
	ev, fns := r.eventLocked(rec.inst, "")
	r.mu.Unlock()

	r.logger.Debug("overlay opened",
		zap.String("id", string(id)),
		zap.String("kind", kind.String()),
		zap.Int64("zorder", ev.Instance.ZOrder))
	notify(fns, ev)
	return id, nil
}

// MarkOpen transitions an overlay from Opening to Open.
// Modals call this once their focus trap is active; alerts are marked open
// at promotion time.
func (r *Registry) MarkOpen(id ID) error {
	r.mu.Lock()
	rec, ok := r.records[id]
	if !ok {
		r.mu.Unlock()
		return &Error{Op: "mark-open", ID: id, Err: ErrNotFound}
	}
	if !rec.inst.State.canTransition(StateOpen) {
		from := rec.inst.State
		r.mu.Unlock()
		r.logger.Warn("invalid transition",
			zap.String("id", string(id)),
			zap.String("from", from.String()),
			zap.String("to", StateOpen.String()))
		return &Error{Op: "mark-open", ID: id, Err: ErrInvalidTransition}
	}
	rec.inst.State = StateOpen
	ev, fns := r.eventLocked(rec.inst, "")
	r.mu.Unlock()

	notify(fns, ev)
	return nil
}

// OnCleanup registers a teardown hook for an overlay. Hooks run exactly once,
// in reverse registration order, when the overlay closes — regardless of
// which trigger closed it.
func (r *Registry) OnCleanup(id ID, fn func(Reason)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return &Error{Op: "on-cleanup", ID: id, Err: ErrNotFound}
	}
	rec.cleanup = append(rec.cleanup, fn)
	return nil
}

// OnChange subscribes to overlay state changes. The listener receives an
// Event carrying the changed instance and the full active snapshot.
// The returned function removes the subscription; it is safe to call more
// than once.
func (r *Registry) OnChange(fn func(Event)) (unsubscribe func()) {
	r.mu.Lock()
	key := r.nextSub
	r.nextSub++
	r.listeners[key] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.listeners, key)
		r.mu.Unlock()
	}
}

// ListActive returns a snapshot of all registered overlays in ZOrder
// ascending order. Opening (queued), Open, and Closing instances are
// included; Closed instances are gone.
func (r *Registry) ListActive() []Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listActiveLocked()
}

// Get returns a snapshot of a single overlay
func (r *Registry) Get(id ID) (Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return Instance{}, false
	}
	return rec.inst, true
}

// Len returns the number of registered overlays
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Reset closes every registered overlay with ReasonProgrammatic and removes
// all subscriptions. Intended for test isolation and app shutdown.
func (r *Registry) Reset() {
	r.mu.Lock()
	ids := make([]ID, len(r.order))
	copy(ids, r.order)
	r.mu.Unlock()

	for _, id := range ids {
		_ = r.CloseWith(id, ReasonProgrammatic)
	}

	r.mu.Lock()
	r.listeners = make(map[int]func(Event))
	r.mu.Unlock()
}

// listActiveLocked builds the ordered snapshot. Caller holds r.mu.
func (r *Registry) listActiveLocked() []Instance {
	out := make([]Instance, 0, len(r.order))
	for _, id := range r.order {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec.inst)
		}
	}
	return out
}

// eventLocked builds the change event and copies the listener set.
// Caller holds r.mu; the returned funcs must be invoked after unlocking.
func (r *Registry) eventLocked(inst Instance, reason Reason) (Event, []func(Event)) {
	ev := Event{
		Instance: inst,
		Reason:   reason,
		Active:   r.listActiveLocked(),
	}
	fns := make([]func(Event), 0, len(r.listeners))
	for _, fn := range r.listeners {
		fns = append(fns, fn)
	}
	return ev, fns
}

func notify(fns []func(Event), ev Event) {
	for _, fn := range fns {
		fn(ev)
	}
}

func (r *Registry) removeFromOrderLocked(id ID) {
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
