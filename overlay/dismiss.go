package overlay

import "go.uber.org/zap"

// CloseWith is the single exit path for every overlay. The three dismissal
// triggers — user action, timer expiry, programmatic close — all land here.
//
// The transition to Closing is atomic under the registry lock: only the
// first trigger to perform it runs teardown. A racing trigger that finds the
// instance already Closing gets a silent nil (the winner is mid-teardown);
// once the instance is Closed and removed, further attempts get ErrNotFound.
// A timer that fires after its overlay was closed by another path is
// therefore a guaranteed no-op; cancelling the timer is best-effort cleanup,
// not a correctness requirement.
//
// Teardown is all-or-nothing: cleanup hooks run in reverse registration
// order, then the entry is removed and marked Closed. A failed close leaves
// the overlay untouched.
func (r *Registry) CloseWith(id ID, reason Reason) error {
	r.mu.Lock()
	rec, ok := r.records[id]
	if !ok {
		r.mu.Unlock()
		return &Error{Op: "close", ID: id, Err: ErrNotFound}
	}
	if rec.inst.State == StateClosing {
		// Lost the race; the winning trigger owns teardown.
		r.mu.Unlock()
		return nil
	}
	rec.inst.State = StateClosing
	hooks := rec.cleanup
	rec.cleanup = nil
	closingEv, closingFns := r.eventLocked(rec.inst, reason)
	r.mu.Unlock()

	r.logger.Debug("overlay closing",
		zap.String("id", string(id)),
		zap.String("reason", string(reason)))
	notify(closingFns, closingEv)

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i](reason)
	}

	r.mu.Lock()
	rec.inst.State = StateClosed
	delete(r.records, id)
	r.removeFromOrderLocked(id)
	closedEv, closedFns := r.eventLocked(rec.inst, reason)
	r.mu.Unlock()

	notify(closedFns, closedEv)
	return nil
}

// Close closes an overlay through the external programmatic path
func (r *Registry) Close(id ID) error {
	return r.CloseWith(id, ReasonProgrammatic)
}
