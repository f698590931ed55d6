package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseWith_RunsCleanupExactlyOnce(t *testing.T) {
	r := NewRegistry(nil)

	id, _ := r.Open(KindModal)
	_ = r.MarkOpen(id)

	var order []string
	_ = r.OnCleanup(id, func(Reason) { order = append(order, "first") })
	_ = r.OnCleanup(id, func(Reason) { order = append(order, "second") })

	err := r.CloseWith(id, ReasonUser)
	assert.NoError(t, err, "First close should succeed")
	assert.Equal(t, []string{"second", "first"}, order, "Hooks should run once, in reverse registration order")

	// The instance is gone
	_, ok := r.Get(id)
	assert.False(t, ok, "Closed overlay should be removed from registry")
	assert.Empty(t, r.ListActive(), "ListActive should not include closed overlay")
}

func TestCloseWith_SecondCloseReturnsNotFound(t *testing.T) {
	r := NewRegistry(nil)

	id, _ := r.Open(KindAlert)
	assert.NoError(t, r.CloseWith(id, ReasonTimeout))

	err := r.CloseWith(id, ReasonUser)
	assert.ErrorIs(t, err, ErrNotFound, "Close on a closed id should report not found")
}

func TestCloseWith_UnknownID(t *testing.T) {
	r := NewRegistry(nil)

	err := r.CloseWith("never-issued", ReasonUser)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCloseWith_ReentrantTriggerIsNoOp(t *testing.T) {
	// A close handler that itself invokes another dismissal path before
	// control returns: the second trigger must lose the transition race
	// and produce no side effects.
	r := NewRegistry(nil)

	id, _ := r.Open(KindModal)
	_ = r.MarkOpen(id)

	teardowns := 0
	var reentrantErr error
	reentered := false
	_ = r.OnCleanup(id, func(Reason) {
		teardowns++
		if !reentered {
			reentered = true
			reentrantErr = r.CloseWith(id, ReasonTimeout)
		}
	})

	assert.NoError(t, r.CloseWith(id, ReasonUser))
	assert.Equal(t, 1, teardowns, "Teardown must run exactly once despite reentrant trigger")
	assert.NoError(t, reentrantErr, "Racing trigger against Closing instance is a silent no-op")
}

func TestCloseWith_ReasonReachesHooksAndListeners(t *testing.T) {
	r := NewRegistry(nil)

	id, _ := r.Open(KindAlert)
	_ = r.MarkOpen(id)

	var hookReason Reason
	_ = r.OnCleanup(id, func(reason Reason) { hookReason = reason })

	var states []State
	var reasons []Reason
	r.OnChange(func(ev Event) {
		if ev.Instance.ID == id {
			states = append(states, ev.Instance.State)
			reasons = append(reasons, ev.Reason)
		}
	})

	assert.NoError(t, r.CloseWith(id, ReasonTimeout))

	assert.Equal(t, ReasonTimeout, hookReason)
	assert.Equal(t, []State{StateClosing, StateClosed}, states, "Listeners see Closing then Closed")
	assert.Equal(t, []Reason{ReasonTimeout, ReasonTimeout}, reasons)
}

func TestCloseWith_ClosingVisibleInSnapshotUntilClosed(t *testing.T) {
	r := NewRegistry(nil)

	id, _ := r.Open(KindModal)
	_ = r.MarkOpen(id)

	var closingSnapshot, closedSnapshot []Instance
	r.OnChange(func(ev Event) {
		switch ev.Instance.State {
		case StateClosing:
			closingSnapshot = ev.Active
		case StateClosed:
			closedSnapshot = ev.Active
		}
	})

	assert.NoError(t, r.Close(id))

	if assert.Len(t, closingSnapshot, 1, "Closing instance still listed during teardown") {
		assert.Equal(t, StateClosing, closingSnapshot[0].State)
	}
	assert.Empty(t, closedSnapshot, "Closed instance removed from final snapshot")
}

func TestClose_UsesProgrammaticReason(t *testing.T) {
	r := NewRegistry(nil)

	id, _ := r.Open(KindModal)

	var reason Reason
	_ = r.OnCleanup(id, func(got Reason) { reason = got })

	assert.NoError(t, r.Close(id))
	assert.Equal(t, ReasonProgrammatic, reason)
}

func TestCloseWith_FromOpeningState(t *testing.T) {
	// Waiting alerts are dismissed while still Opening; the exit path must
	// accept them without an intermediate Open state.
	r := NewRegistry(nil)

	id, _ := r.Open(KindAlert)
	assert.NoError(t, r.CloseWith(id, ReasonUser))
	assert.Equal(t, 0, r.Len())
}
