// Package overlay tracks every overlay currently above normal page flow —
// modal dialogs and transient alerts — in a single ordered registry, and
// funnels all dismissal paths through one exactly-once exit routine.
package overlay

import "time"

// ID uniquely identifies an overlay instance. IDs are never reused.
type ID string

// Kind distinguishes the two overlay families
type Kind string

const (
	KindModal Kind = "modal"
	KindAlert Kind = "alert"
)

// String returns the kind name
func (k Kind) String() string {
	return string(k)
}

// State is the lifecycle state of an overlay instance.
// Transitions only move forward; a Closed instance is never mutated again.
type State string

const (
	StateOpening State = "opening"
	StateOpen    State = "open"
	StateClosing State = "closing"
	StateClosed  State = "closed"
)

// String returns the state name
func (s State) String() string {
	return string(s)
}

// canTransition reports whether a forward step from s to next is legal
func (s State) canTransition(next State) bool {
	switch s {
	case StateOpening:
		return next == StateOpen || next == StateClosing
	case StateOpen:
		return next == StateClosing
	case StateClosing:
		return next == StateClosed
	default:
		return false
	}
}

// Reason describes which trigger closed an overlay
type Reason string

const (
	// ReasonUser is an explicit close action (click, keypress)
	ReasonUser Reason = "user"
	// ReasonTimeout is an auto-dismiss timer expiry
	ReasonTimeout Reason = "timeout"
	// ReasonProgrammatic is an external API close
	ReasonProgrammatic Reason = "programmatic"
)

// Instance is a snapshot of one registered overlay. The registry owns the
// live record; callers only ever see copies.
type Instance struct {
	ID        ID
	Kind      Kind
	CreatedAt time.Time
	ZOrder    int64
	State     State
}

// Event is delivered to OnChange listeners after every state change.
// Active is the ListActive snapshot taken at the moment of the change.
// Reason is set only for Closing/Closed events.
type Event struct {
	Instance Instance
	Reason   Reason
	Active   []Instance
}
