// Package focus constrains keyboard focus to a modal's subtree while it is
// open, and restores the previously focused element on close. Nested modals
// stack their traps; only the top of the stack intercepts traversal.
package focus

import "errors"

// ElementID is a handle to a focusable element on the host surface.
// Liveness is checked explicitly through the Surface rather than relying on
// garbage-collector semantics.
type ElementID string

// Surface is the host focus model a trap operates against: a single document
// focus position plus attachment checks for restore targets.
type Surface interface {
	// Focused returns the currently focused element
	Focused() ElementID
	// SetFocus moves focus to the given element
	SetFocus(id ElementID)
	// IsAttached reports whether the element is still part of the document
	IsAttached(id ElementID) bool
	// Body returns the fallback focus target when nothing else is attached
	Body() ElementID
}

// Phase is the per-trap lifecycle phase
type Phase string

const (
	PhaseInactive  Phase = "inactive"
	PhaseCapturing Phase = "capturing"
	PhaseTrapping  Phase = "trapping"
	PhaseReleasing Phase = "releasing"
)

// Boundary describes the focusable region of one modal: the ordered set of
// focusable descendants, and the root container to fall back on when the
// set is empty.
type Boundary struct {
	Root     ElementID
	Elements []ElementID
}

// ErrPhase indicates a trap operation in the wrong lifecycle phase
var ErrPhase = errors.New("wrong trap phase")
