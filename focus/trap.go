package focus

import "fmt"

// Trap is a per-modal focus trap. While trapping, forward/backward traversal
// wraps cyclically at the boundary edges so focus can never escape the modal.
type Trap struct {
	owner    string
	surface  Surface
	boundary Boundary
	phase    Phase
	restore  ElementID
}

// NewTrap creates an inactive trap for one modal. The owner string keys the
// trap on a Stack; callers typically pass the modal's overlay id.
func NewTrap(owner string, surface Surface, boundary Boundary) *Trap {
	return &Trap{
		owner:    owner,
		surface:  surface,
		boundary: boundary,
		phase:    PhaseInactive,
	}
}

// Owner returns the trap's owner key
func (t *Trap) Owner() string {
	return t.owner
}

// Phase returns the current lifecycle phase
func (t *Trap) Phase() Phase {
	return t.phase
}

// Activate captures the current focus as the restore target and moves focus
// into the boundary: the first focusable descendant, or the root container
// when the boundary has none.
func (t *Trap) Activate() error {
	if t.phase != PhaseInactive {
		return fmt.Errorf("activate trap %s in phase %s: %w", t.owner, t.phase, ErrPhase)
	}

	t.phase = PhaseCapturing
	t.restore = t.surface.Focused()

	if len(t.boundary.Elements) > 0 {
		t.surface.SetFocus(t.boundary.Elements[0])
	} else {
		t.surface.SetFocus(t.boundary.Root)
	}

	t.phase = PhaseTrapping
	return nil
}

// Next moves focus to the following focusable descendant, wrapping from the
// last back to the first. No-op unless the trap is trapping.
func (t *Trap) Next() {
	t.step(1)
}

// Prev moves focus to the preceding focusable descendant, wrapping from the
// first back to the last. No-op unless the trap is trapping.
func (t *Trap) Prev() {
	t.step(-1)
}

func (t *Trap) step(delta int) {
	if t.phase != PhaseTrapping {
		return
	}

	n := len(t.boundary.Elements)
	if n == 0 {
		t.surface.SetFocus(t.boundary.Root)
		return
	}

	cur := t.surface.Focused()
	idx := -1
	for i, el := range t.boundary.Elements {
		if el == cur {
			idx = i
			break
		}
	}
	if idx == -1 {
		// Focus drifted outside the boundary; pull it back in.
		t.surface.SetFocus(t.boundary.Elements[0])
		return
	}

	idx = (idx + delta + n) % n
	t.surface.SetFocus(t.boundary.Elements[idx])
}

// Release restores focus to the captured restore target if it is still
// attached to the document, falling back to the document body otherwise.
func (t *Trap) Release() error {
	if t.phase != PhaseTrapping {
		return fmt.Errorf("release trap %s in phase %s: %w", t.owner, t.phase, ErrPhase)
	}

	t.phase = PhaseReleasing
	if t.restore != "" && t.surface.IsAttached(t.restore) {
		t.surface.SetFocus(t.restore)
	} else {
		t.surface.SetFocus(t.surface.Body())
	}

	t.phase = PhaseInactive
	t.restore = ""
	return nil
}

// deactivate marks a buried trap inactive without touching the surface.
// Used when a modal closes underneath another modal.
func (t *Trap) deactivate() {
	t.phase = PhaseInactive
	t.restore = ""
}
