package focus

import (
	"fmt"

	"go.uber.org/zap"
)

// Stack manages nested focus traps for one document. Each modal activation
// pushes a trap; only the top of the stack intercepts traversal. Popping
// restores focus into the next modal down, and the original page focus is
// reached only once the stack has fully emptied, because each trap restores
// the target it captured at activation.
type Stack struct {
	traps  []*Trap
	logger *zap.Logger
}

// NewStack creates an empty trap stack.
// A nil logger disables logging.
func NewStack(logger *zap.Logger) *Stack {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stack{logger: logger}
}

// Push activates a trap and makes it the interception target
func (s *Stack) Push(t *Trap) error {
	if err := t.Activate(); err != nil {
		return err
	}
	s.traps = append(s.traps, t)
	s.logger.Debug("focus trap pushed",
		zap.String("owner", t.owner),
		zap.Int("depth", len(s.traps)))
	return nil
}

// Pop releases the top trap. If traps remain, the next one down is left
// trapping.
func (s *Stack) Pop() error {
	if len(s.traps) == 0 {
		return fmt.Errorf("pop empty trap stack: %w", ErrPhase)
	}

	top := s.traps[len(s.traps)-1]
	s.traps = s.traps[:len(s.traps)-1]
	s.logger.Debug("focus trap popped",
		zap.String("owner", top.owner),
		zap.Int("depth", len(s.traps)))
	return top.Release()
}

// Release removes the trap with the given owner wherever it sits in the
// stack. The top trap is released normally. A buried trap is removed without
// touching the surface; its restore target is handed to the trap directly
// above it, whose own captured target is about to detach along with the
// closing modal.
func (s *Stack) Release(owner string) error {
	for i := len(s.traps) - 1; i >= 0; i-- {
		if s.traps[i].owner != owner {
			continue
		}
		if i == len(s.traps)-1 {
			return s.Pop()
		}

		buried := s.traps[i]
		s.traps[i+1].restore = buried.restore
		s.traps = append(s.traps[:i], s.traps[i+1:]...)
		buried.deactivate()
		s.logger.Debug("buried focus trap removed", zap.String("owner", owner))
		return nil
	}
	return fmt.Errorf("release trap %s: %w", owner, ErrPhase)
}

// Top returns the trap currently intercepting traversal, or nil
func (s *Stack) Top() *Trap {
	if len(s.traps) == 0 {
		return nil
	}
	return s.traps[len(s.traps)-1]
}

// Next forwards tab traversal to the top trap, if any
func (s *Stack) Next() {
	if top := s.Top(); top != nil {
		top.Next()
	}
}

// Prev forwards shift-tab traversal to the top trap, if any
func (s *Stack) Prev() {
	if top := s.Top(); top != nil {
		top.Prev()
	}
}

// Len returns the number of active traps
func (s *Stack) Len() int {
	return len(s.traps)
}

// IsEmpty returns true if no traps are active
func (s *Stack) IsEmpty() bool {
	return len(s.traps) == 0
}
