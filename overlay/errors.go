package overlay

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrInvalidTransition = errors.New("invalid transition")
)

// Error wraps a registry failure with the operation and instance it concerns
type Error struct {
	Op  string // Operation: "open", "close", "mark-open", etc.
	ID  ID     // Optional: specific overlay ID
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("overlay %s [%s]: %v", e.Op, e.ID, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("overlay %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("overlay %s failed", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}
