package host

import (
	"sync"

	"github.com/riordanpawley/canopy/focus"
)

// body is always attached and is the fallback focus target
const body focus.ElementID = "body"

// Document is an in-memory element and focus model implementing
// focus.Surface. It tracks which element handles are attached and where the
// single document focus position sits.
type Document struct {
	mu       sync.RWMutex
	attached map[focus.ElementID]struct{}
	focused  focus.ElementID
}

// NewDocument creates a document containing only the body element, which is
// focused
func NewDocument() *Document {
	return &Document{
		attached: map[focus.ElementID]struct{}{body: {}},
		focused:  body,
	}
}

// Attach registers element handles as part of the document
func (d *Document) Attach(ids ...focus.ElementID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		d.attached[id] = struct{}{}
	}
}

// Detach removes an element handle. If it held focus, focus falls back to
// the body. The body itself cannot be detached.
func (d *Document) Detach(ids ...focus.ElementID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		if id == body {
			continue
		}
		delete(d.attached, id)
		if d.focused == id {
			d.focused = body
		}
	}
}

// Focused returns the element currently holding focus
func (d *Document) Focused() focus.ElementID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.focused
}

// SetFocus moves focus to the given element. Focusing a detached element
// sends focus to the body instead.
func (d *Document) SetFocus(id focus.ElementID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.attached[id]; ok {
		d.focused = id
	} else {
		d.focused = body
	}
}

// IsAttached reports whether the element is part of the document
func (d *Document) IsAttached(id focus.ElementID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.attached[id]
	return ok
}

// Body returns the document body handle
func (d *Document) Body() focus.ElementID {
	return body
}
