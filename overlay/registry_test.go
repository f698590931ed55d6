package overlay

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegistryOpen_AssignsIncreasingZOrder(t *testing.T) {
	r := NewRegistry(nil)

	var ids []ID
	for i := 0; i < 5; i++ {
		id, err := r.Open(KindModal)
		if err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
		ids = append(ids, id)
	}

	active := r.ListActive()
	if len(active) != 5 {
		t.Fatalf("Expected 5 active overlays, got %d", len(active))
	}

	for i, inst := range active {
		if inst.ID != ids[i] {
			t.Errorf("Position %d: expected id %s, got %s", i, ids[i], inst.ID)
		}
		if i > 0 && active[i].ZOrder <= active[i-1].ZOrder {
			t.Errorf("ZOrder not strictly increasing at position %d: %d <= %d",
				i, active[i].ZOrder, active[i-1].ZOrder)
		}
	}
}

func TestRegistryOpen_GeneratesUniqueIDs(t *testing.T) {
	r := NewRegistry(nil)

	seen := make(map[ID]bool)
	for i := 0; i < 20; i++ {
		id, err := r.Open(KindAlert)
		if err != nil {
			t.Fatalf("Open returned error: %v", err)
		}
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestRegistryOpen_DuplicateCallerID(t *testing.T) {
	r := NewRegistry(nil)

	if _, err := r.Open(KindModal, WithID("custom-1")); err != nil {
		t.Fatalf("First Open with caller id failed: %v", err)
	}

	_, err := r.Open(KindModal, WithID("custom-1"))
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}

	// Registry unchanged
	if r.Len() != 1 {
		t.Errorf("Expected 1 overlay after duplicate rejection, got %d", r.Len())
	}
}

func TestRegistryMarkOpen(t *testing.T) {
	r := NewRegistry(nil)

	id, _ := r.Open(KindModal)
	if err := r.MarkOpen(id); err != nil {
		t.Fatalf("MarkOpen failed: %v", err)
	}

	inst, ok := r.Get(id)
	if !ok {
		t.Fatal("Get returned false for open overlay")
	}
	if inst.State != StateOpen {
		t.Errorf("Expected state %s, got %s", StateOpen, inst.State)
	}

	// Second MarkOpen is an invalid transition
	err := r.MarkOpen(id)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition, got %v", err)
	}
}

func TestRegistryMarkOpen_UnknownID(t *testing.T) {
	r := NewRegistry(nil)

	err := r.MarkOpen("never-issued")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRegistryMarkOpen_LogsInvalidTransition(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	r := NewRegistry(zap.New(core))

	id, _ := r.Open(KindModal)
	_ = r.MarkOpen(id)
	_ = r.MarkOpen(id)

	entries := logs.FilterMessage("invalid transition").All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 warning log, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["from"]; got != "open" {
		t.Errorf("Expected from=open in log context, got %v", got)
	}
}

func TestRegistryOnChange_DeliversSnapshots(t *testing.T) {
	r := NewRegistry(nil)

	var events []Event
	unsub := r.OnChange(func(ev Event) {
		events = append(events, ev)
	})
	defer unsub()

	id, _ := r.Open(KindModal)
	_ = r.MarkOpen(id)

	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Instance.State != StateOpening {
		t.Errorf("First event state = %s, want %s", events[0].Instance.State, StateOpening)
	}
	if events[1].Instance.State != StateOpen {
		t.Errorf("Second event state = %s, want %s", events[1].Instance.State, StateOpen)
	}

	// Snapshot matches ListActive at notification time
	if len(events[1].Active) != 1 || events[1].Active[0].State != StateOpen {
		t.Errorf("Event snapshot inconsistent with change: %+v", events[1].Active)
	}
}

func TestRegistryOnChange_Unsubscribe(t *testing.T) {
	r := NewRegistry(nil)

	count := 0
	unsub := r.OnChange(func(Event) { count++ })

	_, _ = r.Open(KindAlert)
	unsub()
	_, _ = r.Open(KindAlert)

	if count != 1 {
		t.Errorf("Expected 1 notification after unsubscribe, got %d", count)
	}

	// Unsubscribing twice is safe
	unsub()
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry(nil)

	cleanups := 0
	for i := 0; i < 3; i++ {
		id, _ := r.Open(KindAlert)
		_ = r.OnCleanup(id, func(Reason) { cleanups++ })
	}

	notified := false
	r.OnChange(func(Event) { notified = true })

	r.Reset()

	if r.Len() != 0 {
		t.Errorf("Expected empty registry after Reset, got %d entries", r.Len())
	}
	if cleanups != 3 {
		t.Errorf("Expected 3 cleanup invocations, got %d", cleanups)
	}
	if !notified {
		t.Error("Reset should notify listeners while closing")
	}

	// Subscriptions are cleared
	notified = false
	_, _ = r.Open(KindAlert)
	if notified {
		t.Error("Listener fired after Reset cleared subscriptions")
	}
}

func TestRegistryOnCleanup_UnknownID(t *testing.T) {
	r := NewRegistry(nil)

	err := r.OnCleanup("never-issued", func(Reason) {})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRegistryGet_Missing(t *testing.T) {
	r := NewRegistry(nil)

	if _, ok := r.Get("nope"); ok {
		t.Error("Get should return false for unknown id")
	}
}
