// Package history provides linear undo/redo over whole custom-collection
// snapshots. New mutations always clear the redo branch; there is no
// history branching.
package history

import "github.com/rajatvarna/PromptDB/pkg/library"

// Saver persists the present collection after each state transition.
// Save failures are reported to the caller but never roll back the
// in-memory state already committed.
type Saver interface {
	SaveLibrary(library.Collection) error
}

// History holds the undo/redo stacks around the present collection.
// past keeps older states most-recent last; future keeps undone states
// most-recent-undo first.
type History struct {
	past    []library.Collection
	present library.Collection
	future  []library.Collection
	saver   Saver
}

// New starts a history at the given present state, typically the
// collection loaded from the durable store.
func New(present library.Collection, saver Saver) *History {
	return &History{present: present, saver: saver}
}

// Present returns the current collection state.
func (h *History) Present() library.Collection {
	return h.present
}

// CanUndo reports whether an older state exists.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether an undone state exists.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Depth returns the undo and redo stack sizes.
func (h *History) Depth() (undo, redo int) {
	return len(h.past), len(h.future)
}

// Apply commits a new collection value produced by a store mutation:
// the present moves onto the past stack, next becomes present, and the
// entire redo branch is invalidated. The returned error, if any, is a
// persistence warning from the saver.
func (h *History) Apply(next library.Collection) error {
	h.past = append(h.past, h.present)
	h.present = next
	h.future = nil
	return h.save()
}

// Undo steps back one state. With no past states it is a no-op and
// returns nil without touching the durable store.
func (h *History) Undo() error {
	if len(h.past) == 0 {
		return nil
	}
	last := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]library.Collection{h.present}, h.future...)
	h.present = last
	return h.save()
}

// Redo re-applies the most recently undone state. With no future states
// it is a no-op and returns nil without touching the durable store.
func (h *History) Redo() error {
	if len(h.future) == 0 {
		return nil
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, h.present)
	h.present = next
	return h.save()
}

func (h *History) save() error {
	if h.saver == nil {
		return nil
	}
	return h.saver.SaveLibrary(h.present)
}
