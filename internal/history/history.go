// Package history implements the undo/redo bookkeeping for note
// snapshots. The manager never snapshots on its own: callers pass the
// pre-mutation state into Push and the about-to-be-replaced state into
// Undo/Redo, which keeps it free of rendering dependencies.
package history

import "github.com/codeAlphaBravosite/Notepad2/internal/note"

// Observer receives stack-state notifications. A single subscriber is
// sufficient; it is invoked once after every mutating call, including
// calls that leave the stacks unchanged.
type Observer interface {
	HistoryChanged(canUndo, canRedo bool)
}

// History holds the undo and redo stacks. Depth is unbounded: this is
// a single-session editor and histories stay small in practice.
type History struct {
	undo []*note.Note
	redo []*note.Note
	obs  Observer
}

// New creates a History. obs may be nil.
func New(obs Observer) *History {
	return &History{obs: obs}
}

// Push appends snap to the undo stack and clears the redo stack: a
// diverging edit invalidates all forward history.
func (h *History) Push(snap *note.Note) {
	h.undo = append(h.undo, snap)
	h.redo = h.redo[:0]
	h.notify()
}

// Undo pops the most recent undo snapshot and returns it, pushing
// current onto the redo stack. Returns nil with no state change when
// the undo stack is empty.
func (h *History) Undo(current *note.Note) *note.Note {
	if len(h.undo) == 0 {
		h.notify()
		return nil
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	h.notify()
	return prev
}

// Redo is the symmetric inverse of Undo.
func (h *History) Redo(current *note.Note) *note.Note {
	if len(h.redo) == 0 {
		h.notify()
		return nil
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	h.notify()
	return next
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.notify()
}

// CanUndo reports whether an undo snapshot is available. Derived, not
// stored.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the undo stack depth. Used by tests and diagnostics.
func (h *History) Depth() int { return len(h.undo) }

func (h *History) notify() {
	if h.obs != nil {
		h.obs.HistoryChanged(h.CanUndo(), h.CanRedo())
	}
}
