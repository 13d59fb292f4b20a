package history

import (
	"testing"

	"github.com/codeAlphaBravosite/Notepad2/internal/note"
)

type recordingObserver struct {
	calls   int
	canUndo bool
	canRedo bool
}

func (o *recordingObserver) HistoryChanged(canUndo, canRedo bool) {
	o.calls++
	o.canUndo = canUndo
	o.canRedo = canRedo
}

func titled(title string) *note.Note {
	n := note.New(title)
	return n
}

func TestUndoRedoInverse(t *testing.T) {
	h := New(nil)

	a := titled("A")
	b := titled("B")

	h.Push(a)

	got := h.Undo(b)
	if got != a {
		t.Fatalf("Undo returned %v, want snapshot A", got)
	}
	if !h.CanRedo() {
		t.Fatal("CanRedo should be true after undo")
	}

	back := h.Redo(a)
	if back != b {
		t.Fatalf("Redo returned %v, want snapshot B", back)
	}
	if !h.CanUndo() {
		t.Fatal("CanUndo should be true after redo")
	}
	if h.CanRedo() {
		t.Fatal("CanRedo should be false after redo consumed the stack")
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := New(nil)

	h.Push(titled("A"))
	if h.Undo(titled("B")) == nil {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("redo entry should exist after undo")
	}

	// Diverging edit invalidates forward history
	h.Push(titled("C"))
	if h.CanRedo() {
		t.Error("CanRedo should be false after a diverging push")
	}
}

func TestEmptyStackNoOp(t *testing.T) {
	h := New(nil)

	if got := h.Undo(titled("cur")); got != nil {
		t.Errorf("Undo on empty stack = %v, want nil", got)
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("both stacks should remain empty")
	}
	if got := h.Redo(titled("cur")); got != nil {
		t.Errorf("Redo on empty stack = %v, want nil", got)
	}
}

func TestClear(t *testing.T) {
	h := New(nil)
	h.Push(titled("A"))
	h.Push(titled("B"))
	h.Undo(titled("C"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear should empty both stacks")
	}
}

func TestObserverNotifiedOnEveryMutatingCall(t *testing.T) {
	obs := &recordingObserver{}
	h := New(obs)

	h.Push(titled("A"))
	if obs.calls != 1 || !obs.canUndo || obs.canRedo {
		t.Errorf("after push: calls=%d canUndo=%v canRedo=%v", obs.calls, obs.canUndo, obs.canRedo)
	}

	h.Undo(titled("B"))
	if obs.calls != 2 || obs.canUndo || !obs.canRedo {
		t.Errorf("after undo: calls=%d canUndo=%v canRedo=%v", obs.calls, obs.canUndo, obs.canRedo)
	}

	// No-op clear on already-touched stacks still notifies: the
	// notification policy is always-fire, consistently.
	h.Clear()
	h.Clear()
	if obs.calls != 4 {
		t.Errorf("clear should notify even when a no-op, calls=%d", obs.calls)
	}
}

func TestUndoOrdering(t *testing.T) {
	h := New(nil)
	a, b, c := titled("A"), titled("B"), titled("C")

	h.Push(a)
	h.Push(b)

	if got := h.Undo(c); got != b {
		t.Fatalf("first undo = %v, want most recent push", got)
	}
	if got := h.Undo(b); got != a {
		t.Fatalf("second undo = %v, want first push", got)
	}
}
