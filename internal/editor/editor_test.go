package editor

import (
	"testing"

	"github.com/codeAlphaBravosite/Notepad2/internal/note"
)

type flagObserver struct {
	canUndo bool
	canRedo bool
}

func (o *flagObserver) HistoryChanged(canUndo, canRedo bool) {
	o.canUndo = canUndo
	o.canRedo = canRedo
}

type editorFixture struct {
	sched    *manualScheduler
	renderer *fakeRenderer
	obs      *flagObserver
	ed       *Editor
	persists int
}

func newEditorFixture(t *testing.T) *editorFixture {
	t.Helper()
	f := &editorFixture{
		sched:    &manualScheduler{},
		renderer: newFakeRenderer(),
		obs:      &flagObserver{},
	}
	f.ed = New(Config{
		Note:     twoToggleNote(),
		Renderer: f.renderer,
		Persist:  func(*note.Note) bool { f.persists++; return true },
		Observer: f.obs,
		Sched:    f.sched,
	})
	return f
}

func TestToggleFlipThroughProtocol(t *testing.T) {
	f := newEditorFixture(t)

	f.ed.RequestToggle(3) // currently closed
	f.sched.fireAll()

	if !f.ed.Note().Toggle(3).IsOpen {
		t.Error("toggle 3 should be open")
	}
	if f.ed.History().Depth() != 1 {
		t.Errorf("depth = %d, want 1 push for the flip", f.ed.History().Depth())
	}
	if f.renderer.region(3) == nil {
		t.Error("opened toggle should be rendered as a region")
	}
	if f.persists != 1 {
		t.Errorf("persists = %d, want 1", f.persists)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	f := newEditorFixture(t)

	f.ed.EditToggleContent(1, "rewritten")
	f.sched.fireAll() // commit the burst

	if !f.obs.canUndo {
		t.Fatal("canUndo should be true after a committed edit")
	}

	if !f.ed.Undo() {
		t.Fatal("undo should succeed")
	}
	f.sched.fireAll() // settle pass
	if got := f.ed.Note().Toggle(1).Content; got != "alpha\nbeta\ngamma" {
		t.Errorf("after undo content = %q", got)
	}
	if !f.obs.canRedo {
		t.Error("canRedo should be true after undo")
	}

	if !f.ed.Redo() {
		t.Fatal("redo should succeed")
	}
	f.sched.fireAll()
	if got := f.ed.Note().Toggle(1).Content; got != "rewritten" {
		t.Errorf("after redo content = %q", got)
	}
	if f.obs.canRedo {
		t.Error("canRedo should be false after redo consumed the stack")
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	f := newEditorFixture(t)

	if f.ed.Undo() {
		t.Error("undo with empty history should report false")
	}
	if f.ed.Reconciler().State() != StateIdle {
		t.Error("declined undo must not hold the guard")
	}
}

func TestDivergingEditClearsRedo(t *testing.T) {
	f := newEditorFixture(t)

	f.ed.EditTitle("v2")
	f.sched.fireAll()
	f.ed.Undo()
	f.sched.fireAll()

	if !f.obs.canRedo {
		t.Fatal("redo should be available")
	}

	f.ed.EditTitle("v3")
	f.sched.fireAll()

	if f.obs.canRedo {
		t.Error("a diverging edit must clear redo history")
	}
}

func TestAddToggleIsStructural(t *testing.T) {
	f := newEditorFixture(t)
	before := len(f.ed.Note().Toggles)

	id := f.ed.AddToggle("new section")
	if id == 0 {
		t.Fatal("add toggle should report the new ID")
	}
	f.sched.fireAll()

	if len(f.ed.Note().Toggles) != before+1 {
		t.Fatalf("toggle count = %d", len(f.ed.Note().Toggles))
	}
	if f.ed.History().Depth() != 1 {
		t.Errorf("add should push immediately, depth = %d", f.ed.History().Depth())
	}
	if f.renderer.region(id) == nil {
		t.Error("new toggle should render open")
	}

	// Undo removes it again
	f.ed.Undo()
	f.sched.fireAll()
	if len(f.ed.Note().Toggles) != before {
		t.Errorf("undo of add left %d toggles", len(f.ed.Note().Toggles))
	}
}

func TestPendingBurstFlushedBeforeToggle(t *testing.T) {
	f := newEditorFixture(t)

	f.ed.EditToggleContent(1, "typed mid-flight")
	f.ed.RequestToggle(2)
	f.sched.fireAll()

	// Two entries: the text burst, then the flip
	if got := f.ed.History().Depth(); got != 2 {
		t.Fatalf("depth = %d, want 2 (burst then flip)", got)
	}

	// First undo reverts the flip, second reverts the text
	f.ed.Undo()
	f.sched.fireAll()
	if !f.ed.Note().Toggle(2).IsOpen {
		t.Error("first undo should revert the flip")
	}
	f.ed.Undo()
	f.sched.fireAll()
	if got := f.ed.Note().Toggle(1).Content; got != "alpha\nbeta\ngamma" {
		t.Errorf("second undo should revert the text, got %q", got)
	}
}

func TestScrollSurvivesToggleFlip(t *testing.T) {
	f := newEditorFixture(t)
	f.renderer.region(1).top = 42
	f.renderer.containerTop = 12

	f.ed.RequestToggle(2)
	f.sched.fireAll()

	if got := f.renderer.region(1).top; got != 42 {
		t.Errorf("region 1 scroll = %d, want 42 preserved across re-render", got)
	}
	if f.renderer.containerTop != 12 {
		t.Errorf("container scroll = %d, want 12", f.renderer.containerTop)
	}
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	sched := &manualScheduler{}
	renderer := newFakeRenderer()
	ed := New(Config{
		Note:     twoToggleNote(),
		Renderer: renderer,
		Persist:  func(*note.Note) bool { return false },
		Sched:    sched,
	})

	ed.EditTitle("still works")
	sched.fireAll()

	if got := ed.Note().Title; got != "still works" {
		t.Errorf("in-memory state must stay authoritative, title = %q", got)
	}
	if ed.History().Depth() != 1 {
		t.Errorf("history push happens before persist, depth = %d", ed.History().Depth())
	}
}

func TestCloseFlushesPendingBurst(t *testing.T) {
	f := newEditorFixture(t)

	f.ed.EditTitle("last words")
	f.ed.Close()

	if f.ed.History().Depth() != 1 {
		t.Errorf("close should commit the pending burst, depth = %d", f.ed.History().Depth())
	}
	if f.persists < 1 {
		t.Error("close should persist the note")
	}
}
