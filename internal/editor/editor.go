// Package editor implements the state synchronization engine for a
// single note editing session: a debounced commit scheduler feeding an
// undo/redo history, and a content-hash-verified scroll restoration
// protocol that survives the full re-renders caused by structural
// edits (toggle open/close, add toggle, undo, redo).
package editor

import (
	"log/slog"
	"time"

	"github.com/codeAlphaBravosite/Notepad2/internal/history"
	"github.com/codeAlphaBravosite/Notepad2/internal/note"
)

// Config wires an editing session.
type Config struct {
	Note     *note.Note
	Renderer Renderer
	// Persist writes the note to storage, reporting false on failure.
	// Failures are warnings: the in-memory note stays authoritative.
	Persist  func(*note.Note) bool
	Observer history.Observer
	Sched    Scheduler
	Logger   *slog.Logger

	CommitWindow   time.Duration
	ToggleDebounce time.Duration
	SettleDelay    time.Duration
}

// Editor owns one note for the duration of an editing session and
// coordinates text commits, structural mutations, undo/redo, and
// viewport restoration. All entry points are driven from a single
// cooperative loop; deferred work goes through the Scheduler.
type Editor struct {
	note     *note.Note
	hist     *history.History
	commit   *CommitScheduler
	rec      *Reconciler
	tracker  *ScrollTracker
	renderer Renderer
	persist  func(*note.Note) bool
	logger   *slog.Logger
}

// New creates an editing session and performs the initial render.
func New(cfg Config) *Editor {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Sched == nil {
		cfg.Sched = TimerScheduler{}
	}
	if cfg.Persist == nil {
		cfg.Persist = func(*note.Note) bool { return true }
	}

	e := &Editor{
		note:     cfg.Note,
		hist:     history.New(cfg.Observer),
		tracker:  NewScrollTracker(cfg.Logger),
		renderer: cfg.Renderer,
		persist:  cfg.Persist,
		logger:   cfg.Logger,
	}
	e.commit = NewCommitScheduler(cfg.CommitWindow, cfg.Sched, e.hist, e.Note, e.persistNote, cfg.Logger)
	e.rec = NewReconciler(ReconcilerConfig{
		Debounce: cfg.ToggleDebounce,
		Settle:   cfg.SettleDelay,
		Sched:    cfg.Sched,
		Tracker:  e.tracker,
		Renderer: cfg.Renderer,
		OnToggle: e.applyToggle,
		Logger:   cfg.Logger,
	})

	e.renderer.RenderToggleList(e.note)
	return e
}

// Note returns the live note. The session owns it exclusively.
func (e *Editor) Note() *note.Note { return e.note }

// History exposes the undo/redo stacks, mainly for tests.
func (e *Editor) History() *history.History { return e.hist }

// Reconciler exposes the toggle state machine, mainly for tests.
func (e *Editor) Reconciler() *Reconciler { return e.rec }

// EditTitle applies a debounced title edit.
func (e *Editor) EditTitle(title string) {
	e.commit.Edit(func(n *note.Note) { n.Title = title })
}

// EditToggleTitle applies a debounced edit to a toggle's header.
func (e *Editor) EditToggleTitle(toggleID int64, title string) {
	e.commit.Edit(func(n *note.Note) {
		if t := n.Toggle(toggleID); t != nil {
			t.Title = title
		}
	})
}

// EditToggleContent applies a debounced edit to a toggle's body.
func (e *Editor) EditToggleContent(toggleID int64, content string) {
	e.commit.Edit(func(n *note.Note) {
		if t := n.Toggle(toggleID); t != nil {
			t.Content = content
		}
	})
}

// RequestToggle asks the reconciler to flip a toggle open or closed.
func (e *Editor) RequestToggle(toggleID int64) {
	e.rec.RequestToggle(toggleID)
}

// AddToggle appends a new toggle. Structural: committed immediately
// through the full reconciliation protocol, not debounced. Returns the
// new toggle's ID, or 0 if the mutation was dropped (reconciliation in
// flight).
func (e *Editor) AddToggle(title string) int64 {
	var id int64
	e.rec.Reconcile(func() bool {
		e.commit.Flush()
		pre := e.note.Clone()
		t := e.note.AddToggle(title)
		t.IsOpen = true
		id = t.ID
		e.hist.Push(pre)
		e.persistNote(e.note)
		e.renderer.RenderToggleList(e.note)
		return true
	})
	return id
}

// Undo steps back one history entry, re-rendering and restoring
// viewport state around the swap. Returns false when there is nothing
// to undo or a reconciliation is in flight.
func (e *Editor) Undo() bool {
	return e.restoreFromHistory(e.hist.Undo)
}

// Redo steps forward one history entry.
func (e *Editor) Redo() bool {
	return e.restoreFromHistory(e.hist.Redo)
}

func (e *Editor) restoreFromHistory(swap func(*note.Note) *note.Note) bool {
	applied := false
	e.rec.Reconcile(func() bool {
		// A pending burst becomes its own entry first so the swap
		// operates on fully committed state.
		e.commit.Flush()
		snap := swap(e.note.Clone())
		if snap == nil {
			return false
		}
		e.note = snap
		e.persistNote(e.note)
		e.renderer.RenderToggleList(e.note)
		applied = true
		return true
	})
	return applied
}

// Flush commits any pending text burst immediately.
func (e *Editor) Flush() { e.commit.Flush() }

// Close flushes pending work and stops all timers. The note is
// persisted one final time.
func (e *Editor) Close() {
	e.commit.Flush()
	e.rec.Stop()
	e.persistNote(e.note)
}

// applyToggle is the reconciler's mutation: flip, push pre-state,
// persist, re-render. Reports false if the toggle no longer exists
// (validation failure, non-fatal).
func (e *Editor) applyToggle(toggleID int64) bool {
	e.commit.Flush()
	t := e.note.Toggle(toggleID)
	if t == nil {
		e.logger.Debug("toggle vanished before reconciliation", "toggle", toggleID)
		return false
	}
	pre := e.note.Clone()
	t.IsOpen = !t.IsOpen
	e.hist.Push(pre)
	e.persistNote(e.note)
	e.renderer.RenderToggleList(e.note)
	return true
}

func (e *Editor) persistNote(n *note.Note) bool {
	n.Touch()
	if !e.persist(n) {
		e.logger.Warn("persist failed, keeping in-memory state", "note", n.ID)
		return false
	}
	return true
}
