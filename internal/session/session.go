// Package session persists per-note viewport state across editor
// open/close boundaries, so reopening a note lands where the user
// left it. Entries age out after a retention window.
package session

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/codeAlphaBravosite/Notepad2/internal/editor"
	"github.com/codeAlphaBravosite/Notepad2/internal/store"
)

const (
	// stateKey is the single kv entry holding all per-note view states.
	stateKey = "session-view-states"

	// DefaultRetention ages out view state for notes untouched this long.
	DefaultRetention = 7 * 24 * time.Hour
)

// ToggleViewState is one region's remembered viewport position.
type ToggleViewState struct {
	ID           int64 `json:"id"`
	ScrollTop    int   `json:"scrollTop"`
	ScrollHeight int   `json:"scrollHeight"`
	SelStart     int   `json:"selectionStart"`
	SelEnd       int   `json:"selectionEnd"`
}

// ViewState is everything needed to put the editor back where it was.
type ViewState struct {
	Toggles            []ToggleViewState `json:"toggleStates"`
	ContainerScrollTop int               `json:"containerScrollTop"`
	LastActiveToggle   int64             `json:"lastActiveToggleId"`
	Timestamp          time.Time         `json:"timestamp"`
}

// Store maps note IDs to their last-known ViewState through the
// key-value collaborator. JSON object keys must be strings, so note
// IDs are stored in decimal.
type Store struct {
	kv        store.Store
	sched     editor.Scheduler
	settle    time.Duration
	retention time.Duration
	logger    *slog.Logger
}

// New creates a session store. sched drives the second restoration
// pass; nil falls back to real timers. retention bounds how long view
// state outlives its last save; <= 0 means DefaultRetention.
func New(kv store.Store, sched editor.Scheduler, retention time.Duration, logger *slog.Logger) *Store {
	if sched == nil {
		sched = editor.TimerScheduler{}
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:        kv,
		sched:     sched,
		settle:    editor.DefaultSettleDelay,
		retention: retention,
		logger:    logger,
	}
}

func (s *Store) load() map[string]ViewState {
	states := map[string]ViewState{}
	s.kv.Get(stateKey, &states)
	return states
}

// Capture reads the current viewport state from a freshly rendered
// editor, for handing to OnEditorClose.
func Capture(r editor.Renderer, lastActive int64) ViewState {
	vs := ViewState{
		ContainerScrollTop: r.ContainerScrollTop(),
		LastActiveToggle:   lastActive,
		Timestamp:          time.Now(),
	}
	for _, id := range r.RegionIDs() {
		reg, ok := r.FindRegion(id)
		if !ok {
			continue
		}
		start, end := reg.Selection()
		vs.Toggles = append(vs.Toggles, ToggleViewState{
			ID:           id,
			ScrollTop:    reg.ScrollTop(),
			ScrollHeight: reg.ScrollHeight(),
			SelStart:     start,
			SelEnd:       end,
		})
	}
	return vs
}

// OnEditorOpen applies the stored view state for noteID, if any,
// through the same two-pass hash-verified restoration protocol used
// for reconciliation. The content hash is taken from the freshly
// rendered regions at open time, so the settle pass still detects
// content that changes between the passes.
func (s *Store) OnEditorOpen(noteID int64, r editor.Renderer) {
	vs, ok := s.load()[strconv.FormatInt(noteID, 10)]
	if !ok {
		return
	}

	captured := make(map[int64]editor.RegionState, len(vs.Toggles))
	for _, t := range vs.Toggles {
		reg, found := r.FindRegion(t.ID)
		if !found {
			continue
		}
		captured[t.ID] = editor.RegionState{
			ScrollTop:    t.ScrollTop,
			ScrollHeight: t.ScrollHeight,
			SelStart:     t.SelStart,
			SelEnd:       t.SelEnd,
			Focused:      t.ID == vs.LastActiveToggle,
			ContentHash:  editor.ContentHash(reg.TextContent()),
		}
	}

	tracker := editor.NewScrollTracker(s.logger)
	r.SetContainerScrollTop(vs.ContainerScrollTop)
	tracker.Restore(r, captured)
	s.sched.After(s.settle, func() {
		tracker.Restore(r, captured)
	})
}

// OnEditorClose stores vs under noteID with a fresh timestamp, fully
// overwriting any prior entry.
func (s *Store) OnEditorClose(noteID int64, vs ViewState) {
	states := s.load()
	vs.Timestamp = time.Now()
	states[strconv.FormatInt(noteID, 10)] = vs
	if !s.kv.Set(stateKey, states) {
		s.logger.Warn("session: view state not persisted", "note", noteID)
	}
}

// Prune drops entries older than the retention window. Run
// opportunistically at session start, not on a schedule.
func (s *Store) Prune() {
	states := s.load()
	cutoff := time.Now().Add(-s.retention)
	changed := false
	for id, vs := range states {
		if vs.Timestamp.Before(cutoff) {
			delete(states, id)
			changed = true
		}
	}
	if changed {
		s.kv.Set(stateKey, states)
	}
}
