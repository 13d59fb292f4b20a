// Package notebook manages the collection of notes behind the editor:
// list, create, delete, search, and JSON export/import. Persistence
// goes through the same blind key-value store as the rest of the app.
package notebook

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/codeAlphaBravosite/Notepad2/internal/note"
	"github.com/codeAlphaBravosite/Notepad2/internal/store"
)

// notesKey is the kv entry holding the full note collection.
const notesKey = "notes"

// Manager owns the note collection. It is not safe for concurrent use;
// the application drives it from a single update loop.
type Manager struct {
	kv     store.Store
	notes  []note.Note
	logger *slog.Logger
}

// NewManager loads the collection from kv. A missing or corrupt entry
// starts an empty notebook rather than failing.
func NewManager(kv store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{kv: kv, logger: logger}
	m.kv.Get(notesKey, &m.notes)
	return m
}

// Reload re-reads the collection from the store, discarding the
// in-memory copy. Used when a watcher reports an external change.
func (m *Manager) Reload() {
	m.notes = nil
	m.kv.Get(notesKey, &m.notes)
}

func (m *Manager) save() bool {
	if !m.kv.Set(notesKey, m.notes) {
		m.logger.Warn("notebook: collection not persisted")
		return false
	}
	return true
}

func (m *Manager) takenIDs() map[int64]bool {
	taken := make(map[int64]bool, len(m.notes))
	for _, n := range m.notes {
		taken[n.ID] = true
	}
	return taken
}

// List returns the notes most recently updated first. The returned
// slice is fresh but the elements share toggle storage with the
// manager; callers that mutate must go through SaveNote with a clone.
func (m *Manager) List() []note.Note {
	out := make([]note.Note, len(m.notes))
	copy(out, m.notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Updated.After(out[j].Updated)
	})
	return out
}

// Len reports the number of notes.
func (m *Manager) Len() int { return len(m.notes) }

// Get returns a deep copy of the note with the given ID, so an editing
// session can mutate freely without touching the stored collection.
func (m *Manager) Get(id int64) (*note.Note, bool) {
	for i := range m.notes {
		if m.notes[i].ID == id {
			return m.notes[i].Clone(), true
		}
	}
	return nil, false
}

// Create adds an empty note and returns a working copy of it.
func (m *Manager) Create(title string) *note.Note {
	n := note.New(title)
	n.ID = note.AllocateID(m.takenIDs())
	m.notes = append(m.notes, *n.Clone())
	m.save()
	return n
}

// SaveNote writes the note back into the collection, replacing the
// stored version. Unknown IDs are appended, which makes save-after-
// external-delete resurrect the note instead of losing the edit.
func (m *Manager) SaveNote(n *note.Note) bool {
	stored := *n.Clone()
	for i := range m.notes {
		if m.notes[i].ID == n.ID {
			m.notes[i] = stored
			return m.save()
		}
	}
	m.notes = append(m.notes, stored)
	return m.save()
}

// Delete removes the note with the given ID, reporting whether it
// existed.
func (m *Manager) Delete(id int64) bool {
	for i := range m.notes {
		if m.notes[i].ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			m.save()
			return true
		}
	}
	return false
}

// Filter returns notes whose title, toggle titles, or toggle content
// contain the query, case-insensitively. An empty query returns the
// full list.
func (m *Manager) Filter(query string) []note.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.List()
	}
	var out []note.Note
	for _, n := range m.List() {
		if noteMatches(&n, query) {
			out = append(out, n)
		}
	}
	return out
}

func noteMatches(n *note.Note, query string) bool {
	if strings.Contains(strings.ToLower(n.Title), query) {
		return true
	}
	for _, t := range n.Toggles {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Content), query) {
			return true
		}
	}
	return false
}

// Export serializes one note as indented JSON.
func (m *Manager) Export(id int64) ([]byte, error) {
	n, ok := m.Get(id)
	if !ok {
		return nil, fmt.Errorf("export: note %d not found", id)
	}
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// ExportToFile writes the note's JSON export to path.
func (m *Manager) ExportToFile(id int64, path string) error {
	data, err := m.Export(id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Import parses an exported note, validates its shape, and adds it to
// the collection. Colliding note or toggle IDs get fresh ones, so
// importing a note back into the notebook it came from duplicates it
// instead of clobbering the original.
func (m *Manager) Import(data []byte) (*note.Note, error) {
	var n note.Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	if err := validate(&n); err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	taken := m.takenIDs()
	if n.ID == 0 || taken[n.ID] {
		n.ID = note.AllocateID(taken)
	}
	taken[n.ID] = true

	toggleIDs := make(map[int64]bool, len(n.Toggles))
	for i := range n.Toggles {
		t := &n.Toggles[i]
		if t.ID == 0 || toggleIDs[t.ID] {
			t.ID = note.AllocateID(toggleIDs)
		}
		toggleIDs[t.ID] = true
	}

	now := time.Now()
	if n.Created.IsZero() {
		n.Created = now
	}
	n.Updated = now

	m.notes = append(m.notes, *n.Clone())
	m.save()
	return &n, nil
}

func validate(n *note.Note) error {
	if strings.TrimSpace(n.Title) == "" && len(n.Toggles) == 0 {
		return fmt.Errorf("empty note")
	}
	return nil
}
