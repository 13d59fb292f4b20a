package notebook

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/codeAlphaBravosite/Notepad2/internal/note"
	"github.com/codeAlphaBravosite/Notepad2/internal/store"
)

func newTestManager(t *testing.T) (*Manager, store.Store) {
	t.Helper()
	kv, err := store.NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewManager(kv, nil), kv
}

func TestCreateAndReloadFromStore(t *testing.T) {
	m, kv := newTestManager(t)

	n := m.Create("groceries")
	if n.ID == 0 {
		t.Fatal("created note has no ID")
	}

	fresh := NewManager(kv, nil)
	got, ok := fresh.Get(n.ID)
	if !ok {
		t.Fatal("note not persisted across managers")
	}
	if got.Title != "groceries" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	m, _ := newTestManager(t)

	n := m.Create("original")
	n.AddToggle("section")
	m.SaveNote(n)

	got, _ := m.Get(n.ID)
	got.Title = "mutated"
	got.Toggles[0].Content = "scribble"

	again, _ := m.Get(n.ID)
	if again.Title != "original" || again.Toggles[0].Content != "" {
		t.Errorf("stored note mutated through copy: %+v", again)
	}
}

func TestSaveNoteReplacesStoredVersion(t *testing.T) {
	m, _ := newTestManager(t)

	n := m.Create("draft")
	n.Title = "final"
	n.AddToggle("body")
	if !m.SaveNote(n) {
		t.Fatal("SaveNote failed")
	}

	got, _ := m.Get(n.ID)
	if got.Title != "final" || len(got.Toggles) != 1 {
		t.Errorf("got %+v", got)
	}
	if m.Len() != 1 {
		t.Errorf("len = %d, want 1", m.Len())
	}
}

func TestDelete(t *testing.T) {
	m, _ := newTestManager(t)

	n := m.Create("doomed")
	if !m.Delete(n.ID) {
		t.Fatal("Delete reported missing")
	}
	if _, ok := m.Get(n.ID); ok {
		t.Error("note still present after delete")
	}
	if m.Delete(n.ID) {
		t.Error("second delete should report missing")
	}
}

func TestListOrdersByRecency(t *testing.T) {
	m, _ := newTestManager(t)

	old := m.Create("old")
	mid := m.Create("mid")
	recent := m.Create("recent")

	// Force distinct timestamps; creation within one test can land in
	// the same millisecond.
	old.Updated = time.Now().Add(-2 * time.Hour)
	mid.Updated = time.Now().Add(-time.Hour)
	recent.Updated = time.Now()
	m.SaveNote(old)
	m.SaveNote(mid)
	m.SaveNote(recent)

	list := m.List()
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Title != "recent" || list[2].Title != "old" {
		t.Errorf("order = %q, %q, %q", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestFilter(t *testing.T) {
	m, _ := newTestManager(t)

	a := m.Create("Meeting Notes")
	a.AddToggle("Agenda")
	m.SaveNote(a)

	b := m.Create("shopping")
	tg := b.AddToggle("food")
	tg.Content = "Buy MILK and eggs"
	m.SaveNote(b)

	m.Create("unrelated")

	tests := []struct {
		query string
		want  []string
	}{
		{"meeting", []string{"Meeting Notes"}},
		{"agenda", []string{"Meeting Notes"}},
		{"milk", []string{"shopping"}},
		{"  ", []string{"Meeting Notes", "shopping", "unrelated"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		got := m.Filter(tt.query)
		var titles []string
		for _, n := range got {
			titles = append(titles, n.Title)
		}
		sort.Strings(titles)
		want := append([]string(nil), tt.want...)
		sort.Strings(want)
		if !equalStrings(titles, want) {
			t.Errorf("Filter(%q) = %v, want %v", tt.query, titles, tt.want)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExportImportRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)

	n := m.Create("travel")
	tg := n.AddToggle("packing")
	tg.Content = "passport"
	tg.IsOpen = true
	m.SaveNote(n)

	data, err := m.Export(n.ID)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(data), "passport") {
		t.Error("export missing toggle content")
	}

	// Importing into the same notebook must duplicate, not clobber.
	imported, err := m.Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if imported.ID == n.ID {
		t.Error("import reused a colliding note ID")
	}
	if m.Len() != 2 {
		t.Errorf("len = %d, want 2", m.Len())
	}
	got, _ := m.Get(imported.ID)
	if len(got.Toggles) != 1 || got.Toggles[0].Content != "passport" {
		t.Errorf("imported note = %+v", got)
	}
	if !got.Toggles[0].IsOpen {
		t.Error("toggle open state lost on round trip")
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.Import([]byte("{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := m.Import([]byte(`{"title":"  ","toggles":[]}`)); err == nil {
		t.Error("empty note accepted")
	}
	if m.Len() != 0 {
		t.Errorf("rejected imports changed the collection: len = %d", m.Len())
	}
}

func TestExportToFile(t *testing.T) {
	m, _ := newTestManager(t)

	n := m.Create("exportable")
	path := filepath.Join(t.TempDir(), "out.json")
	if err := m.ExportToFile(n.ID, path); err != nil {
		t.Fatalf("ExportToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "exportable") {
		t.Error("file missing note title")
	}

	if err := m.ExportToFile(999, path); err == nil {
		t.Error("export of missing note should fail")
	}
}

func TestExternalChangeReload(t *testing.T) {
	m, kv := newTestManager(t)
	m.Create("mine")

	// Simulate another process rewriting the collection.
	kv.Set("notes", []note.Note{{ID: 1, Title: "theirs"}})

	m.Reload()
	if m.Len() != 1 {
		t.Fatalf("len = %d", m.Len())
	}
	if got, _ := m.Get(1); got.Title != "theirs" {
		t.Errorf("got %+v", got)
	}
}
