package note

import "time"

// Note is a single note: a title plus an ordered list of collapsible
// toggles. A note is owned exclusively by the editing session while
// open and persisted as a whole on every committed mutation.
type Note struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Toggles []Toggle  `json:"toggles"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Toggle is an independently collapsible content block within a note.
// Order within the note is render order and is preserved across mutation.
type Toggle struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	IsOpen  bool   `json:"isOpen"`
}

// New creates an empty note. The ID is derived from the creation time;
// callers that hold existing notes should allocate through a manager
// that can resolve millisecond collisions (see AllocateID).
func New(title string) *Note {
	now := time.Now()
	return &Note{
		ID:      now.UnixMilli(),
		Title:   title,
		Toggles: []Toggle{},
		Created: now,
		Updated: now,
	}
}

// AllocateID returns a creation-time derived ID that does not collide
// with any ID in taken. Millisecond granularity means rapid successive
// creations can collide; collisions are resolved by bumping until free.
func AllocateID(taken map[int64]bool) int64 {
	id := time.Now().UnixMilli()
	for taken[id] {
		id++
	}
	return id
}

// AddToggle appends a new closed toggle and returns a pointer into the
// note's toggle slice. The pointer is invalidated by later appends.
func (n *Note) AddToggle(title string) *Toggle {
	taken := make(map[int64]bool, len(n.Toggles))
	for _, t := range n.Toggles {
		taken[t.ID] = true
	}
	n.Toggles = append(n.Toggles, Toggle{
		ID:    AllocateID(taken),
		Title: title,
	})
	return &n.Toggles[len(n.Toggles)-1]
}

// Toggle returns the toggle with the given ID, or nil if absent.
func (n *Note) Toggle(id int64) *Toggle {
	for i := range n.Toggles {
		if n.Toggles[i].ID == id {
			return &n.Toggles[i]
		}
	}
	return nil
}

// Touch bumps the updated timestamp. Called on persist, not on every
// keystroke, so structural equality over an uncommitted burst is not
// disturbed by timestamps.
func (n *Note) Touch() {
	n.Updated = time.Now()
}
