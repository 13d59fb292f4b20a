package note

// Clone returns a structurally independent deep copy of the note.
// Mutating the copy or the original afterward does not affect the
// other. Clones are the snapshot values held on undo/redo stacks.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}
	c := *n
	c.Toggles = make([]Toggle, len(n.Toggles))
	copy(c.Toggles, n.Toggles)
	return &c
}

// Equal reports field-by-field structural equality, including toggle
// order and all toggle fields. Clone and Equal agree on the field set:
// two notes are equal iff a clone of one is indistinguishable from the
// other. Used to suppress no-op history entries.
func (n *Note) Equal(o *Note) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.ID != o.ID || n.Title != o.Title {
		return false
	}
	if !n.Created.Equal(o.Created) || !n.Updated.Equal(o.Updated) {
		return false
	}
	if len(n.Toggles) != len(o.Toggles) {
		return false
	}
	for i := range n.Toggles {
		if n.Toggles[i] != o.Toggles[i] {
			return false
		}
	}
	return true
}
