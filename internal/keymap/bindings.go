package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: "global"},
		{Key: "esc", Command: "back", Context: "global"},

		// Note list context
		{Key: "q", Command: "quit", Context: "list"},
		{Key: "j", Command: "cursor-down", Context: "list"},
		{Key: "down", Command: "cursor-down", Context: "list"},
		{Key: "k", Command: "cursor-up", Context: "list"},
		{Key: "up", Command: "cursor-up", Context: "list"},
		{Key: "g", Command: "cursor-top", Context: "list"},
		{Key: "G", Command: "cursor-bottom", Context: "list"},
		{Key: "enter", Command: "open-note", Context: "list"},
		{Key: "n", Command: "new-note", Context: "list"},
		{Key: "X", Command: "delete-note", Context: "list"},
		{Key: "/", Command: "search", Context: "list"},
		{Key: "S", Command: "export-note", Context: "list"},
		{Key: "T", Command: "toggle-theme", Context: "list"},
		{Key: "r", Command: "refresh", Context: "list"},

		// Editor context
		{Key: "esc", Command: "close-note", Context: "editor"},
		{Key: "j", Command: "cursor-down", Context: "editor"},
		{Key: "down", Command: "cursor-down", Context: "editor"},
		{Key: "k", Command: "cursor-up", Context: "editor"},
		{Key: "up", Command: "cursor-up", Context: "editor"},
		{Key: "enter", Command: "toggle-open", Context: "editor"},
		{Key: " ", Command: "toggle-open", Context: "editor"},
		{Key: "tab", Command: "next-toggle", Context: "editor"},
		{Key: "shift+tab", Command: "prev-toggle", Context: "editor"},
		{Key: "i", Command: "edit-content", Context: "editor"},
		{Key: "t", Command: "edit-toggle-title", Context: "editor"},
		{Key: "I", Command: "edit-title", Context: "editor"},
		{Key: "ctrl+t", Command: "add-toggle", Context: "editor"},
		{Key: "ctrl+z", Command: "undo", Context: "editor"},
		{Key: "ctrl+y", Command: "redo", Context: "editor"},
		{Key: "v", Command: "preview", Context: "editor"},
		{Key: "y", Command: "yank-toggle", Context: "editor"},

		// Content editing context (insert mode inside a toggle)
		{Key: "esc", Command: "stop-editing", Context: "editing"},
		{Key: "ctrl+z", Command: "undo", Context: "editing"},
		{Key: "ctrl+y", Command: "redo", Context: "editing"},

		// Search context
		{Key: "esc", Command: "cancel", Context: "search"},
		{Key: "enter", Command: "confirm", Context: "search"},
		{Key: "up", Command: "cursor-up", Context: "search"},
		{Key: "down", Command: "cursor-down", Context: "search"},
		{Key: "ctrl+p", Command: "cursor-up", Context: "search"},
		{Key: "ctrl+n", Command: "cursor-down", Context: "search"},

		// Markdown preview context
		{Key: "esc", Command: "close-preview", Context: "preview"},
		{Key: "q", Command: "close-preview", Context: "preview"},
		{Key: "j", Command: "scroll-down", Context: "preview"},
		{Key: "k", Command: "scroll-up", Context: "preview"},

		// Confirm dialog context
		{Key: "esc", Command: "cancel", Context: "confirm"},
		{Key: "enter", Command: "select", Context: "confirm"},
		{Key: "tab", Command: "switch-button", Context: "confirm"},
		{Key: "left", Command: "switch-button", Context: "confirm"},
		{Key: "right", Command: "switch-button", Context: "confirm"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
