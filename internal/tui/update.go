package tui

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeAlphaBravosite/Notepad2/internal/config"
	"github.com/codeAlphaBravosite/Notepad2/internal/styles"
	"github.com/codeAlphaBravosite/Notepad2/internal/ui"
)

// Update routes messages. Engine callbacks arrive as engineMsg and run
// here, so the engine never executes off the update loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case engineMsg:
		msg.fn()
		return m, m.sched.wait()

	case storeChangedMsg:
		if msg.key == "notes" && m.engine == nil {
			m.notebook.Reload()
			m.refreshList()
		}
		return m, m.waitStoreEvent()

	case toastExpiredMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeEditing:
		return m.handleEditingKey(msg)
	case modePreview:
		return m.handlePreviewKey(msg)
	case modeEditor:
		return m.handleEditorKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.Resolve("confirm", msg.String())
	if !ok {
		return m, nil
	}
	done, confirmed := m.dialog.HandleCommand(cmd)
	if !done {
		return m, nil
	}
	m.dialog = nil
	m.mode = m.prevMode
	if confirmed && m.onConfirm != nil {
		fn := m.onConfirm
		m.onConfirm = nil
		return m, fn()
	}
	m.onConfirm = nil
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keys.Resolve("search", msg.String()); ok {
		switch cmd {
		case "cancel":
			m.searchQuery = ""
			m.searchInput.Blur()
			m.mode = modeList
			m.refreshList()
			return m, nil
		case "confirm":
			m.searchInput.Blur()
			m.mode = modeList
			return m, nil
		case "cursor-down":
			if m.cursor < len(m.notes)-1 {
				m.cursor++
			}
			return m, nil
		case "cursor-up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "quit":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.refreshList()
	return m, cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.Resolve("list", msg.String())
	if !ok {
		return m, nil
	}
	switch cmd {
	case "quit":
		return m, tea.Quit
	case "toggle-footer":
		m.showFooter = !m.showFooter
	case "cursor-down":
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
	case "cursor-up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "cursor-top":
		m.cursor = 0
	case "cursor-bottom":
		if len(m.notes) > 0 {
			m.cursor = len(m.notes) - 1
		}
	case "open-note":
		if n := m.selectedNote(); n != nil {
			m.openNote(n.ID)
		}
	case "new-note":
		n := m.notebook.Create("Untitled")
		m.searchQuery = ""
		m.refreshList()
		m.openNote(n.ID)
		if m.engine != nil {
			m.startEditing(targetNoteTitle)
		}
	case "delete-note":
		return m.confirmDeleteNote()
	case "search":
		m.mode = modeSearch
		m.searchQuery = ""
		m.searchInput.SetValue("")
		m.refreshList()
		return m, m.searchInput.Focus()
	case "export-note":
		return m.exportSelected()
	case "toggle-theme":
		return m.toggleTheme()
	case "refresh":
		m.notebook.Reload()
		m.refreshList()
	case "back":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.refreshList()
		}
	}
	return m, nil
}

func (m *Model) confirmDeleteNote() (tea.Model, tea.Cmd) {
	n := m.selectedNote()
	if n == nil {
		return m, nil
	}
	id, title := n.ID, n.Title
	m.dialog = ui.NewConfirmDialog("Delete note?", fmt.Sprintf("%q will be removed permanently.", title))
	m.dialog.ConfirmLabel = " Delete "
	m.onConfirm = func() tea.Cmd {
		m.notebook.Delete(id)
		m.refreshList()
		m.showToast("note deleted", false)
		return m.toastCmd()
	}
	m.prevMode = m.mode
	m.mode = modeConfirm
	return m, nil
}

// toggleTheme flips between the dark and light palettes and persists
// the choice to the config file.
func (m *Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := "light"
	if m.cfg.UI.Theme == "light" {
		next = "dark"
	}
	styles.ApplyTheme(next)
	if err := config.SaveTheme(m.cfg, next); err != nil {
		m.logger.Warn("theme not saved", "err", err)
		m.showToast("theme not saved", true)
	} else {
		m.showToast("theme: "+next, false)
	}
	return m, m.toastCmd()
}

func (m *Model) exportSelected() (tea.Model, tea.Cmd) {
	n := m.selectedNote()
	if n == nil {
		return m, nil
	}
	path := filepath.Join(m.cfg.Storage.DataDir, fmt.Sprintf("note-%d-export.json", n.ID))
	if err := m.notebook.ExportToFile(n.ID, path); err != nil {
		m.logger.Warn("export failed", "note", n.ID, "err", err)
		m.showToast("export failed", true)
	} else {
		m.showToast("exported to "+path, false)
	}
	return m, m.toastCmd()
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.currentNote()
	if n == nil {
		m.mode = modeList
		return m, nil
	}
	cmd, ok := m.keys.Resolve("editor", msg.String())
	if !ok {
		return m, nil
	}
	switch cmd {
	case "quit":
		m.closeNote()
		return m, tea.Quit
	case "toggle-footer":
		m.showFooter = !m.showFooter
	case "close-note":
		m.closeNote()
	case "cursor-down", "next-toggle":
		if m.activeToggle < len(n.Toggles)-1 {
			m.activeToggle++
			m.scrollActiveIntoView()
		}
	case "cursor-up", "prev-toggle":
		if m.activeToggle > -1 {
			m.activeToggle--
			m.scrollActiveIntoView()
		}
	case "toggle-open":
		if id := m.activeToggleID(); id != 0 {
			m.engine.RequestToggle(id)
		}
	case "add-toggle":
		if id := m.engine.AddToggle("New toggle"); id != 0 {
			m.activeToggle = len(n.Toggles) - 1
			m.startEditing(targetToggleTitle)
		}
	case "edit-content":
		if m.activeRegion() == nil {
			m.showToast("open the toggle first", true)
			return m, m.toastCmd()
		}
		m.startEditing(targetToggleContent)
	case "edit-toggle-title":
		if m.activeToggleID() != 0 {
			m.startEditing(targetToggleTitle)
		}
	case "edit-title":
		m.startEditing(targetNoteTitle)
	case "undo":
		if !m.engine.Undo() {
			m.showToast("nothing to undo", false)
			return m, m.toastCmd()
		}
		m.clampActiveToggle()
	case "redo":
		if !m.engine.Redo() {
			m.showToast("nothing to redo", false)
			return m, m.toastCmd()
		}
		m.clampActiveToggle()
	case "preview":
		m.enterPreview()
	case "yank-toggle":
		return m.yankActiveToggle()
	}
	return m, nil
}

// clampActiveToggle keeps the selection valid after undo/redo changes
// the toggle count.
func (m *Model) clampActiveToggle() {
	n := m.currentNote()
	if n == nil {
		return
	}
	if m.activeToggle >= len(n.Toggles) {
		m.activeToggle = len(n.Toggles) - 1
	}
}

func (m *Model) yankActiveToggle() (tea.Model, tea.Cmd) {
	n := m.currentNote()
	id := m.activeToggleID()
	if n == nil || id == 0 {
		return m, nil
	}
	t := n.Toggle(id)
	if t == nil {
		return m, nil
	}
	text := t.Title
	if t.Content != "" {
		text += "\n" + t.Content
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.logger.Debug("clipboard write failed", "err", err)
		m.showToast("clipboard unavailable", true)
	} else {
		m.showToast("copied", false)
	}
	return m, m.toastCmd()
}

// startEditing enters insert mode for the given target, seeding the
// title buffer from the current value.
func (m *Model) startEditing(target editTarget) {
	n := m.currentNote()
	if n == nil {
		return
	}
	m.target = target
	switch target {
	case targetNoteTitle:
		m.editBuf = []rune(n.Title)
	case targetToggleTitle:
		if t := n.Toggle(m.activeToggleID()); t != nil {
			m.editBuf = []rune(t.Title)
		}
	case targetToggleContent:
		if r := m.activeRegion(); r != nil {
			r.Focus()
		}
	}
	m.mode = modeEditing
}

func (m *Model) stopEditing() {
	if r := m.activeRegion(); r != nil {
		r.Blur()
	}
	m.editBuf = nil
	m.mode = modeEditor
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keys.Resolve("editing", msg.String()); ok {
		switch cmd {
		case "stop-editing":
			m.stopEditing()
			return m, nil
		case "undo":
			m.engine.Undo()
			m.clampActiveToggle()
			m.stopEditing()
			return m, nil
		case "redo":
			m.engine.Redo()
			m.clampActiveToggle()
			m.stopEditing()
			return m, nil
		case "quit":
			m.closeNote()
			return m, tea.Quit
		}
	}

	if m.target == targetToggleContent {
		m.handleContentInput(msg)
	} else {
		m.handleTitleInput(msg)
	}
	return m, nil
}

// handleContentInput edits the active region directly, then pushes the
// new content through the debounced commit path.
func (m *Model) handleContentInput(msg tea.KeyMsg) {
	r := m.activeRegion()
	if r == nil {
		// The toggle was closed under us (undo during edit).
		m.stopEditing()
		return
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		r.InsertString(msg.String())
	case tea.KeyEnter:
		r.InsertString("\n")
	case tea.KeyBackspace:
		r.Backspace()
	case tea.KeyLeft:
		r.MoveCaret(-1)
		return
	case tea.KeyRight:
		r.MoveCaret(1)
		return
	default:
		return
	}
	m.engine.EditToggleContent(r.id, r.TextContent())
}

func (m *Model) handleTitleInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.editBuf = append(m.editBuf, []rune(msg.String())...)
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeyEnter:
		m.stopEditing()
		return
	default:
		return
	}
	title := string(m.editBuf)
	if m.target == targetNoteTitle {
		m.engine.EditTitle(title)
	} else {
		m.engine.EditToggleTitle(m.activeToggleID(), title)
	}
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.Resolve("preview", msg.String())
	if !ok {
		return m, nil
	}
	switch cmd {
	case "close-preview", "back":
		m.previewBody = ""
		m.previewScroll = 0
		m.mode = modeEditor
	case "scroll-down":
		m.previewScroll++
	case "scroll-up":
		if m.previewScroll > 0 {
			m.previewScroll--
		}
	case "quit":
		m.closeNote()
		return m, tea.Quit
	}
	return m, nil
}

// scrollActiveIntoView nudges the container so the active toggle's
// header row is visible.
func (m *Model) scrollActiveIntoView() {
	row := m.activeHeaderRow()
	if row < m.containerTop {
		m.SetContainerScrollTop(row)
	}
	if h := m.editorViewHeight(); row >= m.containerTop+h {
		m.SetContainerScrollTop(row - h + 1)
	}
}

// activeHeaderRow computes the active toggle's header row index in the
// flattened editor view.
func (m *Model) activeHeaderRow() int {
	n := m.currentNote()
	if n == nil || m.activeToggle < 0 {
		return 0
	}
	row := 1 // title row
	for i := 0; i < m.activeToggle && i < len(n.Toggles); i++ {
		row++
		if n.Toggles[i].IsOpen {
			row += visibleLines
		}
	}
	return row
}
