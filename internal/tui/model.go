// Package tui is the terminal frontend: a note list with incremental
// search and a toggle-based editor backed by the editing engine.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeAlphaBravosite/Notepad2/internal/config"
	"github.com/codeAlphaBravosite/Notepad2/internal/editor"
	"github.com/codeAlphaBravosite/Notepad2/internal/keymap"
	"github.com/codeAlphaBravosite/Notepad2/internal/note"
	"github.com/codeAlphaBravosite/Notepad2/internal/notebook"
	"github.com/codeAlphaBravosite/Notepad2/internal/session"
	"github.com/codeAlphaBravosite/Notepad2/internal/store"
	"github.com/codeAlphaBravosite/Notepad2/internal/ui"
)

// mode is the top-level UI state.
type mode int

const (
	modeList mode = iota
	modeSearch
	modeEditor
	modeEditing
	modePreview
	modeConfirm
)

// editTarget says where typed text goes while in modeEditing.
type editTarget int

const (
	targetNoteTitle editTarget = iota
	targetToggleTitle
	targetToggleContent
)

// toastExpiredMsg clears the transient status message.
type toastExpiredMsg struct {
	gen int
}

// storeChangedMsg reports an external rewrite of a store key.
type storeChangedMsg struct {
	key string
}

// Model is the bubbletea model. It doubles as the engine's renderer:
// RenderToggleList and friends are called synchronously from engine
// entry points, which all run on the update loop.
type Model struct {
	cfg      *config.Config
	logger   *slog.Logger
	notebook *notebook.Manager
	session  *session.Store
	keys     *keymap.Registry
	sched    *loopScheduler

	width  int
	height int

	mode     mode
	prevMode mode

	// List state
	notes     []note.Note
	cursor    int
	scrollOff int

	// Search state
	searchQuery string
	searchInput textinput.Model

	// Editing session state
	engine       *editor.Editor
	regions      []*toggleRegion
	containerTop int
	activeToggle int // index into the open note's toggle list, -1 = title row
	canUndo      bool
	canRedo      bool

	// Insert mode state
	target  editTarget
	editBuf []rune // title buffers; content edits go through the region

	// Preview state
	previewBody   string
	previewScroll int

	// Confirm dialog state
	dialog    *ui.ConfirmDialog
	onConfirm func() tea.Cmd

	// Toast state
	toast      string
	toastError bool
	toastGen   int

	showFooter bool

	// External store watch
	storeEvents <-chan string
}

// Option configures the model.
type Option func(*Model)

// WithStoreEvents wires a store watcher channel; "notes" events reload
// the list when no note is open.
func WithStoreEvents(ch <-chan string) Option {
	return func(m *Model) { m.storeEvents = ch }
}

// New creates the model. The session view-state store shares the
// model's scheduler so its settle passes run on the update loop too.
// Stale view state is pruned once, at startup.
func New(cfg *config.Config, nb *notebook.Manager, kv store.Store, logger *slog.Logger, opts ...Option) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	keys := keymap.NewRegistry()
	keymap.RegisterDefaults(keys)
	keys.ApplyOverrides(cfg.Keymap.Overrides)

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 0

	m := &Model{
		cfg:          cfg,
		logger:       logger,
		notebook:     nb,
		keys:         keys,
		sched:        newLoopScheduler(),
		activeToggle: -1,
		showFooter:   cfg.UI.ShowFooter,
		searchInput:  ti,
	}
	m.session = session.New(kv, m.sched, cfg.Session.Retention, logger)
	m.session.Prune()
	for _, opt := range opts {
		opt(m)
	}
	m.refreshList()
	return m
}

// Init starts the engine callback pump.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.sched.wait()}
	if m.storeEvents != nil {
		cmds = append(cmds, m.waitStoreEvent())
	}
	return tea.Batch(cmds...)
}

func (m *Model) waitStoreEvent() tea.Cmd {
	return func() tea.Msg {
		key, ok := <-m.storeEvents
		if !ok {
			return nil
		}
		return storeChangedMsg{key: key}
	}
}

// refreshList re-reads the note list, applying the search filter.
func (m *Model) refreshList() {
	if m.searchQuery != "" {
		m.notes = m.notebook.Filter(m.searchQuery)
	} else {
		m.notes = m.notebook.List()
	}
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedNote() *note.Note {
	if len(m.notes) == 0 {
		return nil
	}
	return &m.notes[m.cursor]
}

// openNote starts an editing session for the selected note.
func (m *Model) openNote(id int64) {
	n, ok := m.notebook.Get(id)
	if !ok {
		m.showToast("note not found", true)
		return
	}
	m.engine = editor.New(editor.Config{
		Note:           n,
		Renderer:       m,
		Persist:        m.notebook.SaveNote,
		Observer:       m,
		Sched:          m.sched,
		Logger:         m.logger,
		CommitWindow:   m.cfg.Editor.CommitWindow,
		ToggleDebounce: m.cfg.Editor.ToggleDebounce,
		SettleDelay:    m.cfg.Editor.SettleDelay,
	})
	m.mode = modeEditor
	m.activeToggle = firstToggleIndex(n)
	m.session.OnEditorOpen(id, m)
}

// closeNote ends the editing session, capturing view state first.
func (m *Model) closeNote() {
	if m.engine == nil {
		return
	}
	n := m.engine.Note()
	m.session.OnEditorClose(n.ID, session.Capture(m, m.activeToggleID()))
	m.engine.Close()
	m.engine = nil
	m.regions = nil
	m.containerTop = 0
	m.activeToggle = -1
	m.canUndo = false
	m.canRedo = false
	m.mode = modeList
	m.refreshList()
}

func firstToggleIndex(n *note.Note) int {
	if len(n.Toggles) == 0 {
		return -1
	}
	return 0
}

func (m *Model) activeToggleID() int64 {
	n := m.currentNote()
	if n == nil || m.activeToggle < 0 || m.activeToggle >= len(n.Toggles) {
		return 0
	}
	return n.Toggles[m.activeToggle].ID
}

func (m *Model) currentNote() *note.Note {
	if m.engine == nil {
		return nil
	}
	return m.engine.Note()
}

func (m *Model) showToast(text string, isError bool) {
	m.toast = text
	m.toastError = isError
	m.toastGen++
}

func (m *Model) toastCmd() tea.Cmd {
	gen := m.toastGen
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{gen: gen}
	})
}

// editor.Renderer implementation. Each full render destroys every
// region widget and builds fresh ones from the note, so stale handles
// can never survive a structural change.

func (m *Model) RenderToggleList(n *note.Note) {
	m.regions = m.regions[:0]
	for i := range n.Toggles {
		t := &n.Toggles[i]
		if t.IsOpen {
			m.regions = append(m.regions, newToggleRegion(t.ID, t.Content))
		}
	}
	if m.containerTop > m.containerMax() {
		m.containerTop = m.containerMax()
	}
}

func (m *Model) FindRegion(toggleID int64) (editor.Region, bool) {
	for _, r := range m.regions {
		if r.id == toggleID {
			return r, true
		}
	}
	return nil, false
}

func (m *Model) RegionIDs() []int64 {
	ids := make([]int64, 0, len(m.regions))
	for _, r := range m.regions {
		ids = append(ids, r.id)
	}
	return ids
}

func (m *Model) ContainerScrollTop() int { return m.containerTop }

func (m *Model) SetContainerScrollTop(top int) {
	if top < 0 {
		top = 0
	}
	if max := m.containerMax(); top > max {
		top = max
	}
	m.containerTop = top
}

// containerMax bounds the outer scroll offset by the rendered row
// count so restoration of stale offsets cannot scroll past the end.
func (m *Model) containerMax() int {
	n := m.currentNote()
	if n == nil {
		return 0
	}
	rows := 1 // title row
	for i := range n.Toggles {
		rows++
		if n.Toggles[i].IsOpen {
			rows += visibleLines
		}
	}
	if rows <= m.editorViewHeight() {
		return 0
	}
	return rows - m.editorViewHeight()
}

func (m *Model) editorViewHeight() int {
	h := m.height - 2 // footer + toast row
	if h < 4 {
		h = 4
	}
	return h
}

// history.Observer implementation: footer hints track stack state.
func (m *Model) HistoryChanged(canUndo, canRedo bool) {
	m.canUndo = canUndo
	m.canRedo = canRedo
}

// activeRegion resolves the active toggle's region, or nil when the
// toggle is closed or the selection is on the title row.
func (m *Model) activeRegion() *toggleRegion {
	id := m.activeToggleID()
	if id == 0 {
		return nil
	}
	for _, r := range m.regions {
		if r.id == id {
			return r
		}
	}
	return nil
}
