package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/codeAlphaBravosite/Notepad2/internal/note"
	"github.com/codeAlphaBravosite/Notepad2/internal/styles"
	"github.com/codeAlphaBravosite/Notepad2/internal/ui"
)

// View renders the current mode.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var body string
	switch m.mode {
	case modePreview:
		body = m.renderPreview()
	case modeEditor, modeEditing:
		body = m.renderEditor()
	case modeConfirm:
		background := m.renderList()
		if m.prevMode == modeEditor {
			background = m.renderEditor()
		}
		return ui.OverlayModal(background, m.dialog.View(), m.width, m.height)
	default:
		body = m.renderList()
	}

	rows := []string{body}
	if m.toast != "" {
		style := styles.ToastSuccess
		if m.toastError {
			style = styles.ToastError
		}
		rows = append(rows, style.Render(m.toast))
	}
	if m.showFooter {
		rows = append(rows, m.renderFooter())
	}
	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height).Render(content)
}

func (m *Model) renderList() string {
	var b strings.Builder
	b.WriteString(styles.Logo.Render("notepad2"))
	b.WriteString("  ")
	if m.mode == modeSearch {
		b.WriteString(m.searchInput.View())
	} else if m.searchQuery != "" {
		b.WriteString(styles.Muted.Render("filter: " + m.searchQuery))
	}
	b.WriteString("\n\n")

	if len(m.notes) == 0 {
		b.WriteString(styles.Muted.Render("  no notes — press n to create one"))
		return b.String()
	}

	visible := m.editorViewHeight() - 2
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+visible {
		m.scrollOff = m.cursor - visible + 1
	}

	end := m.scrollOff + visible
	if end > len(m.notes) {
		end = len(m.notes)
	}
	for i := m.scrollOff; i < end; i++ {
		n := &m.notes[i]
		title := n.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%s %s",
			runewidth.FillRight(runewidth.Truncate(title, 40, "…"), 40),
			styles.ListMeta.Render(fmt.Sprintf("%d toggles · %s", len(n.Toggles), n.Updated.Format("Jan 2 15:04"))))
		if i == m.cursor {
			b.WriteString(styles.ListItemSelected.Render(line))
		} else {
			b.WriteString(styles.ListItem.Render(line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderEditor flattens the note into rows (title, headers, region
// bodies) and windows them by the container scroll offset.
func (m *Model) renderEditor() string {
	n := m.currentNote()
	if n == nil {
		return ""
	}

	rows := make([]string, 0, 16)
	rows = append(rows, m.renderNoteTitle(n))
	for i := range n.Toggles {
		t := &n.Toggles[i]
		rows = append(rows, m.renderToggleHeader(t, i == m.activeToggle))
		if !t.IsOpen {
			continue
		}
		if r, ok := m.FindRegion(t.ID); ok {
			reg := r.(*toggleRegion)
			rows = append(rows, reg.viewRows(m.width, i == m.activeToggle)...)
		}
	}

	start := m.containerTop
	if start > len(rows) {
		start = len(rows)
	}
	end := start + m.editorViewHeight()
	if end > len(rows) {
		end = len(rows)
	}
	return strings.Join(rows[start:end], "\n")
}

func (m *Model) renderNoteTitle(n *note.Note) string {
	title := n.Title
	if m.mode == modeEditing && m.target == targetNoteTitle {
		title = string(m.editBuf) + "▌"
	}
	marker := " "
	if m.activeToggle == -1 {
		marker = ">"
	}
	return styles.NoteTitle.Render(marker + " " + title)
}

func (m *Model) renderToggleHeader(t *note.Toggle, active bool) string {
	marker := "▸"
	if t.IsOpen {
		marker = "▾"
	}
	title := t.Title
	if active && m.mode == modeEditing && m.target == targetToggleTitle {
		title = string(m.editBuf) + "▌"
	}
	header := styles.ToggleMarker.Render(marker) + " "
	if active {
		return header + styles.ToggleHeaderActive.Render(title)
	}
	return header + styles.ToggleHeader.Render(title)
}

// enterPreview renders the note as markdown through glamour.
func (m *Model) enterPreview() {
	n := m.currentNote()
	if n == nil {
		return
	}
	md := noteMarkdown(n)
	out, err := renderMarkdown(md, m.width)
	if err != nil {
		m.logger.Debug("markdown render failed", "err", err)
		out = md
	}
	m.previewBody = out
	m.previewScroll = 0
	m.mode = modePreview
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.CurrentMarkdownTheme),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// noteMarkdown flattens a note to markdown: toggle titles become
// headings, closed toggles are included too since preview is about the
// note, not the viewport.
func noteMarkdown(n *note.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", n.Title)
	for i := range n.Toggles {
		t := &n.Toggles[i]
		fmt.Fprintf(&b, "## %s\n\n", t.Title)
		if t.Content != "" {
			b.WriteString(t.Content)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func (m *Model) renderPreview() string {
	lines := strings.Split(m.previewBody, "\n")
	if m.previewScroll > len(lines)-1 {
		m.previewScroll = len(lines) - 1
	}
	end := m.previewScroll + m.editorViewHeight()
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[m.previewScroll:end], "\n")
}

func (m *Model) renderFooter() string {
	var hints []string
	switch m.mode {
	case modeSearch:
		hints = []string{"enter confirm", "esc cancel"}
	case modeEditing:
		hints = []string{"esc done", "ctrl+z undo"}
	case modePreview:
		hints = []string{"j/k scroll", "esc back"}
	case modeEditor, modeConfirm:
		hints = []string{"enter toggle", "i edit", "ctrl+t add", "v preview", "esc close"}
		if m.canUndo {
			hints = append(hints, "ctrl+z undo")
		}
		if m.canRedo {
			hints = append(hints, "ctrl+y redo")
		}
	default:
		hints = []string{"enter open", "n new", "X delete", "/ search", "S export", "q quit"}
	}
	return styles.Footer.Width(m.width).Render(strings.Join(hints, " · "))
}
