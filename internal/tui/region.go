package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/codeAlphaBravosite/Notepad2/internal/styles"
)

// visibleLines caps how many content lines a region shows before it
// scrolls internally.
const visibleLines = 8

// toggleRegion is the rendered body of one open toggle. It is
// destroyed and recreated on every full re-render; identity across
// renders is the toggle ID plus the content hash, never the widget.
type toggleRegion struct {
	id      int64
	content []rune
	lines   []string

	scrollTop int
	selStart  int // rune offsets into content
	selEnd    int
	focused   bool
}

func newToggleRegion(id int64, content string) *toggleRegion {
	r := &toggleRegion{id: id}
	r.setContent(content)
	return r
}

func (r *toggleRegion) setContent(content string) {
	r.content = []rune(content)
	r.lines = strings.Split(content, "\n")
	r.clamp()
}

// editor.Region implementation.

func (r *toggleRegion) ScrollTop() int { return r.scrollTop }

func (r *toggleRegion) SetScrollTop(top int) {
	r.scrollTop = top
	r.clamp()
}

func (r *toggleRegion) ScrollHeight() int { return len(r.lines) }

func (r *toggleRegion) TextContent() string { return string(r.content) }

func (r *toggleRegion) Selection() (int, int) { return r.selStart, r.selEnd }

func (r *toggleRegion) SetSelection(start, end int) {
	r.selStart, r.selEnd = start, end
	r.clamp()
}

func (r *toggleRegion) Focused() bool { return r.focused }

func (r *toggleRegion) Focus() { r.focused = true }

func (r *toggleRegion) Blur() { r.focused = false }

func (r *toggleRegion) clamp() {
	max := len(r.lines) - visibleLines
	if max < 0 {
		max = 0
	}
	if r.scrollTop > max {
		r.scrollTop = max
	}
	if r.scrollTop < 0 {
		r.scrollTop = 0
	}
	n := len(r.content)
	if r.selStart < 0 {
		r.selStart = 0
	}
	if r.selStart > n {
		r.selStart = n
	}
	if r.selEnd < r.selStart {
		r.selEnd = r.selStart
	}
	if r.selEnd > n {
		r.selEnd = n
	}
}

// Caret returns the collapsed selection position.
func (r *toggleRegion) Caret() int { return r.selEnd }

// InsertString inserts text at the caret, replacing any selection,
// and leaves a collapsed caret after the insertion.
func (r *toggleRegion) InsertString(s string) {
	ins := []rune(s)
	out := make([]rune, 0, len(r.content)+len(ins))
	out = append(out, r.content[:r.selStart]...)
	out = append(out, ins...)
	out = append(out, r.content[r.selEnd:]...)
	caret := r.selStart + len(ins)
	r.setContent(string(out))
	r.SetSelection(caret, caret)
	r.scrollCaretIntoView()
}

// Backspace deletes the selection, or the rune before a collapsed
// caret.
func (r *toggleRegion) Backspace() {
	if r.selStart == r.selEnd {
		if r.selStart == 0 {
			return
		}
		r.selStart--
	}
	out := make([]rune, 0, len(r.content))
	out = append(out, r.content[:r.selStart]...)
	out = append(out, r.content[r.selEnd:]...)
	caret := r.selStart
	r.setContent(string(out))
	r.SetSelection(caret, caret)
	r.scrollCaretIntoView()
}

// MoveCaret shifts a collapsed caret by delta runes.
func (r *toggleRegion) MoveCaret(delta int) {
	caret := r.selEnd + delta
	r.SetSelection(caret, caret)
	r.scrollCaretIntoView()
}

// caretLine returns the line the caret sits on.
func (r *toggleRegion) caretLine() int {
	line := 0
	for i := 0; i < r.selEnd && i < len(r.content); i++ {
		if r.content[i] == '\n' {
			line++
		}
	}
	return line
}

func (r *toggleRegion) scrollCaretIntoView() {
	line := r.caretLine()
	if line < r.scrollTop {
		r.scrollTop = line
	}
	if line >= r.scrollTop+visibleLines {
		r.scrollTop = line - visibleLines + 1
	}
}

// viewRows renders the visible window of the region body as exactly
// visibleLines rows, so the outer container's row math stays stable
// regardless of content length.
func (r *toggleRegion) viewRows(width int, active bool) []string {
	style := styles.ToggleContent
	if active {
		style = styles.ToggleContentActive
	}

	rows := make([]string, 0, visibleLines)
	for i := r.scrollTop; i < r.scrollTop+visibleLines; i++ {
		if i >= len(r.lines) {
			rows = append(rows, "")
			continue
		}
		line := r.lines[i]
		if width > 2 {
			line = runewidth.Truncate(line, width-2, "…")
		}
		rows = append(rows, style.Render(line))
	}
	if r.scrollTop+visibleLines < len(r.lines) {
		rows[visibleLines-1] = styles.Muted.Render("  ···")
	}
	return rows
}
