package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codeAlphaBravosite/Notepad2/internal/editor"
)

// engineMsg carries a deferred engine callback onto the update loop.
type engineMsg struct {
	fn func()
}

// loopScheduler defers engine callbacks through the program's message
// loop instead of firing them on timer goroutines. The engine then
// never runs concurrently with Update.
type loopScheduler struct {
	calls chan func()
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{calls: make(chan func(), 32)}
}

func (s *loopScheduler) After(d time.Duration, fn func()) editor.CancelFunc {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		// Wrap so a cancel that loses the race against the timer still
		// wins against execution.
		s.calls <- func() {
			if !cancelled.Load() {
				fn()
			}
		}
	})
	return func() bool {
		cancelled.Store(true)
		return t.Stop()
	}
}

// wait is the tea.Cmd that pumps the next deferred callback. Update
// re-issues it after every engineMsg.
func (s *loopScheduler) wait() tea.Cmd {
	return func() tea.Msg {
		return engineMsg{fn: <-s.calls}
	}
}
