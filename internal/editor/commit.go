package editor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/codeAlphaBravosite/Notepad2/internal/history"
	"github.com/codeAlphaBravosite/Notepad2/internal/note"
)

// DefaultCommitWindow is the quiet period after which a burst of text
// edits is committed as a single history entry.
const DefaultCommitWindow = 500 * time.Millisecond

// CommitScheduler coalesces rapid field edits (keystrokes) into one
// history entry per burst. The live note is mutated immediately so the
// UI shows each keystroke with no latency; only the history push and
// the persist are deferred.
type CommitScheduler struct {
	mu      sync.Mutex
	window  time.Duration
	sched   Scheduler
	cancel  CancelFunc
	pre     *note.Note // pinned at burst start, nil when no burst pending
	hist    *history.History
	current func() *note.Note
	persist func(*note.Note) bool
	logger  *slog.Logger
}

// NewCommitScheduler wires a scheduler over the given history and
// persistence sink. current returns the live note; persist reports
// false on storage failure, which is logged and otherwise ignored
// (the in-memory note stays authoritative for the session).
func NewCommitScheduler(window time.Duration, sched Scheduler, hist *history.History, current func() *note.Note, persist func(*note.Note) bool, logger *slog.Logger) *CommitScheduler {
	if window <= 0 {
		window = DefaultCommitWindow
	}
	if sched == nil {
		sched = TimerScheduler{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommitScheduler{
		window:  window,
		sched:   sched,
		hist:    hist,
		current: current,
		persist: persist,
		logger:  logger,
	}
}

// Edit applies mutate to the live note. On the first edit of a burst
// the pre-edit snapshot is pinned; further edits re-arm the timer but
// never recapture, so the eventual history entry restores the state at
// burst start. Re-arming replaces the owned timer handle atomically
// (cancel-then-schedule).
func (s *CommitScheduler) Edit(mutate func(*note.Note)) {
	s.mu.Lock()
	cur := s.current()
	if s.pre == nil {
		s.pre = cur.Clone()
	}
	mutate(cur)
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = s.sched.After(s.window, s.fire)
	s.mu.Unlock()
}

// Pending reports whether a burst is awaiting commit.
func (s *CommitScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pre != nil
}

// Flush commits any pending burst immediately. Called before
// structural mutations and on editor close so a half-debounced burst
// is never lost or misordered against a toggle flip.
func (s *CommitScheduler) Flush() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()
	s.fire()
}

// Stop discards any pending burst without committing.
func (s *CommitScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.pre = nil
}

// fire runs when the quiet period elapses. A burst that ends where it
// started (revert-to-original, or focus-then-blur with no change) is
// suppressed: no push, no persist.
func (s *CommitScheduler) fire() {
	s.mu.Lock()
	pre := s.pre
	s.pre = nil
	s.cancel = nil
	cur := s.current()
	s.mu.Unlock()

	if pre == nil {
		return
	}
	if pre.Equal(cur) {
		return
	}
	s.hist.Push(pre)
	if !s.persist(cur) {
		s.logger.Warn("commit: persist failed, in-memory state remains authoritative", "note", cur.ID)
	}
}
