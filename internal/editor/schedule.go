package editor

import "time"

// CancelFunc cancels a deferred call. It reports true if the call was
// cancelled before running.
type CancelFunc func() bool

// Scheduler defers work. The engine's debounce timers and the
// follow-up restoration pass are expressed through this interface so
// the TUI can deliver callbacks back onto its own update loop, keeping
// the whole engine cooperatively single-threaded. Tests substitute a
// manual implementation to fire deferred calls deterministically.
type Scheduler interface {
	After(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler runs deferred calls on real timer goroutines. It is
// the default for headless use; components guard their own state, so
// this is safe, just not single-threaded.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
