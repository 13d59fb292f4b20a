package editor

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Debounce and settle defaults for the reconciliation protocol.
const (
	DefaultToggleDebounce = 50 * time.Millisecond
	DefaultSettleDelay    = 100 * time.Millisecond
)

// State is the reconciler's position in its Idle → PendingToggle →
// Reconciling cycle.
type State int

const (
	StateIdle State = iota
	StatePendingToggle
	StateReconciling
)

func (s State) String() string {
	switch s {
	case StatePendingToggle:
		return "pending-toggle"
	case StateReconciling:
		return "reconciling"
	default:
		return "idle"
	}
}

// Reconciler debounces structural toggle requests and drives the
// capture → mutate → re-render → two-phase-restore sequence. The
// Reconciling state doubles as the reentrancy guard over "toggle
// mutation in flight": requests arriving while one is in flight are
// dropped, not queued (last-writer-loses, a deliberate policy).
type Reconciler struct {
	mu       sync.Mutex
	state    State
	pending  int64 // toggle awaiting debounce; last-call-wins
	cancel   CancelFunc
	debounce time.Duration
	settle   time.Duration
	sched    Scheduler
	tracker  *ScrollTracker
	renderer Renderer
	onToggle func(toggleID int64) bool
	logger   *slog.Logger
}

// ReconcilerConfig wires a Reconciler. OnToggle performs the actual
// structural mutation (flip, history push, persist, render) and
// reports false when nothing was mutated (e.g. the toggle vanished).
type ReconcilerConfig struct {
	Debounce time.Duration
	Settle   time.Duration
	Sched    Scheduler
	Tracker  *ScrollTracker
	Renderer Renderer
	OnToggle func(toggleID int64) bool
	Logger   *slog.Logger
}

func NewReconciler(cfg ReconcilerConfig) *Reconciler {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultToggleDebounce
	}
	if cfg.Settle <= 0 {
		cfg.Settle = DefaultSettleDelay
	}
	if cfg.Sched == nil {
		cfg.Sched = TimerScheduler{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tracker == nil {
		cfg.Tracker = NewScrollTracker(cfg.Logger)
	}
	return &Reconciler{
		debounce: cfg.Debounce,
		settle:   cfg.Settle,
		sched:    cfg.Sched,
		tracker:  cfg.Tracker,
		renderer: cfg.Renderer,
		onToggle: cfg.OnToggle,
		logger:   cfg.Logger,
	}
}

// State returns the current machine state.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// RequestToggle asks to flip a toggle. Rapid repeated requests within
// the debounce window collapse into a single mutation; only the final
// toggle ID within the window is applied, even if it differs from the
// first. A request arriving while a reconciliation is in flight is
// dropped.
func (r *Reconciler) RequestToggle(toggleID int64) {
	r.mu.Lock()
	switch r.state {
	case StateReconciling:
		r.mu.Unlock()
		r.logger.Debug("reconcile: request dropped, reconciliation in flight", "toggle", toggleID)
		return
	case StatePendingToggle:
		r.pending = toggleID
		if r.cancel != nil {
			r.cancel()
		}
	default:
		r.state = StatePendingToggle
		r.pending = toggleID
	}
	r.cancel = r.sched.After(r.debounce, r.fireToggle)
	r.mu.Unlock()
}

// Stop cancels any pending debounce.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.state == StatePendingToggle {
		r.state = StateIdle
	}
}

func (r *Reconciler) fireToggle() {
	r.mu.Lock()
	if r.state != StatePendingToggle {
		r.mu.Unlock()
		return
	}
	id := r.pending
	r.cancel = nil
	r.state = StateIdle
	r.mu.Unlock()

	r.Reconcile(func() bool { return r.onToggle(id) })
}

// Reconcile runs mutate inside the full restoration protocol: capture
// every region's viewport state plus the container offset, apply the
// mutation (which re-renders), restore the container and run pass one,
// then schedule pass two after the settle delay. The Reconciling guard
// is held until pass two completes and is released unconditionally,
// failure or not, so the machine can never wedge. Undo and redo reuse
// this entry point with their own mutations.
//
// Returns false when the guard was held, the mutation declined, or the
// protocol failed and fell back to the hard reset.
func (r *Reconciler) Reconcile(mutate func() bool) bool {
	r.mu.Lock()
	if r.state == StateReconciling {
		r.mu.Unlock()
		r.logger.Debug("reconcile: dropped, already reconciling")
		return false
	}
	// A structural mutation supersedes any pending toggle debounce.
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.state = StateReconciling
	r.mu.Unlock()

	captured, containerTop, err := r.capturePhase()
	if err != nil {
		r.logger.Error("reconcile: capture failed, resetting scroll", "err", err)
		r.failSafe()
		r.setState(StateIdle)
		return false
	}

	if !mutate() {
		r.setState(StateIdle)
		return false
	}

	if err := r.restorePass(captured, containerTop, true); err != nil {
		r.logger.Error("reconcile: restore failed, resetting scroll", "err", err)
		r.failSafe()
		r.setState(StateIdle)
		return false
	}

	r.sched.After(r.settle, func() {
		defer r.setState(StateIdle)
		if err := r.restorePass(captured, containerTop, false); err != nil {
			r.logger.Error("reconcile: settle pass failed, resetting scroll", "err", err)
			r.failSafe()
		}
	})
	return true
}

// capturePhase snapshots all viewport state. Panics from the renderer
// are converted to errors at this boundary.
func (r *Reconciler) capturePhase() (captured map[int64]RegionState, containerTop int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("capture panic: %v", p)
		}
	}()
	captured = r.tracker.Capture(r.renderer)
	containerTop = r.renderer.ContainerScrollTop()
	return captured, containerTop, nil
}

// restorePass reapplies captured state. The container offset is only
// reapplied on the first pass, before region restoration, per the
// protocol; the settle pass corrects late layout shifts in regions and
// re-verifies every hash independently.
func (r *Reconciler) restorePass(captured map[int64]RegionState, containerTop int, first bool) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("restore panic: %v", p)
		}
	}()
	if first {
		r.renderer.SetContainerScrollTop(containerTop)
	}
	r.tracker.Restore(r.renderer, captured)
	return nil
}

// failSafe applies the hard reset, swallowing any further panic so the
// guard release above it always runs.
func (r *Reconciler) failSafe() {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("reconcile: hard reset failed", "panic", p)
		}
	}()
	r.tracker.HardReset(r.renderer)
}

func (r *Reconciler) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
