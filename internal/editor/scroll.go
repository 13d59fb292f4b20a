package editor

import (
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

// RegionState is the viewport state of one region, captured immediately
// before a structural mutation and consumed by at most two restoration
// passes before being discarded. Communication is by value: no live
// widget references cross the render boundary.
type RegionState struct {
	ScrollTop    int
	ScrollHeight int
	SelStart     int
	SelEnd       int
	Focused      bool
	ContentHash  uint64
}

// ContentHash fingerprints a region's text. Cheap and collision
// tolerant: it only answers "has this content changed since capture",
// it is not a security or deduplication primitive.
func ContentHash(text string) uint64 {
	return xxhash.Sum64String(text)
}

// ScrollTracker captures and restores per-region viewport state keyed
// by content identity.
type ScrollTracker struct {
	logger *slog.Logger
}

// NewScrollTracker creates a tracker. logger may be nil.
func NewScrollTracker(logger *slog.Logger) *ScrollTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScrollTracker{logger: logger}
}

// Capture reads viewport metrics and a content hash for every rendered
// region. Never fails: a region that disappears mid-iteration is
// simply absent from the result.
func (t *ScrollTracker) Capture(r Renderer) map[int64]RegionState {
	captured := make(map[int64]RegionState)
	for _, id := range r.RegionIDs() {
		reg, ok := r.FindRegion(id)
		if !ok {
			continue
		}
		start, end := reg.Selection()
		captured[id] = RegionState{
			ScrollTop:    reg.ScrollTop(),
			ScrollHeight: reg.ScrollHeight(),
			SelStart:     start,
			SelEnd:       end,
			Focused:      reg.Focused(),
			ContentHash:  ContentHash(reg.TextContent()),
		}
	}
	return captured
}

// Restore reapplies captured state to every region that still exists
// and still holds the content it was captured with. Hash mismatches
// are expected-and-benign (the content changed meanwhile; a stale
// position would be wrong) so those regions are skipped, not logged.
// When the region reflowed between capture and restore, scrollTop is
// rescaled by newHeight/oldHeight to keep the relative position stable.
// Each pass re-verifies independently; callers invoke this twice per
// reconciliation.
func (t *ScrollTracker) Restore(r Renderer, captured map[int64]RegionState) {
	for id, st := range captured {
		reg, ok := r.FindRegion(id)
		if !ok {
			continue
		}
		if ContentHash(reg.TextContent()) != st.ContentHash {
			continue
		}
		top := st.ScrollTop
		if h := reg.ScrollHeight(); h != st.ScrollHeight && st.ScrollHeight > 0 {
			top = st.ScrollTop * h / st.ScrollHeight
		}
		reg.SetScrollTop(top)
		reg.SetSelection(st.SelStart, st.SelEnd)
		if st.Focused {
			reg.Focus()
		}
	}
}

// HardReset zeroes every rendered region and the container. Invoked
// when a restoration pass fails: a consistent-but-wrong state is safer
// than a partially-applied one.
func (t *ScrollTracker) HardReset(r Renderer) {
	r.SetContainerScrollTop(0)
	for _, id := range r.RegionIDs() {
		if reg, ok := r.FindRegion(id); ok {
			reg.SetScrollTop(0)
		}
	}
}
