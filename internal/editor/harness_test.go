package editor

import (
	"time"

	"github.com/codeAlphaBravosite/Notepad2/internal/note"
)

// fakeRegion is an in-memory region handle for engine tests.
type fakeRegion struct {
	id       int64
	content  string
	top      int
	height   int
	selStart int
	selEnd   int
	focused  bool
}

func (r *fakeRegion) ScrollTop() int            { return r.top }
func (r *fakeRegion) SetScrollTop(top int)      { r.top = top }
func (r *fakeRegion) ScrollHeight() int         { return r.height }
func (r *fakeRegion) TextContent() string       { return r.content }
func (r *fakeRegion) Selection() (int, int)     { return r.selStart, r.selEnd }
func (r *fakeRegion) SetSelection(s, e int)     { r.selStart, r.selEnd = s, e }
func (r *fakeRegion) Focused() bool             { return r.focused }
func (r *fakeRegion) Focus()                    { r.focused = true }

// fakeRenderer simulates the destroy-and-recreate rendering model:
// RenderToggleList rebuilds all regions from the note, resetting
// viewport state exactly like a real re-render would.
type fakeRenderer struct {
	regions      []*fakeRegion
	containerTop int
	renders      int
	heights      map[int64]int // post-render scrollHeight overrides
	panicOnFind  bool
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{heights: map[int64]int{}}
}

func (r *fakeRenderer) RenderToggleList(n *note.Note) {
	r.renders++
	r.regions = nil
	for _, t := range n.Toggles {
		if !t.IsOpen {
			continue
		}
		h := len(t.Content)
		if oh, ok := r.heights[t.ID]; ok {
			h = oh
		}
		r.regions = append(r.regions, &fakeRegion{id: t.ID, content: t.Content, height: h})
	}
}

func (r *fakeRenderer) FindRegion(id int64) (Region, bool) {
	if r.panicOnFind {
		panic("renderer exploded")
	}
	for _, reg := range r.regions {
		if reg.id == id {
			return reg, true
		}
	}
	return nil, false
}

func (r *fakeRenderer) RegionIDs() []int64 {
	ids := make([]int64, len(r.regions))
	for i, reg := range r.regions {
		ids[i] = reg.id
	}
	return ids
}

func (r *fakeRenderer) ContainerScrollTop() int       { return r.containerTop }
func (r *fakeRenderer) SetContainerScrollTop(top int) { r.containerTop = top }

func (r *fakeRenderer) region(id int64) *fakeRegion {
	for _, reg := range r.regions {
		if reg.id == id {
			return reg
		}
	}
	return nil
}

// manualScheduler queues deferred calls for deterministic firing.
type manualScheduler struct {
	queue []*manualCall
}

type manualCall struct {
	d         time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (s *manualScheduler) After(d time.Duration, fn func()) CancelFunc {
	c := &manualCall{d: d, fn: fn}
	s.queue = append(s.queue, c)
	return func() bool {
		if c.fired || c.cancelled {
			return false
		}
		c.cancelled = true
		return true
	}
}

// fireNext runs the oldest live deferred call, if any.
func (s *manualScheduler) fireNext() bool {
	for _, c := range s.queue {
		if !c.fired && !c.cancelled {
			c.fired = true
			c.fn()
			return true
		}
	}
	return false
}

// fireAll drains the queue, including calls scheduled while draining.
func (s *manualScheduler) fireAll() {
	for s.fireNext() {
	}
}

// liveCount returns the number of scheduled-but-unfired calls.
func (s *manualScheduler) liveCount() int {
	n := 0
	for _, c := range s.queue {
		if !c.fired && !c.cancelled {
			n++
		}
	}
	return n
}

func twoToggleNote() *note.Note {
	n := note.New("test note")
	n.Toggles = []note.Toggle{
		{ID: 1, Title: "first", Content: "alpha\nbeta\ngamma", IsOpen: true},
		{ID: 2, Title: "second", Content: "delta", IsOpen: true},
		{ID: 3, Title: "closed", Content: "hidden", IsOpen: false},
	}
	return n
}
