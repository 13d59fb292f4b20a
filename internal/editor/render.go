package editor

import "github.com/codeAlphaBravosite/Notepad2/internal/note"

// Region is a handle to one rendered toggle's viewport. Handles are
// resolved fresh through Renderer.FindRegion at every use: a handle is
// never trusted across a re-render, because re-rendering destroys and
// recreates the underlying widgets.
type Region interface {
	ScrollTop() int
	SetScrollTop(top int)
	ScrollHeight() int
	TextContent() string
	Selection() (start, end int)
	SetSelection(start, end int)
	Focused() bool
	Focus()
}

// Renderer is the engine's view collaborator. RenderToggleList must be
// idempotent and synchronous enough that "immediately after render"
// is a meaningful restoration point.
type Renderer interface {
	// RenderToggleList destroys and recreates all region widgets from
	// the note's current toggle list.
	RenderToggleList(n *note.Note)

	// FindRegion resolves a toggle's region, reporting false when the
	// toggle is closed or no longer exists.
	FindRegion(toggleID int64) (Region, bool)

	// RegionIDs lists the currently rendered regions in render order.
	RegionIDs() []int64

	ContainerScrollTop() int
	SetContainerScrollTop(top int)
}
