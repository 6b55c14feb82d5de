package state

// EditorMode represents the editor's current input mode.
type EditorMode int

const (
	CMD EditorMode = iota
	INSERT
)

// DiffMode controls how the changes diff is rendered.
type DiffMode int

const (
	Unified DiffMode = iota
	SideBySide
)

// UIState holds the per-window UI state shared by the surface, the status
// bar and the overlays.
type UIState struct {
	// Mode & View
	Mode     EditorMode
	View     DiffMode
	ShowDiff bool
	ShowHelp bool

	// Layout & scrolling
	Width    int
	Height   int
	MinCol   int
	ViewRows int
	ScrollV  int

	// Focus ring over interactive widgets
	Focus      int
	Focusables int

	// Pass results
	Pending int  // fields holding unparsed text
	Blocked bool // a dependency check failed
	Edited  bool // the target differs from its snapshot

	// Notices and ephemeral messages
	Notice string
}
