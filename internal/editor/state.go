// Package editor is an immediate-mode, reflection-driven property editor.
//
// A host calls into it once per redraw (a pass). Each pass walks the
// editable members of a target value, draws one widget per member on a
// Surface and writes user edits straight back into the target.
//
// State that must survive between passes lives in a RenderState owned by
// the hosting window; it is passed explicitly to every widget call and is
// never shared between windows.
package editor

// RenderState is the per-window state of the editor.
type RenderState struct {
	Cursor Cursor
	// Error disables every input-affecting widget drawn after it was set
	// in the current pass. Only dependency-gated buttons set it.
	Error bool
	Cache *ParseCache

	gateFailures int
	lastLines    int
}

// NewRenderState returns state for one window.
func NewRenderState(rowHeight float64) *RenderState {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	return &RenderState{
		Cursor: Cursor{RowHeight: rowHeight},
		Cache:  NewParseCache(),
	}
}

// Begin starts a pass: the cursor goes back to the top and the gate error
// flag is re-derived from the gates drawn in this pass.
func (s *RenderState) Begin() {
	s.lastLines = s.Cursor.Lines()
	s.Cursor.Reset()
	s.Error = false
	s.gateFailures = 0
	if s.Cache == nil {
		s.Cache = NewParseCache()
	}
}

// ContentHeight is the height used by the previous pass.
func (s *RenderState) ContentHeight() float64 {
	return float64(s.lastLines)*s.Cursor.rowHeight() + 2*TopMargin
}

// GateFailures is the number of dependency checks that failed so far in
// this pass.
func (s *RenderState) GateFailures() int { return s.gateFailures }

func (s *RenderState) failGate() {
	s.gateFailures++
	s.Error = true
}
