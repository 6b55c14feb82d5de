package editor

// Tone selects the emphasis a surface uses for a label.
type Tone int

const (
	ToneNormal Tone = iota
	// ToneAlert is used for the failure glyph of a gated button.
	ToneAlert
	// ToneConfirm is used for the success glyph of a gated button.
	ToneConfirm
)

// Style carries per-widget drawing hints.
type Style struct {
	Disabled bool
	Tone     Tone
}

// Surface is the drawing capability of a host. Every call draws one
// primitive and returns the post-interaction value for this pass.
// Implementations must not retain the rectangles between passes.
type Surface interface {
	DrawLabel(r Rect, text string, st Style)
	// DrawButton reports whether the button was clicked in this pass.
	DrawButton(r Rect, text string, st Style) bool
	// DrawTextBox returns the text the box holds after this pass's input.
	DrawTextBox(r Rect, text string, st Style) string
	// DrawToggle returns the toggle value after this pass's input.
	DrawToggle(r Rect, value bool, label string, st Style) bool
	DrawSeparator(r Rect, st Style)
	// BeginScroll opens a clip region showing view over content.
	BeginScroll(view, content Rect)
	EndScroll()
}
