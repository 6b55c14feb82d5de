package editor

import "log/slog"

// DefaultWidth is the window width assumed when none is configured.
const DefaultWidth = 420

// UI binds one window's RenderState to a Surface for the duration of a
// pass. It is cheap to build; hosts usually build one per pass.
type UI struct {
	State    *RenderState
	Surface  Surface
	Registry *Registry
	Router   Router
	Width    float64

	log *slog.Logger
}

// UIOption configures a UI.
type UIOption func(*UI)

// WithRouter sets the router that receives sub-editor hand-offs.
func WithRouter(r Router) UIOption { return func(ui *UI) { ui.Router = r } }

// WithRegistry replaces the default kind registry.
func WithRegistry(r *Registry) UIOption { return func(ui *UI) { ui.Registry = r } }

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) UIOption {
	return func(ui *UI) {
		if l != nil {
			ui.log = l
		}
	}
}

// WithWidth sets the window width used by full-width widgets.
func WithWidth(w float64) UIOption {
	return func(ui *UI) {
		if w > 0 {
			ui.Width = w
		}
	}
}

// NewUI returns a UI drawing state onto surface.
func NewUI(state *RenderState, surface Surface, opts ...UIOption) *UI {
	ui := &UI{
		State:    state,
		Surface:  surface,
		Registry: NewRegistry(),
		Width:    DefaultWidth,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(ui)
	}
	return ui
}

// Option overrides where a widget is drawn.
type Option func(*placement)

type placement struct {
	rect   *Rect
	x, w   float64
	column bool
}

// WithRect draws the widget at an explicit rectangle. The cursor still
// advances.
func WithRect(r Rect) Option {
	return func(p *placement) { p.rect = &r }
}

// Column draws the widget at column x with the given width on the
// cursor's line.
func Column(x, width float64) Option {
	return func(p *placement) {
		p.x, p.w = x, width
		p.column = true
	}
}

// SameLine draws the next widget on the line of the previous one.
func (ui *UI) SameLine() { ui.State.Cursor.SameLine() }

// place takes the next cursor slot and resolves the widget rectangle.
func (ui *UI) place(x, width float64, opts []Option) (int, Rect) {
	var p placement
	for _, o := range opts {
		o(&p)
	}
	c := &ui.State.Cursor
	idx := c.Advance()
	switch {
	case p.rect != nil:
		return idx, *p.rect
	case p.column:
		return idx, c.RectAt(p.x, c.Line, p.w, RowControlH)
	default:
		return idx, c.RectAt(x, c.Line, width, RowControlH)
	}
}

func (ui *UI) style() Style { return Style{Disabled: ui.State.Error} }

// Label draws static text in the left column.
func (ui *UI) Label(text string, opts ...Option) {
	_, r := ui.place(LeftColumn, LabelWidth, opts)
	ui.Surface.DrawLabel(r, text, ui.style())
}

// Button draws a clickable control. onClick runs when the button is
// clicked while enabled; a nil onClick makes the button inert.
func (ui *UI) Button(text string, onClick func(), opts ...Option) {
	st := ui.style()
	_, r := ui.place(LeftColumn, LabelWidth, opts)
	if ui.Surface.DrawButton(r, text, st) && !st.Disabled && onClick != nil {
		onClick()
	}
}

// DependencyButton draws a button whose availability depends on check.
//
// The label is okText while check passes and failText otherwise. The
// button is interactive only while check passes and no earlier gate failed
// in this pass. After onClick runs, check is evaluated again and the glyph
// drawn beside the button reflects that post-click result.
//
// A failing check sets the window's Error flag, which disables every
// widget drawn after it in the same pass, including widgets unrelated to
// this dependency. The effect is global to the pass, not scoped.
//
// A nil check draws nothing and takes no slot. A nil onClick draws an
// inert button that still gates.
func (ui *UI) DependencyButton(okText, failText string, onClick func(), check func() bool, opts ...Option) {
	if check == nil {
		return
	}
	ok := check()
	st := ui.style()
	text := okText
	if !ok {
		text = failText
		st.Disabled = true
	}
	idx, r := ui.place(LeftColumn, LabelWidth, opts)
	if ui.Surface.DrawButton(r, text, st) && !st.Disabled && onClick != nil {
		onClick()
		ok = check()
		ui.log.Debug("gated action", "slot", idx, "label", okText, "ok", ok)
	}

	glyph := Rect{X: GlyphColumn, Y: r.Y, Width: LabelWidth, Height: r.Height}
	if !ok {
		ui.State.failGate()
		ui.Surface.DrawLabel(glyph, "!", Style{Tone: ToneAlert})
		return
	}
	ui.Surface.DrawLabel(glyph, "✓", Style{Tone: ToneConfirm})
}

// Separator draws a decorative horizontal line.
func (ui *UI) Separator(height float64, opts ...Option) {
	_, r := ui.place(10, ui.Width-20, opts)
	if height > 0 {
		r.Height = height
	}
	ui.Surface.DrawSeparator(r, ui.style())
}

// BeginScrollView opens a scroll region of viewHeight below the title
// bar. The content height is the one measured by the previous pass.
func (ui *UI) BeginScrollView(viewHeight float64) {
	view := Rect{X: 10, Y: 30, Width: ui.Width - 20, Height: viewHeight}
	content := Rect{Width: ui.Width - 40, Height: ui.State.ContentHeight()}
	ui.Surface.BeginScroll(view, content)
}

// EndScrollView closes the region opened by BeginScrollView.
func (ui *UI) EndScrollView() { ui.Surface.EndScroll() }
