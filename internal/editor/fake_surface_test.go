package editor

type drawOp struct {
	kind  string
	rect  Rect
	text  string
	style Style
}

// fakeSurface replays scripted input: clicks by button text, text and
// toggle values by the ordinal of the box within the pass.
type fakeSurface struct {
	ops []drawOp

	clicks  map[string]bool
	texts   map[int]string
	toggles map[int]bool

	boxN    int
	toggleN int
}

func newFake() *fakeSurface {
	return &fakeSurface{clicks: map[string]bool{}, texts: map[int]string{}, toggles: map[int]bool{}}
}

// next resets the per-pass counters and recorded ops.
func (f *fakeSurface) next() {
	f.ops = nil
	f.boxN = 0
	f.toggleN = 0
	f.clicks = map[string]bool{}
	f.texts = map[int]string{}
	f.toggles = map[int]bool{}
}

func (f *fakeSurface) DrawLabel(r Rect, text string, st Style) {
	f.ops = append(f.ops, drawOp{"label", r, text, st})
}

func (f *fakeSurface) DrawButton(r Rect, text string, st Style) bool {
	f.ops = append(f.ops, drawOp{"button", r, text, st})
	return f.clicks[text]
}

func (f *fakeSurface) DrawTextBox(r Rect, text string, st Style) string {
	f.ops = append(f.ops, drawOp{"text", r, text, st})
	n := f.boxN
	f.boxN++
	if v, ok := f.texts[n]; ok {
		return v
	}
	return text
}

func (f *fakeSurface) DrawToggle(r Rect, value bool, label string, st Style) bool {
	f.ops = append(f.ops, drawOp{"toggle", r, label, st})
	n := f.toggleN
	f.toggleN++
	if v, ok := f.toggles[n]; ok {
		return v
	}
	return value
}

func (f *fakeSurface) DrawSeparator(r Rect, st Style) {
	f.ops = append(f.ops, drawOp{"separator", r, "", st})
}

func (f *fakeSurface) BeginScroll(view, content Rect) {
	f.ops = append(f.ops, drawOp{"scroll", content, "", Style{}})
}

func (f *fakeSurface) EndScroll() {
	f.ops = append(f.ops, drawOp{"endscroll", Rect{}, "", Style{}})
}

func (f *fakeSurface) find(kind, text string) (drawOp, bool) {
	for _, op := range f.ops {
		if op.kind == kind && op.text == text {
			return op, true
		}
	}
	return drawOp{}, false
}

func (f *fakeSurface) ofKind(kind string) []drawOp {
	var out []drawOp
	for _, op := range f.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// pass runs draw as one pass on a fresh UI.
func pass(st *RenderState, f *fakeSurface, draw func(ui *UI), opts ...UIOption) {
	st.Begin()
	draw(NewUI(st, f, opts...))
}
