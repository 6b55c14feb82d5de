package tui

import (
	"fmt"
	"reflect"

	"propedit/internal/editor"
	"propedit/internal/tui/util"
)

// Window is one editor window on the stack. Each window keeps its own
// render state so slots and pending text never leak between windows.
type Window struct {
	Title string
	Draw  func(ui *editor.UI) error

	state  *editor.RenderState
	closed bool
}

// Close removes the window from the stack after the current pass.
func (w *Window) Close() { w.closed = true }

// SubEditor opens a window that edits the value carried by req and calls
// req.Complete when the user applies it.
type SubEditor func(req editor.EditRequest) (*Window, error)

func builtinEditors(noColor bool) map[string]SubEditor {
	return map[string]SubEditor{
		editor.EditorObject: objectEditor,
		editor.EditorColor:  colorEditor(noColor),
		editor.EditorFile:   fileEditor,
	}
}

// workingCopy returns a pointer the sub-editor can render in place and a
// function producing the value to hand back. Pointer members are copied
// shallowly; a nil pointer starts from the zero value.
func workingCopy(req editor.EditRequest) (target any, result func() any, err error) {
	t := req.Type
	switch {
	case t.Kind() == reflect.Struct:
		p := reflect.New(t)
		if rv := reflect.ValueOf(req.Value); rv.IsValid() && rv.Type() == t {
			p.Elem().Set(rv)
		}
		return p.Interface(), func() any { return p.Elem().Interface() }, nil
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		p := reflect.New(t.Elem())
		if rv := reflect.ValueOf(req.Value); rv.IsValid() && rv.Type() == t && !rv.IsNil() {
			p.Elem().Set(rv.Elem())
		}
		return p.Interface(), func() any { return p.Interface() }, nil
	}
	return nil, nil, fmt.Errorf("%s: %w", t, editor.ErrUnsupported)
}

// footer draws the buttons that close a sub-editor.
func footer(ui *editor.UI, w *Window, req editor.EditRequest, result func() any) error {
	var err error
	ui.Separator(0)
	ui.Button("Apply", func() {
		err = req.Complete(result())
		w.Close()
	})
	ui.SameLine()
	ui.Button("Cancel", w.Close, editor.Column(editor.RightColumn, 100))
	if req.Type.Kind() == reflect.Pointer {
		ui.SameLine()
		ui.Button("Clear", func() {
			err = req.Complete(nil)
			w.Close()
		}, editor.Column(editor.RightColumn+100, 100))
	}
	return err
}

func objectEditor(req editor.EditRequest) (*Window, error) {
	target, result, err := workingCopy(req)
	if err != nil {
		return nil, err
	}
	w := &Window{Title: req.Member}
	w.Draw = func(ui *editor.UI) error {
		if err := ui.RenderObject(target); err != nil {
			return err
		}
		return footer(ui, w, req, result)
	}
	return w, nil
}

func colorEditor(noColor bool) SubEditor {
	return func(req editor.EditRequest) (*Window, error) {
		target, result, err := workingCopy(req)
		if err != nil {
			return nil, err
		}
		w := &Window{Title: req.Member}
		w.Draw = func(ui *editor.UI) error {
			if err := ui.RenderObject(target); err != nil {
				return err
			}
			ui.Label("Preview")
			ui.SameLine()
			hex := colorOf(reflect.ValueOf(target).Elem()).Hex()
			ui.Label(util.Swatch(hex, 6, noColor), editor.Column(editor.RightColumn, 60))
			return footer(ui, w, req, result)
		}
		return w, nil
	}
}

// colorOf reads the R, G, B and A fields of any color-shaped struct.
func colorOf(v reflect.Value) editor.Color {
	ch := func(name string) float64 {
		f := v.FieldByName(name)
		if !f.IsValid() || !f.CanFloat() {
			return 0
		}
		return f.Float()
	}
	return editor.Color{R: ch("R"), G: ch("G"), B: ch("B"), A: ch("A")}
}
