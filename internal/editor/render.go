package editor

import "reflect"

// Frame runs one pass over state: it rewinds the cursor, builds a UI for
// surface and calls draw.
func Frame(state *RenderState, surface Surface, draw func(ui *UI) error, opts ...UIOption) error {
	state.Begin()
	return draw(NewUI(state, surface, opts...))
}

// RenderObject draws an editor for every member of target and writes
// edits back in place. Members are discovered again on every call.
//
// Bad input never produces an error here. Reflection failures do: a
// member that cannot be read or written, or a setter that returns an
// error, stops the pass and is returned as a *SchemaError.
func (ui *UI) RenderObject(target any) error {
	members, err := ui.Registry.Members(target)
	if err != nil {
		return err
	}
	for _, m := range members {
		fn := ui.Registry.renderer(m.Kind)
		if fn == nil {
			continue
		}
		if err := fn(ui, m); err != nil {
			return err
		}
	}
	return nil
}

func renderScalar(ui *UI, m Member) error {
	v, err := m.Get()
	if err != nil {
		return err
	}
	ui.Label(m.Name)
	ui.SameLine()
	return ui.Field(v, m.Set, Column(RightColumn, ControlWidth))
}

var (
	vector2Columns = []float64{200, 285}
	vector3Columns = []float64{200, 260, 320}
)

func renderVector(ui *UI, m Member) error {
	v, err := m.Get()
	if err != nil {
		return err
	}
	coords, cols := []string{"X", "Y"}, vector2Columns
	if m.Kind == KindVector3 {
		coords, cols = []string{"X", "Y", "Z"}, vector3Columns
	}

	ui.Label(m.Name)
	for i, name := range coords {
		name := name
		ui.SameLine()
		err := ui.Field(v.FieldByName(name), func(c reflect.Value) error {
			// rebuild from the live value so coordinates committed
			// earlier in this pass are kept
			live, err := m.Get()
			if err != nil {
				return err
			}
			next := reflect.New(m.Type).Elem()
			next.Set(live)
			next.FieldByName(name).Set(c)
			return m.Set(next)
		}, Column(cols[i], 50))
		if err != nil {
			return err
		}
	}
	return nil
}

func renderDelegated(ui *UI, m Member) error {
	ui.Label(m.Name)
	ui.SameLine()

	var err error
	var onClick func()
	if ui.Router != nil {
		onClick = func() {
			cur, gerr := m.Value()
			if gerr != nil {
				err = gerr
				return
			}
			ui.log.Debug("delegating member", "member", m.Name, "editor", m.Editor)
			ui.Router.Delegate(EditRequest{
				Editor: m.Editor,
				Member: m.Name,
				Type:   m.Type,
				Value:  cur,
				Complete: func(v any) error {
					if v == nil {
						return m.Set(zeroOf(m.Type))
					}
					return m.Set(reflect.ValueOf(v))
				},
			})
		}
	}
	ui.Button("Edit", onClick, Column(RightColumn, 50))
	return err
}

// zeroOf returns the zero value of nilable types and an invalid value for
// the rest, which Set rejects.
func zeroOf(t reflect.Type) reflect.Value {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return reflect.Zero(t)
	}
	return reflect.Value{}
}
