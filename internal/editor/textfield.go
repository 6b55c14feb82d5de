package editor

import (
	"errors"
	"math"
	"reflect"
	"strconv"
)

// Scalar is the set of types a TextField can edit.
type Scalar interface {
	~float32 | ~float64 |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~bool | ~string
}

var (
	errNotFinite = errors.New("not a finite number")
	errHexFloat  = errors.New("hexadecimal float literal")
)

// TextField draws an input for def and commits a value of the same type
// every pass.
//
// Text that parses into V is committed and forgotten. Text that does not
// parse is remembered for this slot and shown again on the next pass while
// def is committed, so a half-typed literal never reaches the target and
// is never overwritten by the formatted default. Booleans are drawn as a
// toggle and never cached. The cursor advances exactly once.
func TextField[V Scalar](ui *UI, def V, onCommit func(V), opts ...Option) {
	_ = ui.Field(reflect.ValueOf(def), func(v reflect.Value) error {
		if onCommit != nil {
			onCommit(v.Interface().(V))
		}
		return nil
	}, opts...)
}

// Field is the reflective form of TextField. commit always receives a
// value of def's type; its error is returned unchanged. A kind the field
// cannot parse commits the zero value of the type.
func (ui *UI) Field(def reflect.Value, commit func(reflect.Value) error, opts ...Option) error {
	if ui.State.Cache == nil {
		ui.State.Cache = NewParseCache()
	}
	st := ui.style()
	idx, r := ui.place(LeftColumn, FieldWidth, opts)
	if !def.IsValid() {
		ui.Surface.DrawTextBox(r, "", Style{Disabled: true})
		return nil
	}
	t := def.Type()

	if t.Kind() == reflect.Bool {
		v := ui.Surface.DrawToggle(r, def.Bool(), "", st)
		if st.Disabled {
			v = def.Bool()
		}
		out := reflect.New(t).Elem()
		out.SetBool(v)
		return commit(out)
	}

	base, ok := FormatScalar(def)
	if !ok {
		ui.Surface.DrawTextBox(r, "", Style{Disabled: true})
		return commit(reflect.Zero(t))
	}
	shown := base
	if pending, ok := ui.State.Cache.lookup(idx, base); ok {
		shown = pending
	}
	raw := ui.Surface.DrawTextBox(r, shown, st)
	if st.Disabled {
		raw = shown
	}

	parsed, err := ParseScalar(raw, t)
	if err != nil {
		ui.State.Cache.set(idx, raw, base)
		ui.log.Debug("input kept unparsed", "slot", idx, "type", t.String(), "text", raw)
		return commit(def)
	}
	ui.State.Cache.Clear(idx)
	return commit(parsed)
}

// FormatScalar returns the canonical text of v. ok is false for kinds a
// text field cannot edit.
func FormatScalar(v reflect.Value) (string, bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true
	default:
		return "", false
	}
}

// ParseScalar parses text into a new value of type t. Floats take decimal
// or exponent literals within range, integers take base-10 literals within
// the bit width of t, strings take any text.
func ParseScalar(text string, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(text, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if isHex(text) {
			return reflect.Value{}, errHexFloat
		}
		f, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return reflect.Value{}, errNotFinite
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, ErrUnsupported
	}
	return out, nil
}

func isHex(text string) bool {
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	return len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}
