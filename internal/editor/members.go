package editor

import (
	"fmt"
	"reflect"
	"strings"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Member is one editable member of a target: an exported field or a
// getter/setter property pair.
type Member struct {
	Name   string
	Kind   Kind
	Type   reflect.Type
	Editor string

	get func() (reflect.Value, error)
	set func(reflect.Value) error
}

// Get reads the live value of the member.
func (m Member) Get() (reflect.Value, error) {
	v, err := m.get()
	return v, schemaErr(m.Name, "get", err)
}

// Value reads the live value of the member as an interface.
func (m Member) Value() (any, error) {
	v, err := m.Get()
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Set writes v into the member. v must be assignable to the member type
// or convertible to it within the same numeric family.
func (m Member) Set(v reflect.Value) error {
	if !v.IsValid() {
		return schemaErr(m.Name, "set", ErrTypeMismatch)
	}
	if v.Type() != m.Type {
		switch {
		case v.Type().AssignableTo(m.Type):
		case sameFamily(v.Kind(), m.Type.Kind()) && v.Type().ConvertibleTo(m.Type):
			v = v.Convert(m.Type)
		default:
			return schemaErr(m.Name, "set", fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, v.Type(), m.Type))
		}
	}
	return schemaErr(m.Name, "set", m.set(v))
}

func sameFamily(a, b reflect.Kind) bool {
	return a == b || family(a) != 0 && family(a) == family(b)
}

func family(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return 2
	case reflect.Float32, reflect.Float64:
		return 3
	}
	return 0
}

// Members discovers the editable members of target, which must be a
// non-nil pointer to a struct.
//
// Exported fields come first in declaration order, promoted fields of
// embedded structs included. They are followed by properties: an exported
// getter Name() T paired with SetName(T) or SetName(T) error, in method
// order. Fields tagged edit:"-" or edit:",readonly", getters without a
// setter and members whose type does not classify are left out. A tag
// name (edit:"Display Name") replaces the member name.
func (r *Registry) Members(target any) ([]Member, error) {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return nil, schemaErr("", "discover", ErrNotAddressable)
	}
	elem := ptr.Elem()

	var out []Member
	for _, sf := range reflect.VisibleFields(elem.Type()) {
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		name, skip := parseEditTag(sf)
		if skip {
			continue
		}
		b := r.Classify(sf.Type)
		if b.Kind == KindUnsupported {
			continue
		}
		fv, err := elem.FieldByIndexErr(sf.Index)
		if err != nil || !fv.CanSet() {
			// behind a nil embedded pointer, or not writable
			continue
		}
		index := sf.Index
		out = append(out, Member{
			Name:   name,
			Kind:   b.Kind,
			Type:   sf.Type,
			Editor: b.Editor,
			get: func() (reflect.Value, error) {
				return elem.FieldByIndexErr(index)
			},
			set: func(v reflect.Value) error {
				f, err := elem.FieldByIndexErr(index)
				if err != nil {
					return err
				}
				f.Set(v)
				return nil
			},
		})
	}

	pt := ptr.Type()
	for i := 0; i < pt.NumMethod(); i++ {
		m, ok := r.property(ptr, pt.Method(i))
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *Registry) property(ptr reflect.Value, getter reflect.Method) (Member, bool) {
	gt := getter.Type
	if gt.NumIn() != 1 || gt.NumOut() != 1 {
		return Member{}, false
	}
	vt := gt.Out(0)
	setter, ok := ptr.Type().MethodByName("Set" + getter.Name)
	if !ok {
		return Member{}, false
	}
	st := setter.Type
	if st.NumIn() != 2 || st.In(1) != vt {
		return Member{}, false
	}
	if st.NumOut() > 1 || (st.NumOut() == 1 && st.Out(0) != errorType) {
		return Member{}, false
	}
	b := r.Classify(vt)
	if b.Kind == KindUnsupported {
		return Member{}, false
	}
	get := ptr.Method(getter.Index)
	set := ptr.Method(setter.Index)
	return Member{
		Name:   getter.Name,
		Kind:   b.Kind,
		Type:   vt,
		Editor: b.Editor,
		get: func() (reflect.Value, error) {
			return get.Call(nil)[0], nil
		},
		set: func(v reflect.Value) error {
			res := set.Call([]reflect.Value{v})
			if len(res) == 1 && !res[0].IsNil() {
				return res[0].Interface().(error)
			}
			return nil
		},
	}, true
}

func parseEditTag(sf reflect.StructField) (name string, skip bool) {
	tag, ok := sf.Tag.Lookup("edit")
	if !ok {
		return sf.Name, false
	}
	if tag == "-" {
		return "", true
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "readonly" {
			return "", true
		}
	}
	if n := strings.TrimSpace(parts[0]); n != "" {
		return n, false
	}
	return sf.Name, false
}
