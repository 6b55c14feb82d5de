package editor

import (
	"reflect"
	"sort"
)

// Kind is the closed set of value kinds the renderer dispatches on.
type Kind int

const (
	KindUnsupported Kind = iota
	KindString
	KindBool
	KindInteger
	KindFloat
	KindVector2
	KindVector3
	KindColor
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindVector2:
		return "vector2"
	case KindVector3:
		return "vector3"
	case KindColor:
		return "color"
	case KindComposite:
		return "composite"
	default:
		return "unsupported"
	}
}

// Editor tokens for the built-in sub-editors.
const (
	EditorColor  = "color"
	EditorObject = "object"
	EditorFile   = "file"
)

// Binding is the classification of a member type.
type Binding struct {
	Kind Kind
	// Editor names the sub-editor that edits color and composite values.
	Editor string
}

// RenderFunc draws one member.
type RenderFunc func(ui *UI, m Member) error

// Registry maps types to kinds and kinds to renderers.
type Registry struct {
	types     map[reflect.Type]Binding
	renderers map[Kind]RenderFunc
}

// NewRegistry returns a registry with the built-in vector and color types
// and the default renderer for every kind.
func NewRegistry() *Registry {
	r := &Registry{
		types:     map[reflect.Type]Binding{},
		renderers: map[Kind]RenderFunc{},
	}
	r.Register(reflect.TypeOf(Vector2{}), KindVector2, "")
	r.Register(reflect.TypeOf(Vector3{}), KindVector3, "")
	r.Register(reflect.TypeOf(Color{}), KindColor, EditorColor)

	for _, k := range []Kind{KindString, KindBool, KindInteger, KindFloat} {
		r.renderers[k] = renderScalar
	}
	r.renderers[KindVector2] = renderVector
	r.renderers[KindVector3] = renderVector
	r.renderers[KindColor] = renderDelegated
	r.renderers[KindComposite] = renderDelegated
	return r
}

// Register binds t to kind. editor is the sub-editor token used for color
// and composite kinds.
func (r *Registry) Register(t reflect.Type, kind Kind, editor string) {
	if kind == KindComposite && editor == "" {
		editor = EditorObject
	}
	r.types[t] = Binding{Kind: kind, Editor: editor}
}

// RegisterComposite binds the type of sample as an opaque composite
// edited by the named sub-editor.
func (r *Registry) RegisterComposite(sample any, editor string) {
	r.Register(reflect.TypeOf(sample), KindComposite, editor)
}

// Handle replaces the renderer of a kind.
func (r *Registry) Handle(kind Kind, fn RenderFunc) {
	if fn == nil {
		delete(r.renderers, kind)
		return
	}
	r.renderers[kind] = fn
}

func (r *Registry) renderer(kind Kind) RenderFunc { return r.renderers[kind] }

// Classify returns the binding of t. Explicit registrations win; otherwise
// basic kinds map by their reflect kind and small float structs are
// recognised by shape: {X,Y}, {X,Y,Z} and {R,G,B,A}.
func (r *Registry) Classify(t reflect.Type) Binding {
	if t == nil {
		return Binding{}
	}
	if b, ok := r.types[t]; ok {
		return b
	}
	switch t.Kind() {
	case reflect.String:
		return Binding{Kind: KindString}
	case reflect.Bool:
		return Binding{Kind: KindBool}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Binding{Kind: KindInteger}
	case reflect.Float32, reflect.Float64:
		return Binding{Kind: KindFloat}
	case reflect.Struct:
		switch shape(t) {
		case "X,Y":
			return Binding{Kind: KindVector2}
		case "X,Y,Z":
			return Binding{Kind: KindVector3}
		case "A,B,G,R":
			return Binding{Kind: KindColor, Editor: EditorColor}
		}
	}
	return Binding{}
}

// shape lists the sorted field names of a struct made only of exported
// float fields, or "" otherwise.
func shape(t reflect.Type) string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			return ""
		}
		if k := f.Type.Kind(); k != reflect.Float32 && k != reflect.Float64 {
			return ""
		}
		names = append(names, f.Name)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ","
		}
		out += n
	}
	return out
}
