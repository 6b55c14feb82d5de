package editor

import (
	"errors"
	"reflect"
	"testing"
)

type Base struct {
	ID uint32
}

type opaque struct{ n int }

type vec2f struct{ X, Y float32 }

type rgba struct{ R, G, B, A float32 }

type sample struct {
	Base
	Name     string
	Enabled  bool
	Count    int16
	Speed    float64
	Offset   Vector2
	Position Vector3
	Scale    vec2f
	Tint     Color
	Glow     rgba
	Blob     opaque
	Hidden   string `edit:"-"`
	Locked   int    `edit:",readonly"`
	Renamed  string `edit:"Display Name"`
	Tags     []string
	private  int

	period float64
	label  string
}

func (s *sample) Period() float64 { return s.period }

func (s *sample) SetPeriod(v float64) error {
	if v < 0 {
		return errors.New("negative period")
	}
	s.period = v
	return nil
}

func (s *sample) Label() string     { return s.label }
func (s *sample) SetLabel(v string) { s.label = v }

// getter without a setter
func (s *sample) Computed() int { return 4 }

// setter with the wrong type
func (s *sample) Mismatch() int        { return 0 }
func (s *sample) SetMismatch(v string) {}

func names(ms []Member) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

func TestMembersOrderAndFilter(t *testing.T) {
	r := NewRegistry()
	s := &sample{}
	ms, err := r.Members(s)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := []string{"ID", "Name", "Enabled", "Count", "Speed", "Offset", "Position", "Scale", "Tint", "Glow", "Display Name", "Label", "Period"}
	if !reflect.DeepEqual(names(ms), want) {
		t.Fatalf("unexpected members:\n got %v\nwant %v", names(ms), want)
	}
}

func TestMembersKinds(t *testing.T) {
	r := NewRegistry()
	ms, err := r.Members(&sample{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	kinds := map[string]Kind{}
	for _, m := range ms {
		kinds[m.Name] = m.Kind
	}
	want := map[string]Kind{
		"ID": KindInteger, "Name": KindString, "Enabled": KindBool, "Count": KindInteger,
		"Speed": KindFloat, "Offset": KindVector2, "Position": KindVector3, "Scale": KindVector2,
		"Tint": KindColor, "Glow": KindColor, "Period": KindFloat,
	}
	for name, k := range want {
		if kinds[name] != k {
			t.Errorf("%s: got kind %v, want %v", name, kinds[name], k)
		}
	}
}

func TestRegisteredCompositeIsDiscovered(t *testing.T) {
	r := NewRegistry()
	r.RegisterComposite(opaque{}, "")
	ms, _ := r.Members(&sample{})
	var found *Member
	for i := range ms {
		if ms[i].Name == "Blob" {
			found = &ms[i]
		}
	}
	if found == nil || found.Kind != KindComposite || found.Editor != EditorObject {
		t.Fatalf("expected Blob as composite with the object editor, got %+v", found)
	}
}

func TestMembersGetSet(t *testing.T) {
	r := NewRegistry()
	s := &sample{Base: Base{ID: 3}, Name: "a"}
	ms, _ := r.Members(s)
	byName := map[string]Member{}
	for _, m := range ms {
		byName[m.Name] = m
	}

	if err := byName["Name"].Set(reflect.ValueOf("b")); err != nil || s.Name != "b" {
		t.Fatalf("expected field write, got %v %q", err, s.Name)
	}
	if err := byName["ID"].Set(reflect.ValueOf(uint32(9))); err != nil || s.ID != 9 {
		t.Fatalf("expected promoted field write, got %v %d", err, s.ID)
	}
	if err := byName["Label"].Set(reflect.ValueOf("x")); err != nil || s.label != "x" {
		t.Fatalf("expected property write, got %v %q", err, s.label)
	}
	v, err := byName["Label"].Value()
	if err != nil || v != "x" {
		t.Fatalf("expected property read, got %v %v", v, err)
	}
}

func TestMemberSetErrors(t *testing.T) {
	r := NewRegistry()
	s := &sample{}
	ms, _ := r.Members(s)
	byName := map[string]Member{}
	for _, m := range ms {
		byName[m.Name] = m
	}

	err := byName["Period"].Set(reflect.ValueOf(-1.0))
	var se *SchemaError
	if !errors.As(err, &se) || se.Member != "Period" || se.Op != "set" {
		t.Fatalf("expected schema error from setter, got %v", err)
	}

	err = byName["Name"].Set(reflect.ValueOf(12))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	err = byName["Speed"].Set(reflect.ValueOf(float32(2)))
	if err != nil || s.Speed != 2 {
		t.Fatalf("expected float32 to convert into float64, got %v", err)
	}
}

func TestMembersRejectsNonPointers(t *testing.T) {
	r := NewRegistry()
	for _, target := range []any{sample{}, (*sample)(nil), nil, new(int)} {
		if _, err := r.Members(target); !errors.Is(err, ErrNotAddressable) {
			t.Errorf("Members(%T) = %v, want ErrNotAddressable", target, err)
		}
	}
}

type withNilEmbed struct {
	*Base
	Name string
}

func TestMembersSkipsFieldsBehindNilEmbeddedPointer(t *testing.T) {
	r := NewRegistry()
	ms, err := r.Members(&withNilEmbed{})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := names(ms); len(got) != 1 || got[0] != "Name" {
		t.Fatalf("expected only Name, got %v", got)
	}
	ms, _ = r.Members(&withNilEmbed{Base: &Base{}})
	if got := names(ms); len(got) != 2 || got[0] != "ID" {
		t.Fatalf("expected ID then Name, got %v", got)
	}
}

func TestClassifyShapes(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		v    any
		want Kind
	}{
		{struct{ X, Y float64 }{}, KindVector2},
		{struct{ X, Y, Z float32 }{}, KindVector3},
		{struct{ R, G, B, A float64 }{}, KindColor},
		{struct{ X, Y int }{}, KindUnsupported},
		{struct{ X, Y, W float64 }{}, KindUnsupported},
		{map[string]int{}, KindUnsupported},
		{int8(0), KindInteger},
		{uint64(0), KindInteger},
	}
	for _, tc := range cases {
		if got := r.Classify(reflect.TypeOf(tc.v)).Kind; got != tc.want {
			t.Errorf("Classify(%T) = %v, want %v", tc.v, got, tc.want)
		}
	}
	if r.Classify(nil).Kind != KindUnsupported {
		t.Errorf("expected nil type unsupported")
	}
}

type rig struct {
	settings string
	setpoint float32
}

func (r *rig) Settings() string      { return r.settings }
func (r *rig) SetSettings(v string)  { r.settings = v }
func (r *rig) Setpoint() float32     { return r.setpoint }
func (r *rig) SetSetpoint(v float32) { r.setpoint = v }

func TestMembersKeepsPropertiesNamedSet(t *testing.T) {
	r := NewRegistry()
	g := &rig{}
	ms, err := r.Members(g)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := names(ms); !reflect.DeepEqual(got, []string{"Setpoint", "Settings"}) {
		t.Fatalf("expected both properties, got %v", got)
	}
	if err := ms[1].Set(reflect.ValueOf("fast")); err != nil || g.settings != "fast" {
		t.Fatalf("expected property write, got %v %q", err, g.settings)
	}
}
