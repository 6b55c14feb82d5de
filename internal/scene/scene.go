// Package scene is the sample document edited by the command line tool: a
// celestial body with an optional atmosphere.
package scene

import (
	"math"
	"reflect"

	"propedit/internal/document"
	"propedit/internal/editor"
)

// G is the gravitational constant in m³/(kg·s²).
const G = 6.674e-11

// AssetPath is a file path edited with the file picker.
type AssetPath string

// Atmosphere describes the gas envelope of a body.
type Atmosphere struct {
	Height   float64      `toml:"height" json:"height"`
	Pressure float64      `toml:"pressure" json:"pressure"`
	Oxygen   bool         `toml:"oxygen" json:"oxygen"`
	Tint     editor.Color `toml:"tint" json:"tint"`
}

// Body is a celestial body.
type Body struct {
	Name         string         `toml:"name" json:"name"`
	Radius       float64        `toml:"radius" json:"radius"`
	Mass         float64        `toml:"mass" json:"mass"`
	Gravity      float32        `toml:"gravity" json:"gravity"`
	Rotates      bool           `toml:"rotates" json:"rotates"`
	Seed         int32          `toml:"seed" json:"seed"`
	Moons        uint8          `toml:"moons" json:"moons"`
	Position     editor.Vector3 `toml:"position" json:"position"`
	ScaledOffset editor.Vector2 `toml:"scaled_offset" json:"scaled_offset" edit:"Scaled Offset"`
	Tint         editor.Color   `toml:"tint" json:"tint"`
	Texture      AssetPath      `toml:"texture" json:"texture"`
	Atmosphere   *Atmosphere    `toml:"atmosphere,omitempty" json:"atmosphere,omitempty"`

	RotationPeriod float64 `toml:"rotation_period" json:"rotation_period" edit:"-"`
}

// Period is the sidereal rotation period in seconds.
func (b *Body) Period() float64 { return b.RotationPeriod }

// SetPeriod sets the rotation period. Negative periods are stored as 0.
func (b *Body) SetPeriod(v float64) {
	b.RotationPeriod = math.Max(v, 0)
}

// SurfaceGravity derives the surface gravity from mass and radius. ok is
// false when either is not positive.
func (b *Body) SurfaceGravity() (g float64, ok bool) {
	if b.Radius <= 0 || b.Mass <= 0 {
		return 0, false
	}
	return G * b.Mass / (b.Radius * b.Radius), true
}

// Sample returns a fully populated body.
func Sample() *Body {
	return &Body{
		Name:           "Kerbin",
		Radius:         600000,
		Mass:           5.2915158e22,
		Gravity:        9.81,
		Rotates:        true,
		Seed:           42,
		Moons:          2,
		Position:       editor.Vector3{X: 13599840256},
		ScaledOffset:   editor.Vector2{X: 0, Y: 0},
		Tint:           editor.Color{R: 0.2, G: 0.4, B: 0.9, A: 1},
		Texture:        "textures/kerbin.png",
		RotationPeriod: 21549.425,
		Atmosphere:     DefaultAtmosphere(),
	}
}

// DefaultAtmosphere returns a breathable atmosphere.
func DefaultAtmosphere() *Atmosphere {
	return &Atmosphere{
		Height:   70000,
		Pressure: 101.325,
		Oxygen:   true,
		Tint:     editor.Color{R: 0.6, G: 0.8, B: 1, A: 0.5},
	}
}

// NewRegistry returns the editor registry for bodies: asset paths open the
// file picker and atmospheres open the object editor.
func NewRegistry() *editor.Registry {
	r := editor.NewRegistry()
	r.Register(reflect.TypeOf(AssetPath("")), editor.KindComposite, editor.EditorFile)
	r.RegisterComposite((*Atmosphere)(nil), editor.EditorObject)
	return r
}

// Header draws the atmosphere toggle above the members of b.
func Header(b *Body) func(ui *editor.UI) error {
	return func(ui *editor.UI) error {
		if b.Atmosphere == nil {
			ui.Button("Add atmosphere", func() { b.Atmosphere = DefaultAtmosphere() })
		} else {
			ui.Button("Remove atmosphere", func() { b.Atmosphere = nil })
		}
		ui.Separator(0)
		return nil
	}
}

// Footer draws the derived-gravity action below the members of b. It is
// gated on a positive mass and radius.
func Footer(b *Body) func(ui *editor.UI) error {
	return func(ui *editor.UI) error {
		ui.Separator(0)
		ui.DependencyButton("Derive gravity", "Needs mass and radius", func() {
			if g, ok := b.SurfaceGravity(); ok {
				b.Gravity = float32(g)
			}
		}, func() bool {
			_, ok := b.SurfaceGravity()
			return ok
		})
		ui.Button("Stop rotation", func() {
			b.Rotates = false
			b.RotationPeriod = 0
		})
		return nil
	}
}

// Load reads a body from a TOML or JSON file.
func Load(path string) (*Body, error) {
	var b Body
	if err := document.Load(path, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Save writes b to a TOML or JSON file.
func Save(path string, b *Body) error {
	return document.Save(path, b)
}
