package unit

import "fmt"

// Mode selects what a Unit's value is measured against.
type Mode uint8

const (
	Pixel        Mode = iota // absolute pixels
	Relative                 // fraction of the reference dimension (parent size)
	SelfRelative             // fraction of the component's own size on the same axis
	Viewport                 // fraction of the viewport on the same axis
)

func (m Mode) String() string {
	switch m {
	case Pixel:
		return "px"
	case Relative:
		return "rel"
	case SelfRelative:
		return "self"
	case Viewport:
		return "vp"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Unit is a value paired with a measurement mode. Units are treated as
// immutable once attached to a style; Copy before sharing with another owner.
type Unit struct {
	Value float32
	Mode  Mode
}

func Px(v float32) *Unit   { return &Unit{Value: v, Mode: Pixel} }
func Rel(v float32) *Unit  { return &Unit{Value: v, Mode: Relative} }
func Self(v float32) *Unit { return &Unit{Value: v, Mode: SelfRelative} }
func Vp(v float32) *Unit   { return &Unit{Value: v, Mode: Viewport} }

// Copy returns a deep clone; nil stays nil.
func (u *Unit) Copy() *Unit {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%g%s", u.Value, u.Mode)
}

// Basis carries the dimensions a unit can be measured against, all taken
// along the axis being resolved.
type Basis struct {
	Reference float32
	Self      float32
	Viewport  float32
}

// Resolve converts u into pixels. A nil unit resolves to 0.
func Resolve(u *Unit, b Basis) float32 {
	if u == nil {
		return 0
	}
	switch u.Mode {
	case Relative:
		return u.Value * b.Reference
	case SelfRelative:
		return u.Value * b.Self
	case Viewport:
		return u.Value * b.Viewport
	default:
		return u.Value
	}
}
