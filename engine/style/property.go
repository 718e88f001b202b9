package style

import (
	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/text"
	"github.com/hubastard/aether/engine/unit"
)

// Nil sub-fields mean "unset": they resolve to 0 during layout and fall back
// to the component's cached live value during animation.

type Anchor struct {
	X, Y *unit.Unit
}

// Center anchors a component on its nominal position.
func Center() *Anchor { return &Anchor{X: unit.Rel(0.5), Y: unit.Rel(0.5)} }

func (a *Anchor) Copy() *Anchor {
	if a == nil {
		return nil
	}
	return &Anchor{X: a.X.Copy(), Y: a.Y.Copy()}
}

type Margin struct {
	Top, Right, Bottom, Left *unit.Unit
}

func Margins(top, right, bottom, left *unit.Unit) *Margin {
	return &Margin{Top: top, Right: right, Bottom: bottom, Left: left}
}

func MarginAll(u *unit.Unit) *Margin {
	return Margins(u, u.Copy(), u.Copy(), u.Copy())
}

func (m *Margin) Copy() *Margin {
	if m == nil {
		return nil
	}
	return &Margin{Top: m.Top.Copy(), Right: m.Right.Copy(), Bottom: m.Bottom.Copy(), Left: m.Left.Copy()}
}

type Padding struct {
	Top, Right, Bottom, Left *unit.Unit
}

func Paddings(top, right, bottom, left *unit.Unit) *Padding {
	return &Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

func PaddingAll(u *unit.Unit) *Padding {
	return Paddings(u, u.Copy(), u.Copy(), u.Copy())
}

func (p *Padding) Copy() *Padding {
	if p == nil {
		return nil
	}
	return &Padding{Top: p.Top.Copy(), Right: p.Right.Copy(), Bottom: p.Bottom.Copy(), Left: p.Left.Copy()}
}

// Radius holds per-corner rounding, resolved against the shorter side of the
// component's bounding box.
type Radius struct {
	TopLeft, TopRight, BottomRight, BottomLeft *unit.Unit
}

func RadiusAll(u *unit.Unit) *Radius {
	return &Radius{TopLeft: u, TopRight: u.Copy(), BottomRight: u.Copy(), BottomLeft: u.Copy()}
}

func (r *Radius) Copy() *Radius {
	if r == nil {
		return nil
	}
	return &Radius{
		TopLeft: r.TopLeft.Copy(), TopRight: r.TopRight.Copy(),
		BottomRight: r.BottomRight.Copy(), BottomLeft: r.BottomLeft.Copy(),
	}
}

// Gradient is a linear gradient from (X, Y) to (X+Width, Y+Height), all
// measured inside the component's bounding box.
type Gradient struct {
	Start, End          colors.Color
	X, Y, Width, Height *unit.Unit
}

// Vertical spans the full bounding box from top to bottom.
func Vertical(start, end colors.Color) *Gradient {
	return &Gradient{Start: start, End: end, Width: unit.Px(0), Height: unit.Rel(1)}
}

// Horizontal spans the full bounding box from left to right.
func Horizontal(start, end colors.Color) *Gradient {
	return &Gradient{Start: start, End: end, Width: unit.Rel(1), Height: unit.Px(0)}
}

func (g *Gradient) Copy() *Gradient {
	if g == nil {
		return nil
	}
	return &Gradient{
		Start: g.Start, End: g.End,
		X: g.X.Copy(), Y: g.Y.Copy(), Width: g.Width.Copy(), Height: g.Height.Copy(),
	}
}

type Background struct {
	Color    *colors.Color
	Radius   *Radius
	Gradient *Gradient
}

// Solid is a plain filled background.
func Solid(c colors.Color) *Background { return &Background{Color: &c} }

func (b *Background) Copy() *Background {
	if b == nil {
		return nil
	}
	out := &Background{Radius: b.Radius.Copy(), Gradient: b.Gradient.Copy()}
	if b.Color != nil {
		c := *b.Color
		out.Color = &c
	}
	return out
}

// Font describes how a component's text is drawn. AutoWidth/AutoHeight size
// the component to its measured text.
type Font struct {
	Face       *text.Face
	Size       float32
	Color      colors.Color
	AutoWidth  bool
	AutoHeight bool
}

// Copy shares the face, which is immutable.
func (f *Font) Copy() *Font {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
