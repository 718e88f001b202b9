package ui

import "github.com/hubastard/aether/engine/unit"

// Both axes grow away from the parent origin: a resolved X is added to the
// parent's x and a resolved Y to the parent's y (Y points down). Anchors are
// subtracted on both axes.

// ParentWidth is the reference width for relative units: the parent's width,
// or the viewport's for the root.
func (c *Component) ParentWidth() float32 {
	if c.parent == nil {
		return c.ctx.Width
	}
	return c.parent.Width
}

func (c *Component) ParentHeight() float32 {
	if c.parent == nil {
		return c.ctx.Height
	}
	return c.parent.Height
}

// ParentX is the origin children resolve against: 0 inside a clipping
// parent, the parent's absolute x otherwise.
func (c *Component) ParentX() float32 {
	if c.parent == nil || c.parent.Clips() {
		return 0
	}
	return c.parent.X
}

func (c *Component) ParentY() float32 {
	if c.parent == nil || c.parent.Clips() {
		return 0
	}
	return c.parent.Y
}

// ResolveX resolves u along the horizontal axis against ref.
func (c *Component) ResolveX(u *unit.Unit, ref float32) float32 {
	return unit.Resolve(u, unit.Basis{Reference: ref, Self: c.Width, Viewport: c.ctx.Width})
}

// ResolveY resolves u along the vertical axis against ref.
func (c *Component) ResolveY(u *unit.Unit, ref float32) float32 {
	return unit.Resolve(u, unit.Basis{Reference: ref, Self: c.Height, Viewport: c.ctx.Height})
}

func (c *Component) ResolveAlongX(u *unit.Unit) float32 { return c.ResolveX(u, c.ParentWidth()) }
func (c *Component) ResolveAlongY(u *unit.Unit) float32 { return c.ResolveY(u, c.ParentHeight()) }

// AnchorX is the horizontal anchor offset, resolved against the component's
// own width.
func (c *Component) AnchorX() float32 {
	if c.style.Anchor == nil {
		return 0
	}
	return c.ResolveX(c.style.Anchor.X, c.Width)
}

func (c *Component) AnchorY() float32 {
	if c.style.Anchor == nil {
		return 0
	}
	return c.ResolveY(c.style.Anchor.Y, c.Height)
}

// PositionAlongX turns u into an absolute x. With ignoreOffset the anchor is
// not applied.
func (c *Component) PositionAlongX(u *unit.Unit, ignoreOffset bool) float32 {
	x := c.ResolveAlongX(u) + c.ParentX()
	if !ignoreOffset {
		x -= c.AnchorX()
	}
	return x
}

func (c *Component) PositionAlongY(u *unit.Unit, ignoreOffset bool) float32 {
	y := c.ResolveAlongY(u) + c.ParentY()
	if !ignoreOffset {
		y -= c.AnchorY()
	}
	return y
}
