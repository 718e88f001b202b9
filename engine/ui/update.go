package ui

import (
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/unit"
)

// Update recomputes the component's geometry from its style, then lets a
// container owner lay out and update its children.
//
// The phases always run position, size, bounds, style. The anchor and the
// margins depend on the size, so when the size used by the position phase is
// stale (first update, auto-sized text) the first three phases run once more.
func (c *Component) Update() {
	c.updatePosition()
	c.updateSize()
	c.updateBounds()
	if c.updateStyle() || c.anchorW != c.Width || c.anchorH != c.Height {
		c.updatePosition()
		c.updateSize()
		c.updateBounds()
		c.updateStyle()
	}
	if l, ok := c.owner.(Layouter); ok {
		l.UpdateLayout()
	}
}

func (c *Component) updatePosition() {
	c.anchorW, c.anchorH = c.Width, c.Height
	if !c.overrideX {
		c.X = c.PositionAlongX(c.style.X, false)
	}
	if !c.overrideY {
		c.Y = c.PositionAlongY(c.style.Y, false)
	}
}

func (c *Component) updateSize() {
	c.Width = c.ResolveAlongX(c.style.Width)
	c.Height = c.ResolveAlongY(c.style.Height)
	if f := c.style.Font; f != nil {
		if f.AutoWidth {
			c.Width = c.textW
		}
		if f.AutoHeight {
			c.Height = c.textH
		}
	}
}

func (c *Component) updateBounds() {
	if p := c.style.Padding; p != nil {
		c.PaddingTop = c.ResolveY(p.Top, c.Height)
		c.PaddingRight = c.ResolveX(p.Right, c.Width)
		c.PaddingBottom = c.ResolveY(p.Bottom, c.Height)
		c.PaddingLeft = c.ResolveX(p.Left, c.Width)
	} else {
		c.PaddingTop, c.PaddingRight, c.PaddingBottom, c.PaddingLeft = 0, 0, 0, 0
	}
	if m := c.style.Margin; m != nil {
		c.MarginTop = c.ResolveY(m.Top, c.Height)
		c.MarginRight = c.ResolveX(m.Right, c.Width)
		c.MarginBottom = c.ResolveY(m.Bottom, c.Height)
		c.MarginLeft = c.ResolveX(m.Left, c.Width)
	} else {
		c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft = 0, 0, 0, 0
	}
	c.SyncBounds()
}

// SyncBounds re-derives the padding-adjusted bounding box from the live
// position, size and padding.
func (c *Component) SyncBounds() {
	c.RelX = c.X - c.PaddingLeft
	c.RelY = c.Y - c.PaddingTop
	c.RelWidth = c.Width + c.PaddingLeft + c.PaddingRight
	c.RelHeight = c.Height + c.PaddingTop + c.PaddingBottom
}

// updateStyle resolves the background and sizes auto-sized text. It reports
// whether the measured text extent changed.
func (c *Component) updateStyle() bool {
	c.Fill = c.resolveFill()

	f := c.style.Font
	if f == nil || f.Face == nil || !(f.AutoWidth || f.AutoHeight) {
		return false
	}
	var s string
	if t, ok := c.owner.(Texter); ok {
		s = t.Text()
	}
	w, h := f.Face.Measure(s, f.Size)
	changed := w != c.textW || h != c.textH
	c.textW, c.textH = w, h
	if f.AutoWidth {
		c.Width = w
	}
	if f.AutoHeight {
		c.Height = h
	}
	return changed
}

func (c *Component) resolveFill() Fill {
	var out Fill
	bg := c.style.Background
	if bg == nil {
		return out
	}
	if bg.Color != nil {
		out.Color = *bg.Color
	}
	if r := bg.Radius; r != nil {
		out.Radius = c.ResolveRadius(r)
	}
	if g := bg.Gradient; g != nil {
		out.Gradient = true
		out.Start, out.End = g.Start, g.End
		out.GX, out.GY, out.GW, out.GH = c.ResolveGradient(g)
	}
	return out
}

// ResolveRadius resolves each corner against the shorter side of the bounding
// box.
func (c *Component) ResolveRadius(r *style.Radius) [4]float32 {
	if r == nil {
		return [4]float32{}
	}
	ref := min(c.RelWidth, c.RelHeight)
	b := unit.Basis{Reference: ref, Self: ref, Viewport: min(c.ctx.Width, c.ctx.Height)}
	return [4]float32{
		unit.Resolve(r.TopLeft, b),
		unit.Resolve(r.TopRight, b),
		unit.Resolve(r.BottomRight, b),
		unit.Resolve(r.BottomLeft, b),
	}
}

// ResolveGradient resolves the gradient rectangle inside the bounding box.
func (c *Component) ResolveGradient(g *style.Gradient) (x, y, w, h float32) {
	if g == nil {
		return 0, 0, 0, 0
	}
	return c.ResolveX(g.X, c.RelWidth), c.ResolveY(g.Y, c.RelHeight),
		c.ResolveX(g.Width, c.RelWidth), c.ResolveY(g.Height, c.RelHeight)
}
