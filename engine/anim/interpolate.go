package anim

import (
	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/ui"
	"github.com/hubastard/aether/engine/unit"
)

// Animatable interpolates one style aggregate on a component.
//
// Animate writes the value between prev and curr at progress into c's live
// fields. A nil prev, or a nil field in it, starts from the snapshot in st;
// a nil field in curr ends at the snapshot. st may be nil once nothing falls
// back to it, in which case unset fields keep their live value.
//
// SaveState fills keyframe's unset fields with c's live values as pixels when
// retain is true, so the keyframe alone reproduces the final frame.
type Animatable[T any] interface {
	Animate(prev, curr T, progress float32, c *ui.Component, st *ui.InterpolationState)
	SaveState(c *ui.Component, keyframe T, retain bool)
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

// mix interpolates between two optional endpoints, resolving set ones and
// falling back to cached for the rest.
func mix(prev, curr *unit.Unit, cached float32, resolve func(*unit.Unit) float32, t float32) float32 {
	src, dst := cached, cached
	if prev != nil {
		src = resolve(prev)
	}
	if curr != nil {
		dst = resolve(curr)
	}
	return lerp(src, dst, t)
}

// Sides are ordered top, right, bottom, left. Vertical sides resolve against
// the component's height, horizontal ones against its width.
func resolveSide(c *ui.Component, i int) func(*unit.Unit) float32 {
	if i%2 == 0 {
		return func(u *unit.Unit) float32 { return c.ResolveY(u, c.Height) }
	}
	return func(u *unit.Unit) float32 { return c.ResolveX(u, c.Width) }
}

func mixSides(prev, curr [4]*unit.Unit, cached [4]float32, c *ui.Component, t float32) [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = mix(prev[i], curr[i], cached[i], resolveSide(c, i), t)
	}
	return out
}

func marginSides(m *style.Margin) (s [4]*unit.Unit) {
	if m != nil {
		s = [4]*unit.Unit{m.Top, m.Right, m.Bottom, m.Left}
	}
	return s
}

func paddingSides(p *style.Padding) (s [4]*unit.Unit) {
	if p != nil {
		s = [4]*unit.Unit{p.Top, p.Right, p.Bottom, p.Left}
	}
	return s
}

func fillPx(u **unit.Unit, v float32) {
	if *u == nil {
		*u = unit.Px(v)
	}
}

type MarginInterpolator struct{}

func (MarginInterpolator) Animate(prev, curr *style.Margin, t float32, c *ui.Component, st *ui.InterpolationState) {
	cached := [4]float32{c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft}
	if st != nil {
		cached = st.Margin
	}
	m := mixSides(marginSides(prev), marginSides(curr), cached, c, t)
	c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft = m[0], m[1], m[2], m[3]
}

func (MarginInterpolator) SaveState(c *ui.Component, kf *style.Margin, retain bool) {
	if !retain || kf == nil {
		return
	}
	fillPx(&kf.Top, c.MarginTop)
	fillPx(&kf.Right, c.MarginRight)
	fillPx(&kf.Bottom, c.MarginBottom)
	fillPx(&kf.Left, c.MarginLeft)
}

type PaddingInterpolator struct{}

func (PaddingInterpolator) Animate(prev, curr *style.Padding, t float32, c *ui.Component, st *ui.InterpolationState) {
	cached := [4]float32{c.PaddingTop, c.PaddingRight, c.PaddingBottom, c.PaddingLeft}
	if st != nil {
		cached = st.Padding
	}
	p := mixSides(paddingSides(prev), paddingSides(curr), cached, c, t)
	c.PaddingTop, c.PaddingRight, c.PaddingBottom, c.PaddingLeft = p[0], p[1], p[2], p[3]
	c.SyncBounds()
}

func (PaddingInterpolator) SaveState(c *ui.Component, kf *style.Padding, retain bool) {
	if !retain || kf == nil {
		return
	}
	fillPx(&kf.Top, c.PaddingTop)
	fillPx(&kf.Right, c.PaddingRight)
	fillPx(&kf.Bottom, c.PaddingBottom)
	fillPx(&kf.Left, c.PaddingLeft)
}

// BackgroundInterpolator blends colour channels, corner radii and, when either
// end has one, the gradient.
type BackgroundInterpolator struct{}

func (BackgroundInterpolator) Animate(prev, curr *style.Background, t float32, c *ui.Component, st *ui.InterpolationState) {
	cached := c.Fill
	if st != nil {
		cached = st.Fill
	}
	var pb, cb style.Background
	if prev != nil {
		pb = *prev
	}
	if curr != nil {
		cb = *curr
	}

	src, dst := cached.Color, cached.Color
	if pb.Color != nil {
		src = *pb.Color
	}
	if cb.Color != nil {
		dst = *cb.Color
	}
	c.Fill.Color = colors.Transition(src, dst, t)

	pr, cr := radiusCorners(pb.Radius), radiusCorners(cb.Radius)
	for i := range c.Fill.Radius {
		c.Fill.Radius[i] = mix(pr[i], cr[i], cached.Radius[i], func(u *unit.Unit) float32 {
			return c.ResolveRadius(&style.Radius{TopLeft: u})[0]
		}, t)
	}

	if pb.Gradient == nil && cb.Gradient == nil {
		c.Fill.Gradient = cached.Gradient
		return
	}
	from := gradientEnd(c, pb.Gradient, cached)
	to := gradientEnd(c, cb.Gradient, cached)
	if !cached.Gradient {
		// Start from the solid colour spread over the target rectangle.
		if pb.Gradient == nil {
			from.GX, from.GY, from.GW, from.GH = to.GX, to.GY, to.GW, to.GH
		}
		if cb.Gradient == nil {
			to.GX, to.GY, to.GW, to.GH = from.GX, from.GY, from.GW, from.GH
		}
	}
	c.Fill.Gradient = true
	c.Fill.Start = colors.Transition(from.Start, to.Start, t)
	c.Fill.End = colors.Transition(from.End, to.End, t)
	c.Fill.GX = lerp(from.GX, to.GX, t)
	c.Fill.GY = lerp(from.GY, to.GY, t)
	c.Fill.GW = lerp(from.GW, to.GW, t)
	c.Fill.GH = lerp(from.GH, to.GH, t)
}

func (BackgroundInterpolator) SaveState(c *ui.Component, kf *style.Background, retain bool) {
	if !retain || kf == nil {
		return
	}
	if kf.Color == nil {
		col := c.Fill.Color
		kf.Color = &col
	}
	if kf.Radius == nil {
		kf.Radius = &style.Radius{}
	}
	fillPx(&kf.Radius.TopLeft, c.Fill.Radius[0])
	fillPx(&kf.Radius.TopRight, c.Fill.Radius[1])
	fillPx(&kf.Radius.BottomRight, c.Fill.Radius[2])
	fillPx(&kf.Radius.BottomLeft, c.Fill.Radius[3])
	if kf.Gradient == nil && c.Fill.Gradient {
		f := c.Fill
		kf.Gradient = &style.Gradient{
			Start: f.Start, End: f.End,
			X: unit.Px(f.GX), Y: unit.Px(f.GY), Width: unit.Px(f.GW), Height: unit.Px(f.GH),
		}
	}
}

func radiusCorners(r *style.Radius) (s [4]*unit.Unit) {
	if r != nil {
		s = [4]*unit.Unit{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft}
	}
	return s
}

// gradientEnd resolves g, or describes the cached fill when g is unset.
func gradientEnd(c *ui.Component, g *style.Gradient, cached ui.Fill) ui.Fill {
	if g == nil {
		if cached.Gradient {
			return cached
		}
		return ui.Fill{Start: cached.Color, End: cached.Color}
	}
	var out ui.Fill
	out.Start, out.End = g.Start, g.End
	out.GX, out.GY, out.GW, out.GH = c.ResolveGradient(g)
	return out
}

// Bounds animates position and size. X and Y are positions, resolved the way
// the layout resolves a sheet's X and Y.
type Bounds struct {
	X, Y, Width, Height *unit.Unit
}

func (b *Bounds) Copy() *Bounds {
	if b == nil {
		return nil
	}
	return &Bounds{X: b.X.Copy(), Y: b.Y.Copy(), Width: b.Width.Copy(), Height: b.Height.Copy()}
}

type BoundsInterpolator struct{}

func (BoundsInterpolator) Animate(prev, curr *Bounds, t float32, c *ui.Component, st *ui.InterpolationState) {
	cx, cy, cw, ch := c.X, c.Y, c.Width, c.Height
	if st != nil {
		cx, cy, cw, ch = st.X, st.Y, st.Width, st.Height
	}
	var pb, cb Bounds
	if prev != nil {
		pb = *prev
	}
	if curr != nil {
		cb = *curr
	}
	// Size first: the anchor applied to positions depends on it.
	c.Width = mix(pb.Width, cb.Width, cw, c.ResolveAlongX, t)
	c.Height = mix(pb.Height, cb.Height, ch, c.ResolveAlongY, t)
	c.X = mix(pb.X, cb.X, cx, func(u *unit.Unit) float32 { return c.PositionAlongX(u, false) }, t)
	c.Y = mix(pb.Y, cb.Y, cy, func(u *unit.Unit) float32 { return c.PositionAlongY(u, false) }, t)
	c.SyncBounds()
}

func (BoundsInterpolator) SaveState(c *ui.Component, kf *Bounds, retain bool) {
	if !retain || kf == nil {
		return
	}
	fillPx(&kf.Width, c.Width)
	fillPx(&kf.Height, c.Height)
	// Stored positions are re-resolved against the parent origin and anchor.
	fillPx(&kf.X, c.X-c.ParentX()+c.AnchorX())
	fillPx(&kf.Y, c.Y-c.ParentY()+c.AnchorY())
}
