package ui

import "github.com/hubastard/aether/engine/core"

// MouseListener receives the mouse position in the component's local space.
type MouseListener func(c *Component, x, y float32)

type listeners struct {
	enter, leave, press, release []MouseListener
}

// Focusable components take keyboard focus when clicked.
type Focusable interface {
	OnFocus()
	OnBlur()
}

// KeyHandler receives key presses while focused.
type KeyHandler interface {
	HandleKey(key core.Key, ch rune)
}

// Scrollable receives scroll events over its bounding box.
type Scrollable interface {
	HandleScroll(x, y, amount float32)
}

func (c *Component) OnMouseEnter(fn MouseListener)   { c.listeners.enter = append(c.listeners.enter, fn) }
func (c *Component) OnMouseLeave(fn MouseListener)   { c.listeners.leave = append(c.listeners.leave, fn) }
func (c *Component) OnMousePress(fn MouseListener)   { c.listeners.press = append(c.listeners.press, fn) }
func (c *Component) OnMouseRelease(fn MouseListener) { c.listeners.release = append(c.listeners.release, fn) }

// LocalMouse maps window coordinates into the space c's position lives in.
func (c *Component) LocalMouse(x, y float32) (float32, float32) {
	for p := c.parent; p != nil; p = p.parent {
		if p.Clips() {
			x -= p.X
			y -= p.Y
		}
	}
	return x, y
}

// IsMouseInside tests local coordinates against the content box.
func (c *Component) IsMouseInside(x, y float32) bool {
	return x >= c.X && x < c.X+c.Width && y >= c.Y && y < c.Y+c.Height
}

// IsMouseInsideBoundingBox tests local coordinates against the padded box.
func (c *Component) IsMouseInsideBoundingBox(x, y float32) bool {
	return x >= c.RelX && x < c.RelX+c.RelWidth && y >= c.RelY && y < c.RelY+c.RelHeight
}

// Hovered reports whether the mouse was inside at the last move.
func (c *Component) Hovered() bool { return c.hovered }

func (c *Component) hit(x, y float32) (lx, ly float32, ok bool) {
	lx, ly = c.LocalMouse(x, y)
	return lx, ly, c.IsMouseInsideBoundingBox(lx, ly)
}

func fire(ls []MouseListener, c *Component, x, y float32) {
	for _, fn := range ls {
		fn(c, x, y)
	}
}

func (c *Component) mouseMoved(x, y float32) {
	lx, ly, inside := c.hit(x, y)
	switch {
	case inside && !c.hovered:
		c.hovered = true
		fire(c.listeners.enter, c, lx, ly)
	case !inside && c.hovered:
		c.hovered = false
		fire(c.listeners.leave, c, lx, ly)
	}
}

// focus moves keyboard focus to e, which may be nil.
func (ctx *Context) focus(e Element) {
	if ctx.focused == e {
		return
	}
	if f, ok := ctx.focused.(Focusable); ok {
		f.OnBlur()
	}
	ctx.focused = e
	if f, ok := e.(Focusable); ok {
		f.OnFocus()
	}
}
