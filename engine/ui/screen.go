package ui

import (
	"fmt"
	"slices"
	"time"

	"github.com/hubastard/aether/engine/core"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/unit"
)

// Builder populates a new screen's root frame.
type Builder interface {
	Build(s *Screen) error
}

type BuilderFunc func(s *Screen) error

func (f BuilderFunc) Build(s *Screen) error { return f(s) }

// Screen owns a component tree and is the entry point for per-frame update,
// render and input.
type Screen struct {
	ctx  *Context
	root *Frame

	// Printable key waiting for the character it types.
	heldKey core.Key
	holding bool
}

var rootSheet = &style.Sheet{Name: "screen", Width: unit.Vp(1), Height: unit.Vp(1)}

// NewScreen builds the tree and runs the first Update.
func NewScreen(ctx *Context, b Builder) (*Screen, error) {
	root := &Frame{}
	root.init(ctx, rootSheet, root)
	s := &Screen{ctx: ctx, root: root}
	if b != nil {
		if err := b.Build(s); err != nil {
			return nil, fmt.Errorf("build screen: %w", err)
		}
	}
	s.Update()
	ctx.Log().Debug("screen built", "elements", s.Count(), "width", ctx.Width, "height", ctx.Height)
	return s, nil
}

func (s *Screen) Context() *Context { return s.ctx }
func (s *Screen) Root() *Frame      { return s.root }

// Add places elements directly on the root frame.
func (s *Screen) Add(children ...Element) { s.root.Add(children...) }

// Update recomputes every component, parents before children.
func (s *Screen) Update() { s.root.Update() }

// Resize changes the viewport, recomputes the tree and re-snapshots running
// animations.
func (s *Screen) Resize(w, h float32) {
	s.ctx.Width, s.ctx.Height = w, h
	s.Update()
	Walk(s.root, func(e Element) bool {
		e.Node().UpdateAnimationCache()
		return true
	})
	s.ctx.Log().Debug("screen resized", "width", w, "height", h)
}

// Advance moves every running animation forward by dt.
func (s *Screen) Advance(dt time.Duration) {
	s.releaseKey()
	Walk(s.root, func(e Element) bool {
		if a := e.Node().animator; a != nil {
			a.Advance(dt)
		}
		return true
	})
}

// Render applies the current animation frame and draws the tree.
func (s *Screen) Render() {
	Walk(s.root, func(e Element) bool {
		n := e.Node()
		if a := n.animator; a != nil {
			a.Tick()
			if a.Done() {
				n.animator = nil
			}
		}
		return true
	})
	s.root.Render()
}

// Close cancels animations and detaches the tree.
func (s *Screen) Close() {
	Walk(s.root, func(e Element) bool {
		n := e.Node()
		n.StopAnimation()
		n.ClearAnimationCache()
		return true
	})
	s.ctx.focus(nil)
	for _, e := range s.root.Elements() {
		n := e.Node()
		n.SetParent(nil)
		n.host = nil
	}
	s.root.elements = nil
	s.ctx.Log().Debug("screen closed")
}

// Count returns the number of elements below the root.
func (s *Screen) Count() int {
	n := -1
	Walk(s.root, func(Element) bool { n++; return true })
	return n
}

func (s *Screen) MouseMoved(x, y float32) {
	s.ctx.MouseX, s.ctx.MouseY = x, y
	Walk(s.root, func(e Element) bool {
		e.Node().mouseMoved(x, y)
		return true
	})
}

// MouseClicked fires press listeners on every hit component and focuses the
// topmost hit Focusable, blurring the previous focus.
func (s *Screen) MouseClicked(x, y float32) {
	s.ctx.MouseX, s.ctx.MouseY = x, y
	var target Element
	Walk(s.root, func(e Element) bool {
		n := e.Node()
		if lx, ly, ok := n.hit(x, y); ok {
			fire(n.listeners.press, n, lx, ly)
			if _, ok := n.owner.(Focusable); ok {
				target = n.owner
			}
		}
		return true
	})
	if target != nil && target.Node().host == nil {
		// Removed by a press listener.
		target = nil
	}
	s.ctx.focus(target)
}

func (s *Screen) MouseReleased(x, y float32) {
	s.ctx.MouseX, s.ctx.MouseY = x, y
	Walk(s.root, func(e Element) bool {
		n := e.Node()
		if lx, ly, ok := n.hit(x, y); ok {
			fire(n.listeners.release, n, lx, ly)
		}
		return true
	})
}

// KeyPressed delivers the key to the focused component.
func (s *Screen) KeyPressed(key core.Key, ch rune) {
	if h, ok := s.ctx.focused.(KeyHandler); ok {
		h.HandleKey(key, ch)
	}
}

// HandleEvent routes a window event to the input methods above and reports
// whether the screen consumed it. Keys are consumed only while a component
// holds focus.
//
// Windows report a printable key and the character it types as two events.
// The key is held until its character arrives so KeyPressed gets both; it is
// sent alone when any other event, or the next Advance, comes first.
func (s *Screen) HandleEvent(ev core.Event) bool {
	if _, ok := ev.(core.EventChar); !ok {
		s.releaseKey()
	}
	switch v := ev.(type) {
	case core.EventMouseMove:
		s.MouseMoved(float32(v.X), float32(v.Y))
	case core.EventMouseButton:
		if v.Button != core.MouseLeft {
			return false
		}
		if v.Down {
			s.MouseClicked(float32(v.X), float32(v.Y))
		} else {
			s.MouseReleased(float32(v.X), float32(v.Y))
		}
	case core.EventScroll:
		s.MouseScrolled(s.ctx.MouseX, s.ctx.MouseY, float32(v.Yoff))
	case core.EventKey:
		if !v.Down || s.ctx.focused == nil {
			return false
		}
		if typesChar(v) {
			s.heldKey, s.holding = v.Key, true
		} else {
			s.KeyPressed(v.Key, 0)
		}
		return true
	case core.EventChar:
		key := core.KeyUnknown
		if s.holding {
			key, s.holding = s.heldKey, false
		}
		if s.ctx.focused == nil {
			return false
		}
		s.KeyPressed(key, v.Rune)
		return true
	case core.EventResize:
		if v.W >= 1 && v.H >= 1 {
			s.Resize(float32(v.W), float32(v.H))
		}
	}
	return false
}

func (s *Screen) releaseKey() {
	if s.holding {
		s.holding = false
		s.KeyPressed(s.heldKey, 0)
	}
}

func typesChar(ev core.EventKey) bool {
	if ev.Mods&(core.ModCtrl|core.ModAlt|core.ModSuper) != 0 {
		return false
	}
	return ev.Key >= core.KeySpace && ev.Key <= core.Key9
}

func (s *Screen) MouseScrolled(x, y, amount float32) {
	Walk(s.root, func(e Element) bool {
		n := e.Node()
		if lx, ly, ok := n.hit(x, y); ok {
			if sc, ok := n.owner.(Scrollable); ok {
				sc.HandleScroll(lx, ly, amount)
			}
		}
		return true
	})
}

// Walk visits e and its descendants depth-first, parents first. Returning
// false from fn skips the element's children. fn may add or remove
// elements: children are listed before visiting them, and those that left
// their frame in the meantime are skipped.
func Walk(e Element, fn func(Element) bool) {
	if !fn(e) {
		return
	}
	var c Container
	if ct, ok := e.(Container); ok {
		c = ct
	} else if ct, ok := e.Node().owner.(Container); ok {
		c = ct
	}
	if c == nil {
		return
	}
	for _, ch := range slices.Clone(c.Elements()) {
		if h := ch.Node().host; h == nil || &h.Component != c.Node() {
			continue
		}
		Walk(ch, fn)
	}
}
