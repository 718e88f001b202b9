package ui

import (
	"errors"
	"testing"

	"github.com/hubastard/aether/engine/core"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type field struct {
	Box
	focused, blurred int
	typed            []rune
}

func (f *field) OnFocus()                      { f.focused++ }
func (f *field) OnBlur()                       { f.blurred++ }
func (f *field) HandleKey(_ core.Key, ch rune) { f.typed = append(f.typed, ch) }

type scroller struct {
	Box
	scrolled float32
}

func (s *scroller) HandleScroll(_, _, amount float32) { s.scrolled += amount }

func inputSheets() map[string]*style.Sheet {
	return map[string]*style.Sheet{
		"panel": {X: unit.Px(100), Y: unit.Px(100), Width: unit.Px(200), Height: unit.Px(200), ClipContent: true},
		"item":  {X: unit.Px(10), Y: unit.Px(10), Width: unit.Px(20), Height: unit.Px(20)},
		"field": {X: unit.Px(400), Y: unit.Px(10), Width: unit.Px(100), Height: unit.Px(30)},
	}
}

type point struct{ x, y float32 }

func TestInput_EnterLeaveTransitions(t *testing.T) {
	ctx, _ := newTestContext(t, inputSheets())
	var item *Box
	s := buildScreen(t, ctx, func(s *Screen) {
		panel, err := NewFrame(ctx, "panel")
		require.NoError(t, err)
		item = mustBox(t, ctx, "item")
		panel.Add(item)
		s.Add(panel)
	})

	var enters, leaves []point
	item.OnMouseEnter(func(_ *Component, x, y float32) { enters = append(enters, point{x, y}) })
	item.OnMouseLeave(func(_ *Component, x, y float32) { leaves = append(leaves, point{x, y}) })

	s.MouseMoved(115, 115)
	s.MouseMoved(120, 120)
	assert.Equal(t, []point{{15, 15}}, enters, "enter fires once, in local space")
	assert.Empty(t, leaves)
	assert.True(t, item.Hovered())

	s.MouseMoved(5, 5)
	s.MouseMoved(6, 6)
	assert.Len(t, leaves, 1)
	assert.False(t, item.Hovered())

	s.MouseMoved(125, 125)
	assert.Len(t, enters, 2)
	assert.Equal(t, float32(125), ctx.MouseX)
}

func TestInput_PressReleaseHitOnly(t *testing.T) {
	ctx, _ := newTestContext(t, inputSheets())
	var item *Box
	s := buildScreen(t, ctx, func(s *Screen) {
		panel, err := NewFrame(ctx, "panel")
		require.NoError(t, err)
		item = mustBox(t, ctx, "item")
		panel.Add(item)
		s.Add(panel)
	})

	var pressed, released []point
	item.OnMousePress(func(_ *Component, x, y float32) { pressed = append(pressed, point{x, y}) })
	item.OnMouseRelease(func(_ *Component, x, y float32) { released = append(released, point{x, y}) })

	s.MouseClicked(10, 10) // window space misses the panel-local box
	s.MouseReleased(10, 10)
	assert.Empty(t, pressed)
	assert.Empty(t, released)

	s.MouseClicked(111, 129)
	s.MouseReleased(112, 128)
	assert.Equal(t, []point{{11, 29}}, pressed)
	assert.Equal(t, []point{{12, 28}}, released)
}

func TestInput_FocusAndKeys(t *testing.T) {
	ctx, _ := newTestContext(t, inputSheets())
	f := &field{}
	require.NoError(t, f.Init(ctx, "field", f))
	s := buildScreen(t, ctx, func(s *Screen) { s.Add(f) })

	s.KeyPressed(core.KeyA, 'a')
	assert.Empty(t, f.typed, "not focused yet")

	s.MouseClicked(410, 20)
	assert.Equal(t, 1, f.focused)
	assert.Same(t, f, ctx.Focused())
	s.KeyPressed(core.KeyA, 'a')
	s.KeyPressed(core.KeyB, 'b')
	assert.Equal(t, []rune{'a', 'b'}, f.typed)

	// clicking the same field again keeps focus without re-firing
	s.MouseClicked(420, 20)
	assert.Equal(t, 1, f.focused)

	s.MouseClicked(700, 500)
	assert.Equal(t, 1, f.blurred)
	assert.Nil(t, ctx.Focused())
	s.KeyPressed(core.KeyC, 'c')
	assert.Len(t, f.typed, 2)
}

type keyLog struct {
	Box
	keys  []core.Key
	chars []rune
}

func (k *keyLog) OnFocus() {}
func (k *keyLog) OnBlur()  {}
func (k *keyLog) HandleKey(key core.Key, ch rune) {
	k.keys = append(k.keys, key)
	k.chars = append(k.chars, ch)
}

func TestScreen_HandleEventPairsKeysWithChars(t *testing.T) {
	ctx, _ := newTestContext(t, inputSheets())
	k := &keyLog{}
	require.NoError(t, k.Init(ctx, "field", k))
	s := buildScreen(t, ctx, func(s *Screen) { s.Add(k) })

	assert.False(t, s.HandleEvent(core.EventKey{Key: core.KeyA, Down: true}), "nothing focused")
	assert.False(t, s.HandleEvent(core.EventChar{Rune: 'a'}))
	assert.False(t, s.HandleEvent(core.EventMouseButton{Button: core.MouseLeft, Down: true, X: 410, Y: 20}))
	require.Same(t, k, ctx.Focused())

	assert.True(t, s.HandleEvent(core.EventKey{Key: core.KeyA, Down: true}))
	assert.Empty(t, k.keys, "held until its character arrives")
	assert.True(t, s.HandleEvent(core.EventChar{Rune: 'a'}))
	s.HandleEvent(core.EventKey{Key: core.KeyLeft, Down: true})
	s.HandleEvent(core.EventKey{Key: core.KeyA, Down: true, Mods: core.ModCtrl})
	s.HandleEvent(core.EventKey{Key: core.KeyB, Down: true})
	s.HandleEvent(core.EventMouseMove{X: 420, Y: 25})
	s.HandleEvent(core.EventChar{Rune: 'é'})
	s.HandleEvent(core.EventKey{Key: core.KeyC, Down: true})
	s.Advance(0)
	assert.False(t, s.HandleEvent(core.EventKey{Key: core.KeyD}), "releases are ignored")

	assert.Equal(t, []core.Key{core.KeyA, core.KeyLeft, core.KeyA, core.KeyB, core.KeyUnknown, core.KeyC}, k.keys)
	assert.Equal(t, []rune{'a', 0, 0, 0, 'é', 0}, k.chars)
	assert.Equal(t, float32(420), ctx.MouseX)
}

func TestScreen_HandleEventScrollsAtCursor(t *testing.T) {
	ctx, _ := newTestContext(t, inputSheets())
	sc := &scroller{}
	require.NoError(t, sc.Init(ctx, "field", sc))
	s := buildScreen(t, ctx, func(s *Screen) { s.Add(sc) })

	s.HandleEvent(core.EventScroll{Yoff: 2})
	s.HandleEvent(core.EventMouseMove{X: 450, Y: 25})
	s.HandleEvent(core.EventScroll{Yoff: -1})
	assert.Equal(t, float32(-1), sc.scrolled)

	s.HandleEvent(core.EventResize{W: 400, H: 300})
	assert.Equal(t, float32(400), ctx.Width)
}

func TestInput_Scroll(t *testing.T) {
	ctx, _ := newTestContext(t, inputSheets())
	sc := &scroller{}
	require.NoError(t, sc.Init(ctx, "field", sc))
	s := buildScreen(t, ctx, func(s *Screen) { s.Add(sc) })

	s.MouseScrolled(450, 25, 3)
	s.MouseScrolled(0, 0, 5)
	assert.Equal(t, float32(3), sc.scrolled)
}

func TestInput_ListenerRemovesElements(t *testing.T) {
	ctx, _ := newTestContext(t, inputSheets())
	var (
		panel *Frame
		a, b  *Box
		c     *field
	)
	s := buildScreen(t, ctx, func(s *Screen) {
		var err error
		panel, err = NewFrame(ctx, "panel")
		require.NoError(t, err)
		a, b = mustBox(t, ctx, "item"), mustBox(t, ctx, "item")
		c = &field{}
		require.NoError(t, c.Init(ctx, "item", c))
		panel.Add(a, b, c)
		s.Add(panel)
	})

	var pressed []string
	a.OnMousePress(func(n *Component, _, _ float32) {
		pressed = append(pressed, "a")
		panel.Remove(n)
	})
	b.OnMousePress(func(*Component, float32, float32) { pressed = append(pressed, "b") })
	c.OnMousePress(func(n *Component, _, _ float32) {
		pressed = append(pressed, "c")
		panel.Remove(n)
	})

	assert.NotPanics(t, func() { s.MouseClicked(115, 115) })
	assert.Equal(t, []string{"a", "b", "c"}, pressed)
	assert.Equal(t, []Element{b}, panel.Elements())
	assert.Nil(t, a.Parent())
	assert.Nil(t, ctx.Focused(), "a removed element does not take focus")
	assert.Zero(t, c.focused)

	// a sibling removed before its turn is not visited
	d := mustBox(t, ctx, "item")
	d.OnMousePress(func(*Component, float32, float32) {
		pressed = append(pressed, "d")
		panel.Remove(b)
	})
	panel.Remove(b)
	panel.Add(d, b)
	s.Update()
	pressed = nil
	s.MouseClicked(115, 115)
	assert.Equal(t, []string{"d"}, pressed)
	assert.Equal(t, []Element{d}, panel.Elements())
}

func TestSelectableController(t *testing.T) {
	ctx, _ := newTestContext(t, map[string]*style.Sheet{"tab": {Width: unit.Px(10)}})
	newLabel := func(s string) *Label {
		l, err := NewLabel(ctx, "tab", s)
		require.NoError(t, err)
		return l
	}
	a, b, stray := newLabel("a"), newLabel("b"), newLabel("stray")

	var log []string
	sel := NewSelectableController(a, b)
	sel.OnSelect = func(l *Label) { log = append(log, "+"+l.Text()) }
	sel.OnDeselect = func(l *Label) { log = append(log, "-"+l.Text()) }

	_, ok := sel.Selected()
	assert.False(t, ok)

	require.NoError(t, sel.Select(b))
	require.NoError(t, sel.Select(b.Node()), "the embedded component stands for its label")
	require.NoError(t, sel.SelectIndex(0))
	require.NoError(t, sel.SelectIndex(0))
	assert.Equal(t, []string{"+b", "-b", "+a"}, log)
	got, ok := sel.Selected()
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, float32(10), a.Width, "selection updates registered components")

	box := mustBox(t, ctx, "tab")
	err := sel.Select(box)
	var ce *CastError
	require.True(t, errors.As(err, &ce))
	assert.Same(t, &box.Component, ce.Component)
	assert.Equal(t, "*ui.Label", ce.Expected)
	assert.Contains(t, err.Error(), `"tab"`)

	assert.ErrorIs(t, sel.SelectIndex(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, sel.SelectIndex(-1), ErrIndexOutOfRange)
	assert.ErrorIs(t, sel.Select(stray), ErrNotRegistered)

	require.True(t, sel.Remove(a))
	assert.Equal(t, []string{"+b", "-b", "+a", "-a"}, log)
	assert.Equal(t, -1, sel.SelectedIndex())
	assert.Equal(t, 1, sel.Len())
	assert.False(t, sel.Remove(a))
}
