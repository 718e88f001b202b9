package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_RenderOrderAndClip(t *testing.T) {
	bg := style.Solid(colors.Red)
	bg.Radius = style.RadiusAll(unit.Rel(0.5))
	ctx, rec := newTestContext(t, map[string]*style.Sheet{
		"panel": {X: unit.Px(100), Y: unit.Px(100), Width: unit.Px(200), Height: unit.Px(100), ClipContent: true, Background: bg},
		"grad": {
			X: unit.Px(10), Y: unit.Px(10), Width: unit.Px(20), Height: unit.Px(20),
			Background: &style.Background{Gradient: style.Vertical(colors.Black, colors.White)},
		},
		"nested": {X: unit.Px(2), Y: unit.Px(3), Width: unit.Px(4), Height: unit.Px(4), Background: style.Solid(colors.Blue)},
	})
	buildScreen(t, ctx, func(s *Screen) {
		panel, err := NewFrame(ctx, "panel")
		require.NoError(t, err)
		inner, err := NewFrame(ctx, "grad")
		require.NoError(t, err)
		inner.Add(mustBox(t, ctx, "nested"))
		panel.Add(inner)
		s.Add(panel)
	}).Render()

	assert.Equal(t, []string{
		"rect 100,100 200x100 r=50",
		"clip 100,100 200x100",
		"gradient 10,10 20x20 from 10,10 to 10,30",
		"rect 12,13 4x4 r=0",
		"pop",
	}, rec.ops)
}

func TestScreen_AttachedRendersInParentClip(t *testing.T) {
	ctx, rec := newTestContext(t, map[string]*style.Sheet{
		"panel": {X: unit.Px(100), Y: unit.Px(50), Width: unit.Px(50), Height: unit.Px(50), ClipContent: true},
		"dot":   {X: unit.Px(1), Y: unit.Px(2), Width: unit.Px(3), Height: unit.Px(3), Background: style.Solid(colors.Green)},
	})
	var dot *Box
	buildScreen(t, ctx, func(s *Screen) {
		panel := mustBox(t, ctx, "panel")
		dot = mustBox(t, ctx, "dot")
		s.Add(panel)
		s.Root().Attach(dot, panel)
	}).Render()

	assert.Equal(t, float32(1), dot.X)
	assert.Equal(t, []string{"clip 100,50 50x50", "rect 1,2 3x3 r=0", "pop"}, rec.ops)
}

func TestScreen_AddMovesBetweenFrames(t *testing.T) {
	ctx, rec := newTestContext(t, map[string]*style.Sheet{
		"left":  {Width: unit.Px(100), Height: unit.Px(100)},
		"right": {X: unit.Px(200), Width: unit.Px(100), Height: unit.Px(100)},
		"dot":   {Width: unit.Px(5), Height: unit.Px(5), Background: style.Solid(colors.Green)},
	})
	var left, right *Frame
	var dot *Box
	s := buildScreen(t, ctx, func(s *Screen) {
		var err error
		left, err = NewFrame(ctx, "left")
		require.NoError(t, err)
		right, err = NewFrame(ctx, "right")
		require.NoError(t, err)
		dot = mustBox(t, ctx, "dot")
		left.Add(dot)
		right.Add(dot)
		s.Add(left, right)
	})

	assert.Empty(t, left.Elements())
	assert.Len(t, right.Elements(), 1)
	assert.Equal(t, 3, s.Count())
	assert.Same(t, &right.Component, dot.Parent())

	s.Render()
	assert.Equal(t, []string{"rect 200,0 5x5 r=0"}, rec.ops)

	right.Add(dot)
	assert.Len(t, right.Elements(), 1, "re-adding does not duplicate")
}

func TestScreen_BuilderError(t *testing.T) {
	ctx, _ := newTestContext(t, nil)
	boom := errors.New("boom")
	_, err := NewScreen(ctx, BuilderFunc(func(*Screen) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestScreen_AnimationLifecycle(t *testing.T) {
	ctx, _ := newTestContext(t, map[string]*style.Sheet{
		"half": {Width: unit.Rel(0.5), Height: unit.Px(10)},
	})
	var b *Box
	s := buildScreen(t, ctx, func(s *Screen) {
		b = mustBox(t, ctx, "half")
		s.Add(b)
	})
	assert.Equal(t, 1, s.Count())

	a := &fakeAnimator{}
	b.Animate(a)
	s.Advance(16 * time.Millisecond)
	s.Render()
	assert.Equal(t, 16*time.Millisecond, a.elapsed)
	assert.Equal(t, 1, a.ticks)

	// replacing an animation cancels the previous one
	next := &fakeAnimator{}
	b.Animate(next)
	assert.Equal(t, 1, a.cancels)

	next.done = true
	s.Render()
	assert.Nil(t, b.Animator(), "finished animations are dropped")
	assert.False(t, b.StopAnimation())

	last := &fakeAnimator{}
	b.Animate(last)
	b.InterpolationState()
	s.Close()
	assert.Equal(t, 1, last.cancels)
	assert.False(t, b.HasAnimationCache())
	assert.Nil(t, b.Parent())
	assert.Zero(t, s.Count())
}

func TestInterpolationState_Snapshot(t *testing.T) {
	ctx, _ := newTestContext(t, map[string]*style.Sheet{
		"half": {Width: unit.Rel(0.5), Height: unit.Px(10), Margin: style.MarginAll(unit.Px(2))},
	})
	var b *Box
	s := buildScreen(t, ctx, func(s *Screen) {
		b = mustBox(t, ctx, "half")
		s.Add(b)
	})

	assert.False(t, b.HasAnimationCache())
	st := b.InterpolationState()
	assert.Equal(t, float32(400), st.Width)
	assert.Equal(t, [4]float32{2, 2, 2, 2}, st.Margin)

	b.Width = 1
	assert.Same(t, st, b.InterpolationState(), "snapshot is taken once")
	assert.Equal(t, float32(400), st.Width)

	s.Resize(1200, 600)
	assert.Equal(t, float32(600), st.Width, "resize re-snapshots")

	b.ClearAnimationCache()
	assert.False(t, b.HasAnimationCache())
	b.UpdateAnimationCache()
	assert.False(t, b.HasAnimationCache(), "update never creates a cache")
}
