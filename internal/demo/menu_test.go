package demo

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/core"
	"github.com/hubastard/aether/engine/gfx/raster"
	"github.com/hubastard/aether/engine/text"
	"github.com/hubastard/aether/engine/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var names = []string{"One", "Two", "Three"}

func newScreen(t *testing.T, b func(ctx *ui.Context) ui.Builder) *ui.Screen {
	t.Helper()
	face, err := text.Default(16)
	require.NoError(t, err)
	st, err := Styles(face, 16)
	require.NoError(t, err)
	ctx := ui.NewContext(st, raster.New(800, 600), 800, 600)
	scr, err := ui.NewScreen(ctx, b(ctx))
	require.NoError(t, err)
	return scr
}

func newMenu(t *testing.T) (*ui.Screen, *Menu) {
	t.Helper()
	var m *Menu
	scr := newScreen(t, func(ctx *ui.Context) ui.Builder {
		return ui.BuilderFunc(func(s *ui.Screen) error {
			var err error
			if m, err = NewMenu(ctx, "Demo", names); err != nil {
				return err
			}
			s.Add(m)
			return nil
		})
	})
	return scr, m
}

// entryPoint is a window position just inside entry i.
func entryPoint(m *Menu, i int) (float32, float32) {
	e := m.Entries()[i]
	return m.X + e.X + 2, m.Y + e.Y + 2
}

func assertColour(t *testing.T, want, got colors.Color, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-4, msgAndArgs...)
}

func TestMenu_Layout(t *testing.T) {
	scr, m := newMenu(t)
	assert.Equal(t, 4+len(names), scr.Count())
	assert.InDelta(t, 220, m.X, 1e-4)
	assert.InDelta(t, 90, m.Y, 1e-4)

	e := m.Entries()
	require.Len(t, e, 3)
	assert.InDelta(t, 48, e[0].Y, 1e-4)
	assert.InDelta(t, e[0].Y+e[0].RelHeight+6, e[1].Y, 1e-4)
	assert.InDelta(t, float32(entryInset), e[1].X, 1e-4)
	assert.InDelta(t, float32(menuWidth), e[0].RelWidth, 1e-4)

	assert.InDelta(t, m.Height, m.status.Y+m.status.Height, 1e-4, "status sits on the bottom edge")
}

func TestMenu_ClickSelectsAndFocuses(t *testing.T) {
	scr, m := newMenu(t)
	assert.Equal(t, -1, m.Selected())

	scr.MouseClicked(entryPoint(m, 1))
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, "Selected: Two", m.Status())
	assert.True(t, m.Focused())
	assert.Same(t, m, scr.Context().Focused())

	scr.MouseClicked(5, 5)
	assert.False(t, m.Focused())
	assert.Nil(t, scr.Context().Focused())
	assert.Equal(t, 1, m.Selected(), "blurring keeps the selection")
}

func TestMenu_LogsThroughContext(t *testing.T) {
	scr, m := newMenu(t)
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	scr.Context().Logger = slog.New(h).With("component", "ui")

	scr.MouseClicked(entryPoint(m, 0))
	scr.MouseClicked(5, 5)
	out := buf.String()
	assert.Contains(t, out, "menu focused")
	assert.Contains(t, out, "menu blurred")
	assert.Contains(t, out, "component=ui")
}

func TestMenu_Keys(t *testing.T) {
	scr, m := newMenu(t)
	scr.MouseClicked(entryPoint(m, 0))
	require.Equal(t, 0, m.Selected())

	steps := []struct {
		key  core.Key
		want int
	}{
		{core.KeyUp, 0},
		{core.KeyDown, 1},
		{core.KeyJ, 2},
		{core.KeyDown, 2},
		{core.KeyHome, 0},
		{core.KeyEnd, 2},
		{core.KeyEscape, -1},
		{core.KeyK, 2},
		{core.KeyEscape, -1},
		{core.KeyDown, 0},
	}
	for _, s := range steps {
		scr.KeyPressed(s.key, 0)
		assert.Equal(t, s.want, m.Selected(), "after %d", s.key)
	}

	scr.MouseClicked(5, 5)
	scr.KeyPressed(core.KeyDown, 0)
	assert.Equal(t, 0, m.Selected(), "keys are ignored without focus")
}

func TestMenu_Scroll(t *testing.T) {
	scr, m := newMenu(t)
	x, y := entryPoint(m, 0)

	scr.MouseScrolled(x, y, -1)
	assert.Equal(t, 0, m.Selected())
	scr.MouseScrolled(x, y, -1)
	assert.Equal(t, 1, m.Selected())
	scr.MouseScrolled(x, y, 1)
	assert.Equal(t, 0, m.Selected())
	scr.MouseScrolled(x, y, 0)
	assert.Equal(t, 0, m.Selected())

	scr.MouseScrolled(5, 5, -1)
	assert.Equal(t, 0, m.Selected(), "scrolling outside the menu does nothing")
}

func TestMenu_EntryColours(t *testing.T) {
	scr, m := newMenu(t)
	e := m.Entries()
	settle := func() {
		scr.Advance(fadeDuration)
		scr.Render()
	}

	assertColour(t, EntryIdle, e[0].Fill.Color)

	scr.MouseMoved(entryPoint(m, 0))
	settle()
	assertColour(t, EntryHover, e[0].Fill.Color)

	scr.MouseClicked(entryPoint(m, 0))
	settle()
	assertColour(t, EntrySelected, e[0].Fill.Color)

	scr.MouseMoved(entryPoint(m, 1))
	settle()
	assertColour(t, EntrySelected, e[0].Fill.Color, "selection outlives the hover")
	assertColour(t, EntryHover, e[1].Fill.Color)

	scr.KeyPressed(core.KeyEscape, 0)
	settle()
	assertColour(t, EntryIdle, e[0].Fill.Color)
	assertColour(t, EntryHover, e[1].Fill.Color)
}

func TestBuilder_SlidesIn(t *testing.T) {
	scr := newScreen(t, func(*ui.Context) ui.Builder { return Builder("Demo", names) })
	require.Len(t, scr.Root().Elements(), 1)
	m, ok := scr.Root().Elements()[0].(*Menu)
	require.True(t, ok)
	require.NotNil(t, m.Animator())

	scr.Render()
	assert.InDelta(t, 150, m.Y, 1e-3)

	scr.Advance(introDuration)
	scr.Render()
	assert.InDelta(t, 90, m.Y, 1e-3)
	assert.Nil(t, m.Animator())
}
