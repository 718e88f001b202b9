package demo

import (
	"fmt"
	"time"

	"github.com/hubastard/aether/engine/anim"
	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/core"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/ui"
	"github.com/hubastard/aether/engine/unit"
)

const (
	fadeDuration  = 150 * time.Millisecond
	introDuration = 300 * time.Millisecond
)

// Entries is the menu content shown by the sandbox and the snapshot tool.
var Entries = []string{"New game", "Continue", "Settings", "Credits", "Quit"}

// Menu is a focusable panel listing selectable entries. While focused, the
// arrow keys and the scroll wheel move the selection.
type Menu struct {
	ui.Frame
	title   *ui.Label
	list    *ui.ListLayout
	status  *ui.Label
	entries *ui.SelectableController[*ui.Label]
	focused bool
}

// NewMenu builds a menu with one entry per name, using the sheets from Styles.
func NewMenu(ctx *ui.Context, title string, names []string) (*Menu, error) {
	m := &Menu{entries: ui.NewSelectableController[*ui.Label]()}
	if err := m.Init(ctx, StyleMenu, m); err != nil {
		return nil, err
	}

	var err error
	if m.title, err = ui.NewLabel(ctx, StyleTitle, title); err != nil {
		return nil, err
	}
	if m.list, err = ui.NewListLayout(ctx, StyleList, ui.Vertical, ui.Forward); err != nil {
		return nil, err
	}
	if m.status, err = ui.NewLabel(ctx, StyleStatus, "Nothing selected"); err != nil {
		return nil, err
	}
	for _, name := range names {
		l, err := ui.NewLabel(ctx, StyleEntry, name)
		if err != nil {
			return nil, err
		}
		l.OnMouseEnter(func(*ui.Component, float32, float32) { m.restyle(l) })
		l.OnMouseLeave(func(*ui.Component, float32, float32) { m.restyle(l) })
		l.OnMousePress(func(*ui.Component, float32, float32) {
			if err := m.entries.Select(l); err != nil {
				ctx.Log().Warn("menu select failed", "entry", name, "err", err)
			}
		})
		m.list.Add(l)
		m.entries.Add(l)
	}
	m.entries.OnSelect = func(l *ui.Label) {
		m.restyle(l)
		m.setStatus(fmt.Sprintf("Selected: %s", l.Text()))
	}
	m.entries.OnDeselect = func(l *ui.Label) {
		// Still reported as selected until the callback returns.
		m.fade(l, m.colour(l, false))
		m.setStatus("Nothing selected")
	}

	m.Add(m.title, m.list, m.status)
	return m, nil
}

// Builder places a menu on the screen and slides it in.
func Builder(title string, names []string) ui.Builder {
	return ui.BuilderFunc(func(s *ui.Screen) error {
		m, err := NewMenu(s.Context(), title, names)
		if err != nil {
			return err
		}
		s.Add(m)
		m.Intro()
		return nil
	})
}

func (m *Menu) Entries() []*ui.Label { return m.entries.Components() }
func (m *Menu) Status() string       { return m.status.Text() }
func (m *Menu) Focused() bool        { return m.focused }

// Selected returns the selected entry's index, or -1.
func (m *Menu) Selected() int { return m.entries.SelectedIndex() }

// Intro slides the panel up from below its resting place.
func (m *Menu) Intro() *anim.Animation {
	return anim.Play(m, []anim.Keyframe{
		{Bounds: &anim.Bounds{Y: unit.Rel(0.6)}},
		{Duration: introDuration, Ease: anim.OutCubic, Bounds: &anim.Bounds{Y: unit.Rel(0.5)}},
	})
}

func (m *Menu) OnFocus() {
	m.focused = true
	m.Context().Log().Debug("menu focused")
}

func (m *Menu) OnBlur() {
	m.focused = false
	m.Context().Log().Debug("menu blurred")
}

func (m *Menu) HandleKey(key core.Key, _ rune) {
	switch key {
	case core.KeyUp, core.KeyK:
		m.move(-1)
	case core.KeyDown, core.KeyJ:
		m.move(1)
	case core.KeyHome:
		m.selectIndex(0)
	case core.KeyEnd:
		m.selectIndex(m.entries.Len() - 1)
	case core.KeyEscape:
		m.entries.Deselect()
	}
}

// HandleScroll moves the selection one entry per notch; scrolling up goes
// back.
func (m *Menu) HandleScroll(_, _, amount float32) {
	switch {
	case amount > 0:
		m.move(-1)
	case amount < 0:
		m.move(1)
	}
}

func (m *Menu) move(step int) {
	n := m.entries.Len()
	if n == 0 {
		return
	}
	i := m.entries.SelectedIndex()
	switch {
	case i < 0 && step > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = min(max(i+step, 0), n-1)
	}
	m.selectIndex(i)
}

func (m *Menu) selectIndex(i int) {
	if i < 0 {
		return
	}
	if err := m.entries.SelectIndex(i); err != nil {
		m.Context().Log().Warn("menu select failed", "index", i, "err", err)
	}
}

func (m *Menu) setStatus(s string) {
	m.status.SetText(s)
	m.status.Update()
}

// colour is the background an entry rests at.
func (m *Menu) colour(l *ui.Label, selected bool) colors.Color {
	switch {
	case selected:
		return EntrySelected
	case l.Hovered():
		return EntryHover
	}
	return EntryIdle
}

func (m *Menu) restyle(l *ui.Label) {
	cur, ok := m.entries.Selected()
	m.fade(l, m.colour(l, ok && cur == l))
}

// fade blends the entry's background from whatever it currently shows and
// keeps the target colour once done.
func (m *Menu) fade(l *ui.Label, to colors.Color) {
	anim.Play(l, []anim.Keyframe{
		{Background: style.Solid(l.Fill.Color)},
		{Duration: fadeDuration, Ease: anim.OutQuad, Background: style.Solid(to)},
	}, anim.Retain())
}
