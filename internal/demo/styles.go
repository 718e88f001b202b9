// Package demo builds the menu screen shown by the sandbox and rendered by the
// snapshot tool.
package demo

import (
	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/text"
	"github.com/hubastard/aether/engine/unit"
)

// Sheet identifiers registered by Styles.
const (
	StyleMenu   = "menu"
	StyleTitle  = "menu.title"
	StyleList   = "menu.list"
	StyleEntry  = "menu.entry"
	StyleStatus = "menu.status"

	StyleDebugPanel  = "debug.panel"
	StyleDebugHeader = "debug.header"
	StyleDebugLine   = "debug.line"
)

const (
	menuWidth  = 360
	entryInset = 12
)

// Entry colours for the idle, hovered and selected states.
var (
	EntryIdle     = colors.RGBA8(0x3a, 0x3f, 0x4b, 0xff)
	EntryHover    = colors.RGBA8(0x4a, 0x51, 0x60, 0xff)
	EntrySelected = colors.RGBA8(0x3d, 0x7e, 0xd6, 0xff)
)

// Styles registers every sheet used by the menu and the debug overlay. Text
// is drawn with face at size pixels.
func Styles(face *text.Face, size float32) (*style.Store, error) {
	st := style.NewStore()
	sheets := []struct {
		id    string
		sheet *style.Sheet
	}{
		{StyleMenu, &style.Sheet{
			X:       unit.Rel(0.5),
			Y:       unit.Rel(0.5),
			Width:   unit.Px(menuWidth),
			Height:  unit.Px(420),
			Anchor:  style.Center(),
			Padding: style.PaddingAll(unit.Px(16)),
			Background: &style.Background{
				Gradient: style.Vertical(colors.RGBA8(0x2b, 0x2f, 0x3a, 0xff), colors.RGBA8(0x1d, 0x20, 0x27, 0xff)),
				Radius:   style.RadiusAll(unit.Px(12)),
			},
			ClipContent: true,
		}},
		{StyleTitle, &style.Sheet{
			Font: &style.Font{Face: face, Size: size * 1.25, Color: colors.White, AutoWidth: true, AutoHeight: true},
		}},
		{StyleList, &style.Sheet{
			Y:      unit.Px(48),
			Width:  unit.Rel(1),
			Height: unit.Px(300),
		}},
		{StyleEntry, &style.Sheet{
			X:       unit.Px(entryInset),
			Width:   unit.Px(menuWidth - 2*entryInset),
			Padding: style.Paddings(unit.Px(10), unit.Px(entryInset), unit.Px(10), unit.Px(entryInset)),
			Margin:  style.Margins(unit.Px(0), unit.Px(0), unit.Px(6), unit.Px(0)),
			Background: &style.Background{
				Color:  ptr(EntryIdle),
				Radius: style.RadiusAll(unit.Px(6)),
			},
			Font: &style.Font{Face: face, Size: size, Color: colors.White, AutoHeight: true},
		}},
		{StyleStatus, &style.Sheet{
			Y:      unit.Rel(1),
			Anchor: &style.Anchor{X: unit.Px(0), Y: unit.Rel(1)},
			Font:   &style.Font{Face: face, Size: size * 0.8, Color: colors.Gray, AutoWidth: true, AutoHeight: true},
		}},
		{StyleDebugPanel, &style.Sheet{
			X:          unit.Px(16),
			Y:          unit.Px(16),
			Width:      unit.Px(260),
			Height:     unit.Px(340),
			Padding:    style.PaddingAll(unit.Px(12)),
			Background: &style.Background{Color: ptr(colors.Black.WithAlpha(0.5)), Radius: style.RadiusAll(unit.Px(6))},
		}},
		{StyleDebugHeader, &style.Sheet{
			Margin: style.Margins(unit.Px(8), unit.Px(0), unit.Px(2), unit.Px(0)),
			Font:   &style.Font{Face: face, Size: size * 0.8, Color: colors.Yellow, AutoWidth: true, AutoHeight: true},
		}},
		{StyleDebugLine, &style.Sheet{
			X:    unit.Px(12),
			Font: &style.Font{Face: face, Size: size * 0.8, Color: colors.White, AutoWidth: true, AutoHeight: true},
		}},
	}
	for _, s := range sheets {
		if err := st.Register(s.id, s.sheet); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func ptr[T any](v T) *T { return &v }
