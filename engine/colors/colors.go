package colors

import (
	"fmt"
	"image/color"
)

// Color is straight (non-premultiplied) RGBA with channels in [0..1].
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA8 builds a colour from 0..255 channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return RGBA8(uint8(v>>16), uint8(v>>8), uint8(v), uint8(v>>24))
}

// ARGB packs the colour as 0xAARRGGBB, clamping each channel.
func (c Color) ARGB() uint32 {
	r, g, b, a := c.bytes()
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Clamp limits every channel to [0..1].
func (c Color) Clamp() Color {
	for i := range c {
		c[i] = clamp01(c[i])
	}
	return c
}

// Transition blends from a to b by progress, channel by channel.
func Transition(a, b Color, progress float32) Color {
	var out Color
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*progress
	}
	return out
}

// NRGBA converts to the standard library colour type.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func (c Color) String() string {
	r, g, b, a := c.bytes()
	return fmt.Sprintf("RGBA(%d, %d, %d, %d)", r, g, b, a)
}

func (c Color) bytes() (r, g, b, a uint8) {
	return toByte(c[0]), toByte(c[1]), toByte(c[2]), toByte(c[3])
}

func toByte(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
