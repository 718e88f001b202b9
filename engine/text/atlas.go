package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline to glyph top
	W, H     int     // bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas is a white-on-transparent glyph sheet for one face. Uploading the
// image is the renderer's job.
type Atlas struct {
	Face   *Face
	Image  *image.RGBA
	Glyphs map[rune]Glyph
}

// Quad is one glyph placed in pixel space (top-left origin) with its UVs.
type Quad struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
}

const (
	atlasPadding = 2
	atlasMaxSize = 4096
)

// BuildAtlas rasterizes Latin-1 (32..255) into a shelf-packed square sheet,
// doubling the sheet until everything fits.
func BuildAtlas(f *Face) (*Atlas, error) {
	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var glyphs []meas
	for r := rune(32); r <= 255; r++ {
		b, adv, ok := f.face.GlyphBounds(r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, meas{
			r:   r,
			w:   (b.Max.X - b.Min.X).Ceil(),
			h:   (b.Max.Y - b.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(b.Min.X.Floor()),
			by:  float32(-b.Min.Y.Floor()),
		})
	}

	size := 256
	var pos map[rune]image.Point
	for {
		pos = make(map[rune]image.Point, len(glyphs))
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for _, g := range glyphs {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if g.w+2*atlasPadding > size || y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > atlasMaxSize {
			return nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
		}
	}

	// The top-left texel is kept opaque white so solid quads can share the sheet.
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, image.Rect(0, 0, 1, 1), image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: f.face}
	out := make(map[rune]Glyph, len(glyphs))
	for _, g := range glyphs {
		gl := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			gl.U0 = float32(p.X) / float32(size)
			gl.V0 = float32(p.Y) / float32(size)
			gl.U1 = float32(p.X+g.w) / float32(size)
			gl.V1 = float32(p.Y+g.h) / float32(size)
		}
		out[g.r] = gl
	}

	return &Atlas{Face: f, Image: dst, Glyphs: out}, nil
}

// WhiteUV points at the opaque texel reserved by BuildAtlas.
func (a *Atlas) WhiteUV() (u, v float32) {
	s := float32(a.Image.Bounds().Dx())
	return 0.5 / s, 0.5 / s
}

// Layout walks s and reports one quad per visible glyph. (x, y) is the
// top-left corner of the first line; Y grows downward.
func (a *Atlas) Layout(s string, x, y, size float32, emit func(Quad)) {
	f := a.Face
	scale := f.Scale(size)
	penX := x
	baseY := y + f.Ascent*scale
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.LineHeight() * scale
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			if sp, ok := a.Glyphs[' ']; ok {
				penX += sp.Advance * scale
			}
			prev = r
			continue
		}
		if prev >= 0 {
			penX += float32(f.face.Kern(prev, r)) / 64 * scale
		}
		if g.W > 0 && g.H > 0 {
			emit(Quad{
				X: penX + g.BearingX*scale, Y: baseY - g.BearingY*scale,
				W: float32(g.W) * scale, H: float32(g.H) * scale,
				U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
			})
		}
		penX += g.Advance * scale
		prev = r
	}
}
