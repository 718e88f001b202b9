// Package raster renders UI screens on the CPU with fogleman/gg, for
// snapshots and tests without a GPU.
package raster

import (
	"image"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/text"
)

// Surface implements ui.Renderer on an in-memory RGBA image.
type Surface struct {
	dc      *gg.Context
	ox, oy  float64
	origins [][2]float64
}

func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

// Clear fills the whole surface, ignoring clips.
func (s *Surface) Clear(c colors.Color) {
	s.dc.Push()
	s.dc.ResetClip()
	setColor(s.dc, c)
	s.dc.Clear()
	s.dc.Pop()
}

func (s *Surface) Rect(x, y, w, h float32, radius [4]float32, color colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.path(x, y, w, h, radius)
	setColor(s.dc, color)
	s.dc.Fill()
}

func (s *Surface) LinearGradient(x, y, w, h float32, radius [4]float32, gx, gy, gw, gh float32, start, end colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := s.ox+float64(gx), s.oy+float64(gy)
	g := gg.NewLinearGradient(x0, y0, x0+float64(gw), y0+float64(gh))
	g.AddColorStop(0, start.NRGBA())
	g.AddColorStop(1, end.NRGBA())
	s.path(x, y, w, h, radius)
	s.dc.SetFillStyle(g)
	s.dc.Fill()
}

// Text draws each line of s below the previous one, scaling the face to size.
func (s *Surface) Text(x, y float32, str string, face *text.Face, size float32, color colors.Color) {
	if face == nil || str == "" {
		return
	}
	scale := float64(face.Scale(size))
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.Translate(s.ox+float64(x), s.oy+float64(y))
	s.dc.Scale(scale, scale)
	s.dc.SetFontFace(face.Raw())
	setColor(s.dc, color)
	baseline := float64(face.Ascent)
	for _, line := range strings.Split(str, "\n") {
		s.dc.DrawString(line, 0, baseline)
		baseline += float64(face.LineHeight())
	}
}

func (s *Surface) PushClip(x, y, w, h float32) {
	s.dc.Push()
	s.origins = append(s.origins, [2]float64{s.ox, s.oy})
	s.ox += float64(x)
	s.oy += float64(y)
	s.dc.DrawRectangle(s.ox, s.oy, float64(max(0, w)), float64(max(0, h)))
	s.dc.Clip()
}

func (s *Surface) PopClip() {
	if len(s.origins) == 0 {
		return
	}
	o := s.origins[len(s.origins)-1]
	s.origins = s.origins[:len(s.origins)-1]
	s.ox, s.oy = o[0], o[1]
	s.dc.Pop()
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) SavePNG(path string) error { return s.dc.SavePNG(path) }

func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// path outlines a rectangle with per-corner radii (top-left, top-right,
// bottom-right, bottom-left), clamped to half the shorter side.
func (s *Surface) path(x, y, w, h float32, radius [4]float32) {
	fx, fy := s.ox+float64(x), s.oy+float64(y)
	fw, fh := float64(w), float64(h)
	if radius == ([4]float32{}) {
		s.dc.DrawRectangle(fx, fy, fw, fh)
		return
	}
	limit := math.Min(fw, fh) / 2
	r := func(i int) float64 { return math.Max(0, math.Min(float64(radius[i]), limit)) }
	tl, tr, br, bl := r(0), r(1), r(2), r(3)

	s.dc.NewSubPath()
	s.dc.MoveTo(fx+tl, fy)
	s.dc.LineTo(fx+fw-tr, fy)
	if tr > 0 {
		s.dc.DrawArc(fx+fw-tr, fy+tr, tr, -math.Pi/2, 0)
	}
	s.dc.LineTo(fx+fw, fy+fh-br)
	if br > 0 {
		s.dc.DrawArc(fx+fw-br, fy+fh-br, br, 0, math.Pi/2)
	}
	s.dc.LineTo(fx+bl, fy+fh)
	if bl > 0 {
		s.dc.DrawArc(fx+bl, fy+fh-bl, bl, math.Pi/2, math.Pi)
	}
	s.dc.LineTo(fx, fy+tl)
	if tl > 0 {
		s.dc.DrawArc(fx+tl, fy+tl, tl, math.Pi, 3*math.Pi/2)
	}
	s.dc.ClosePath()
}

func setColor(dc *gg.Context, c colors.Color) { dc.SetColor(c.NRGBA()) }
