package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Face is a rasterizable font at a fixed pixel size. Metrics are in pixels,
// Descent is negative (below the baseline).
type Face struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32

	face font.Face
}

// ParseFace parses TrueType/OpenType data into a face of sizePx pixels.
func ParseFace(ttf []byte, sizePx float32) (*Face, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	return &Face{
		SizePx:  sizePx,
		Ascent:  ascent,
		Descent: descent,
		LineGap: float32(m.Height.Round()) - ascent + descent,
		face:    face,
	}, nil
}

// Default returns the Go Regular face, which needs no font files on disk.
func Default(sizePx float32) (*Face, error) {
	return ParseFace(goregular.TTF, sizePx)
}

// Raw exposes the underlying x/image face for rasterizers.
func (f *Face) Raw() font.Face { return f.face }

func (f *Face) Close() error {
	if f == nil || f.face == nil {
		return nil
	}
	return f.face.Close()
}

// LineHeight is the baseline-to-baseline distance at the native size.
func (f *Face) LineHeight() float32 { return f.Ascent - f.Descent + f.LineGap }

// Scale maps a requested size to a factor against the native size. A size
// of zero means the native size.
func (f *Face) Scale(size float32) float32 {
	if size <= 0 || f.SizePx == 0 {
		return 1
	}
	return size / f.SizePx
}

// Measure returns the width of the widest line and the total height of s
// when drawn at size.
func (f *Face) Measure(s string, size float32) (width, height float32) {
	if s == "" {
		return 0, 0
	}
	lineH := f.LineHeight()
	height = lineH

	var lineW float32
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += lineH
			prev = -1
			continue
		}
		if prev >= 0 {
			lineW += float32(f.face.Kern(prev, r)) / 64
		}
		adv, ok := f.face.GlyphAdvance(r)
		if !ok {
			adv, _ = f.face.GlyphAdvance(' ')
		}
		lineW += float32(adv.Round())
		prev = r
	}
	width = max(width, lineW)

	scale := f.Scale(size)
	return width * scale, height * scale
}
