package renderer2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/text"
)

// Max textures per batch. The fragment shader selects among this many samplers.
const maxTexSlots = 8

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const (
	VertexStride = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// arcSegments is the number of segments per rounded corner.
const arcSegments = 6

// Texture is a device-side image.
type Texture interface {
	Size() (w, h int)
}

// Device uploads textures and executes batches. Implemented by the GL backend.
type Device interface {
	CreateTexture(w, h int, rgba []byte) (Texture, error)
	DrawBatch(b *Batch) error
}

// Rect is a rectangle in framebuffer pixels, top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// GLBox converts the rectangle to a bottom-left origin box in whole pixels,
// covering every partially touched pixel.
func (r Rect) GLBox(fbHeight int) (x, y, w, h int32) {
	x0, y0 := int32(math.Floor(float64(r.X))), int32(math.Floor(float64(r.Y)))
	x1, y1 := int32(math.Ceil(float64(r.X+r.W))), int32(math.Ceil(float64(r.Y+r.H)))
	return x0, int32(fbHeight) - y1, x1 - x0, y1 - y0
}

func (r Rect) intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: max(0, x1-x0), H: max(0, y1-y0)}
}

// Batch is one draw call's worth of geometry.
type Batch struct {
	Vertices   []float32 // VertexStride floats per vertex
	Indices    []uint32
	Textures   []Texture // slot i is sampled by texIndex i
	Projection [16]float32

	// Target is the framebuffer size the batch was recorded for.
	Target [2]int
	// Scissor applies when Clipped is set.
	Scissor Rect
	Clipped bool
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	ShapeCount   int
	VertexCount  int
	IndexCount   int
	TextureCount int
}

var ErrNotDrawing = errors.New("renderer2d: Begin was not called")

type clipState struct {
	ox, oy  float32
	scissor Rect
	clipped bool
}

type glyphSheet struct {
	atlas *text.Atlas
	tex   Texture
}

// Renderer2D batches UI draw calls into textured triangles. It implements
// ui.Renderer; coordinates are relative to the innermost clip.
type Renderer2D struct {
	dev      Device
	white    Texture
	maxQuads int

	batch  Batch
	texCnt int

	ox, oy  float32
	scissor Rect
	clipped bool
	clips   []clipState

	sheets  map[*text.Face]*glyphSheet
	stats   Statistics
	drawing bool
	err     error
}

// New creates a renderer that flushes at most maxQuads quads per draw call.
func New(dev Device, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	white, err := dev.CreateTexture(1, 1, []byte{255, 255, 255, 255})
	if err != nil {
		return nil, fmt.Errorf("white texture: %w", err)
	}
	rd := &Renderer2D{
		dev:      dev,
		white:    white,
		maxQuads: maxQuads,
		sheets:   make(map[*text.Face]*glyphSheet),
	}
	rd.batch.Vertices = make([]float32, 0, maxQuads*vertsPerQuad*VertexStride)
	rd.batch.Indices = make([]uint32, 0, maxQuads*indsPerQuad)
	rd.resetBatch()
	return rd, nil
}

// Begin starts a frame for a framebuffer of w x h pixels.
func (rd *Renderer2D) Begin(w, h int) {
	rd.batch.Projection = ScreenProjection(w, h)
	rd.batch.Target = [2]int{w, h}
	rd.stats = Statistics{}
	rd.ox, rd.oy = 0, 0
	rd.clipped = false
	rd.clips = rd.clips[:0]
	rd.err = nil
	rd.drawing = true
	rd.resetBatch()
}

// End flushes pending geometry and reports the first device error of the frame.
func (rd *Renderer2D) End() error {
	if !rd.drawing {
		return ErrNotDrawing
	}
	rd.flush()
	rd.drawing = false
	return rd.err
}

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

func (rd *Renderer2D) Rect(x, y, w, h float32, radius [4]float32, color colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x, y = x+rd.ox, y+rd.oy
	if radius == ([4]float32{}) {
		rd.quad(x, y, w, h, color, rd.white, 0, 0, 1, 1)
		return
	}
	rd.shape(roundedRect(x, y, w, h, radius), func(float32, float32) colors.Color { return color })
}

// LinearGradient evaluates the gradient at every vertex; the GPU interpolates
// between them.
func (rd *Renderer2D) LinearGradient(x, y, w, h float32, radius [4]float32, gx, gy, gw, gh float32, start, end colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x, y = x+rd.ox, y+rd.oy
	gx, gy = gx+rd.ox, gy+rd.oy
	colorAt := gradientAt(gx, gy, gw, gh, start, end)
	var pts [][2]float32
	if radius == ([4]float32{}) {
		pts = [][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	} else {
		pts = roundedRect(x, y, w, h, radius)
	}
	rd.shape(pts, colorAt)
}

func (rd *Renderer2D) Text(x, y float32, s string, face *text.Face, size float32, color colors.Color) {
	if face == nil || s == "" {
		return
	}
	sheet, err := rd.sheet(face)
	if err != nil {
		rd.fail(err)
		return
	}
	sheet.atlas.Layout(s, x+rd.ox, y+rd.oy, size, func(q text.Quad) {
		rd.quad(q.X, q.Y, q.W, q.H, color, sheet.tex, q.U0, q.V0, q.U1, q.V1)
	})
}

// PushClip intersects the scissor with the rectangle and moves the origin to
// its top-left corner.
func (rd *Renderer2D) PushClip(x, y, w, h float32) {
	rd.flush()
	rd.clips = append(rd.clips, clipState{ox: rd.ox, oy: rd.oy, scissor: rd.scissor, clipped: rd.clipped})
	r := Rect{X: x + rd.ox, Y: y + rd.oy, W: max(0, w), H: max(0, h)}
	if rd.clipped {
		r = rd.scissor.intersect(r)
	}
	rd.ox, rd.oy = x+rd.ox, y+rd.oy
	rd.scissor, rd.clipped = r, true
}

func (rd *Renderer2D) PopClip() {
	if len(rd.clips) == 0 {
		return
	}
	rd.flush()
	top := rd.clips[len(rd.clips)-1]
	rd.clips = rd.clips[:len(rd.clips)-1]
	rd.ox, rd.oy = top.ox, top.oy
	rd.scissor, rd.clipped = top.scissor, top.clipped
}

// --- internals ---

func (rd *Renderer2D) sheet(face *text.Face) (*glyphSheet, error) {
	if s, ok := rd.sheets[face]; ok {
		return s, nil
	}
	atlas, err := text.BuildAtlas(face)
	if err != nil {
		return nil, err
	}
	b := atlas.Image.Bounds()
	tex, err := rd.dev.CreateTexture(b.Dx(), b.Dy(), atlas.Image.Pix)
	if err != nil {
		return nil, fmt.Errorf("glyph texture: %w", err)
	}
	s := &glyphSheet{atlas: atlas, tex: tex}
	rd.sheets[face] = s
	return s, nil
}

func (rd *Renderer2D) fail(err error) {
	if rd.err == nil {
		rd.err = err
	}
}

func (rd *Renderer2D) texSlot(t Texture) float32 {
	for i := 0; i < rd.texCnt; i++ {
		if rd.batch.Textures[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= maxTexSlots {
		rd.flush()
	}
	rd.batch.Textures = append(rd.batch.Textures, t)
	rd.texCnt++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	return float32(rd.texCnt - 1)
}

// reserve flushes when the batch cannot take nv more vertices.
func (rd *Renderer2D) reserve(nv, ni int) {
	vs := len(rd.batch.Vertices) / VertexStride
	if vs+nv > rd.maxQuads*vertsPerQuad || len(rd.batch.Indices)+ni > rd.maxQuads*indsPerQuad {
		rd.flush()
	}
}

func (rd *Renderer2D) vertex(x, y float32, c colors.Color, u, v, tex float32) {
	rd.batch.Vertices = append(rd.batch.Vertices, x, y, c[0], c[1], c[2], c[3], u, v, tex)
}

func (rd *Renderer2D) quad(x, y, w, h float32, color colors.Color, tex Texture, u0, v0, u1, v1 float32) {
	rd.reserve(vertsPerQuad, indsPerQuad)
	slot := rd.texSlot(tex)
	start := uint32(len(rd.batch.Vertices) / VertexStride)

	// TL, TR, BL, BR. Positive Y goes down.
	rd.vertex(x, y, color, u0, v0, slot)
	rd.vertex(x+w, y, color, u1, v0, slot)
	rd.vertex(x, y+h, color, u0, v1, slot)
	rd.vertex(x+w, y+h, color, u1, v1, slot)
	rd.batch.Indices = append(rd.batch.Indices,
		start+0, start+2, start+1,
		start+1, start+2, start+3,
	)
	rd.stats.QuadCount++
	rd.stats.VertexCount += vertsPerQuad
	rd.stats.IndexCount += indsPerQuad
}

// shape fills a convex polygon as a fan around its centroid.
func (rd *Renderer2D) shape(pts [][2]float32, colorAt func(x, y float32) colors.Color) {
	n := len(pts)
	if n < 3 {
		return
	}
	rd.reserve(n+1, n*3)
	slot := rd.texSlot(rd.white)
	start := uint32(len(rd.batch.Vertices) / VertexStride)

	var cx, cy float32
	for _, p := range pts {
		cx += p[0]
		cy += p[1]
	}
	cx, cy = cx/float32(n), cy/float32(n)
	rd.vertex(cx, cy, colorAt(cx, cy), 0.5, 0.5, slot)
	for _, p := range pts {
		rd.vertex(p[0], p[1], colorAt(p[0], p[1]), 0.5, 0.5, slot)
	}
	for i := range n {
		a := start + 1 + uint32(i)
		b := start + 1 + uint32((i+1)%n)
		rd.batch.Indices = append(rd.batch.Indices, start, a, b)
	}
	rd.stats.ShapeCount++
	rd.stats.VertexCount += n + 1
	rd.stats.IndexCount += n * 3
}

func (rd *Renderer2D) flush() {
	if len(rd.batch.Indices) == 0 {
		return
	}
	rd.batch.Scissor, rd.batch.Clipped = rd.scissor, rd.clipped
	if err := rd.dev.DrawBatch(&rd.batch); err != nil {
		rd.fail(err)
	}
	rd.stats.DrawCalls++
	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.batch.Vertices = rd.batch.Vertices[:0]
	rd.batch.Indices = rd.batch.Indices[:0]
	clear(rd.batch.Textures)
	rd.batch.Textures = append(rd.batch.Textures[:0], rd.white)
	rd.texCnt = 1
}

// roundedRect outlines a rectangle clockwise (Y down), replacing each corner
// with an arc. Radii are top-left, top-right, bottom-right, bottom-left and
// are clamped to half the shorter side.
func roundedRect(x, y, w, h float32, radius [4]float32) [][2]float32 {
	limit := min(w, h) / 2
	centers := [4][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	// start angle of each corner's arc, sweeping a quarter turn
	starts := [4]float64{math.Pi, 1.5 * math.Pi, 0, 0.5 * math.Pi}
	dirs := [4][2]float32{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

	pts := make([][2]float32, 0, 4*(arcSegments+1))
	for i, r := range radius {
		r = max(0, min(r, limit))
		if r == 0 {
			pts = append(pts, centers[i])
			continue
		}
		cx := centers[i][0] + dirs[i][0]*r
		cy := centers[i][1] + dirs[i][1]*r
		for s := 0; s <= arcSegments; s++ {
			a := starts[i] + float64(s)/arcSegments*math.Pi/2
			pts = append(pts, [2]float32{
				cx + r*float32(math.Cos(a)),
				cy + r*float32(math.Sin(a)),
			})
		}
	}
	return pts
}

// gradientAt projects a point onto the segment (gx, gy) -> (gx+gw, gy+gh).
func gradientAt(gx, gy, gw, gh float32, start, end colors.Color) func(x, y float32) colors.Color {
	l2 := gw*gw + gh*gh
	return func(x, y float32) colors.Color {
		if l2 == 0 {
			return start
		}
		t := ((x-gx)*gw + (y-gy)*gh) / l2
		return colors.Transition(start, end, max(0, min(1, t)))
	}
}
