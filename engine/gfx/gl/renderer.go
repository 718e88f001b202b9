package glbackend

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/aether/engine/core"
	"github.com/hubastard/aether/engine/gfx/renderer2d"
)

//go:embed shaders/quad.vert
var vertexSource string

//go:embed shaders/quad.frag
var fragmentSource string

const texSlots = 8

var ErrForeignTexture = errors.New("glbackend: texture was not created by this device")

// Texture is a GL 2D texture.
type Texture struct {
	id   uint32
	w, h int
}

func (t *Texture) Size() (int, int) { return t.w, t.h }

// Device is the OpenGL 3.3 backend. It implements core.Device for the run
// loop and renderer2d.Device for the UI batcher.
type Device struct {
	program  uint32
	vao      uint32
	vbo      uint32
	ebo      uint32
	uVP      int32
	textures []*Texture
}

var (
	_ core.Device       = (*Device)(nil)
	_ renderer2d.Device = (*Device)(nil)
)

// New compiles the quad pipeline. The window's GL context must be current.
func New(_ core.Window, _ core.Config) (*Device, error) {
	d := &Device{}
	if err := d.init(); err != nil {
		d.Shutdown()
		return nil, err
	}
	return d, nil
}

func (d *Device) init() error {
	var err error
	d.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	d.uVP = gl.GetUniformLocation(d.program, gl.Str("uVP\x00"))
	gl.UseProgram(d.program)
	var slots [texSlots]int32
	for i := range slots {
		slots[i] = int32(i)
	}
	gl.Uniform1iv(gl.GetUniformLocation(d.program, gl.Str("uTex\x00")), texSlots, &slots[0])
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)

	const stride = renderer2d.VertexStride * 4 // bytes
	attribs := []struct {
		loc, size uint32
		offset    uintptr
	}{
		{0, 2, 0},     // pos
		{1, 4, 2 * 4}, // color
		{2, 2, 6 * 4}, // uv
		{3, 1, 8 * 4}, // texIndex
	}
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.loc)
		gl.VertexAttribPointerWithOffset(a.loc, int32(a.size), gl.FLOAT, false, stride, a.offset)
	}
	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl setup: error 0x%x", code)
	}
	slog.Debug("gl device ready", "vendor", gl.GoStr(gl.GetString(gl.VENDOR)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

func (d *Device) Shutdown() {
	for _, t := range d.textures {
		gl.DeleteTextures(1, &t.id)
	}
	d.textures = nil
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}

func (d *Device) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *Device) Clear(r, g, b, a float32) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// CreateTexture uploads tightly packed RGBA8 pixels, top row first.
func (d *Device) CreateTexture(w, h int, rgba []byte) (renderer2d.Texture, error) {
	if w <= 0 || h <= 0 || len(rgba) < w*h*4 {
		return nil, fmt.Errorf("create texture: %d bytes for %dx%d", len(rgba), w, h)
	}
	t := &Texture{w: w, h: h}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	d.textures = append(d.textures, t)
	return t, nil
}

func (d *Device) DrawBatch(b *renderer2d.Batch) error {
	if len(b.Indices) == 0 {
		return nil
	}
	gl.UseProgram(d.program)
	gl.UniformMatrix4fv(d.uVP, 1, false, &b.Projection[0])

	for i, t := range b.Textures {
		gt, ok := t.(*Texture)
		if !ok {
			return ErrForeignTexture
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, gt.id)
	}

	if b.Clipped {
		x, y, w, h := b.Scissor.GLBox(b.Target[1])
		gl.Enable(gl.SCISSOR_TEST)
		gl.Scissor(x, y, w, h)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*4, gl.Ptr(b.Vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, gl.Ptr(b.Indices), gl.STREAM_DRAW)
	gl.DrawElements(gl.TRIANGLES, int32(len(b.Indices)), gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw batch: gl error 0x%x", code)
	}
	return nil
}

// GPUInfo reports vendor, renderer and version strings.
func (d *Device) GPUInfo() (vendor, renderer, version string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)), gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION))
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
