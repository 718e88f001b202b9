package ui

import (
	"log/slog"

	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/text"
)

// Renderer is the draw-call surface components render into. Coordinates are
// already resolved pixels in the current clip space.
type Renderer interface {
	// Rect fills a rectangle. Radius is top-left, top-right, bottom-right,
	// bottom-left.
	Rect(x, y, w, h float32, radius [4]float32, color colors.Color)
	// LinearGradient fills a rectangle with a gradient running from (gx, gy)
	// to (gx+gw, gy+gh).
	LinearGradient(x, y, w, h float32, radius [4]float32, gx, gy, gw, gh float32, start, end colors.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y float32, s string, face *text.Face, size float32, color colors.Color)
	// PushClip restricts drawing to the rectangle and moves the origin to its
	// top-left corner until the matching PopClip.
	PushClip(x, y, w, h float32)
	PopClip()
}

// Context is shared by every component of a screen.
type Context struct {
	Width, Height  float32
	MouseX, MouseY float32

	Styles   *style.Store
	Renderer Renderer
	Logger   *slog.Logger

	focused Element
}

func NewContext(styles *style.Store, r Renderer, width, height float32) *Context {
	if styles == nil {
		styles = style.NewStore()
	}
	return &Context{Width: width, Height: height, Styles: styles, Renderer: r}
}

// Log returns Logger, or the default logger when none is set.
func (ctx *Context) Log() *slog.Logger {
	if ctx.Logger != nil {
		return ctx.Logger
	}
	return slog.Default()
}

// Focused returns the element holding keyboard focus, or nil.
func (ctx *Context) Focused() Element { return ctx.focused }
