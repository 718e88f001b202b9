package ui

import (
	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/style"
)

// Element is anything placed in the component tree.
type Element interface {
	Node() *Component
}

// Container is an element hosting other elements. Frame is the only
// implementation; widgets host children by embedding it.
type Container interface {
	Element
	Elements() []Element
}

// Layouter positions and updates children after its own geometry resolved.
type Layouter interface {
	UpdateLayout()
}

// ContentRenderer draws whatever sits on top of the background.
type ContentRenderer interface {
	RenderContent(r Renderer)
}

// Texter exposes the text a component shows. Components with a font set to
// auto-size are measured through it.
type Texter interface {
	Text() string
}

// Fill is the resolved background. Gradient coordinates are relative to the
// bounding box.
type Fill struct {
	Color  colors.Color
	Radius [4]float32

	Gradient       bool
	Start, End     colors.Color
	GX, GY, GW, GH float32
}

// Component holds the resolved geometry of one tree node. Widgets embed it
// and register themselves as its owner through Init.
type Component struct {
	X, Y, Width, Height             float32
	RelX, RelY, RelWidth, RelHeight float32

	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft float32
	MarginTop, MarginRight, MarginBottom, MarginLeft     float32

	Fill Fill

	ctx    *Context
	style  *style.Sheet
	owner  Element
	parent *Component
	// Frame listing c among its elements. It differs from parent for
	// attached elements.
	host *Frame

	// Axes whose position a list layout owns.
	overrideX, overrideY bool
	// Size the anchor was resolved against during the last position phase.
	anchorW, anchorH float32
	// Measured text extent for auto-sized fonts.
	textW, textH float32

	animator Animator
	interp   *InterpolationState

	hovered   bool
	listeners listeners
}

// Init binds the component to ctx and the sheet registered as styleID.
// owner is the widget embedding c and defaults to c itself.
func (c *Component) Init(ctx *Context, styleID string, owner Element) error {
	sh, err := ctx.Styles.Lookup(styleID)
	if err != nil {
		return err
	}
	c.init(ctx, sh, owner)
	return nil
}

func (c *Component) init(ctx *Context, sh *style.Sheet, owner Element) {
	if owner == nil {
		owner = c
	}
	if sh == nil {
		sh = &style.Sheet{}
	}
	c.ctx = ctx
	c.style = sh
	c.owner = owner
}

func (c *Component) Node() *Component    { return c }
func (c *Component) Owner() Element      { return c.owner }
func (c *Component) Context() *Context   { return c.ctx }
func (c *Component) Style() *style.Sheet { return c.style }
func (c *Component) Parent() *Component  { return c.parent }
func (c *Component) Clips() bool         { return c.style.ClipContent }

// Overridden reports which axes a list layout currently owns.
func (c *Component) Overridden() (x, y bool) { return c.overrideX, c.overrideY }

// SetParent changes the geometric parent. It is normally set by containers.
func (c *Component) SetParent(p *Component) {
	c.parent = p
	c.overrideX, c.overrideY = false, false
}

// Animate replaces the running animation, cancelling the previous one.
func (c *Component) Animate(a Animator) {
	if c.animator != nil && c.animator != a {
		c.animator.Cancel()
	}
	c.animator = a
}

func (c *Component) Animator() Animator { return c.animator }

// StopAnimation cancels the running animation, if any.
func (c *Component) StopAnimation() bool {
	if c.animator == nil {
		return false
	}
	ok := c.animator.Cancel()
	c.animator = nil
	return ok
}
