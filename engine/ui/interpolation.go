package ui

import "time"

// Animator drives property animation on one component.
type Animator interface {
	// Advance moves the animation clock forward.
	Advance(dt time.Duration)
	// Tick writes the current frame into the component's live fields.
	Tick()
	// Done reports whether the animation reached a terminal state.
	Done() bool
	// Cancel stops the animation. It reports false if it had already ended.
	Cancel() bool
}

// InterpolationState is a snapshot of a component's live values, used as the
// fallback endpoint for keyframes that leave a property unset. Sides are
// top, right, bottom, left.
type InterpolationState struct {
	X, Y, Width, Height float32
	Margin              [4]float32
	Padding             [4]float32
	Fill                Fill
}

// InterpolationState returns the component's interpolation snapshot, taking
// it from the live values on first use.
func (c *Component) InterpolationState() *InterpolationState {
	if c.interp == nil {
		c.interp = &InterpolationState{}
		c.snapshot(c.interp)
	}
	return c.interp
}

func (c *Component) HasAnimationCache() bool { return c.interp != nil }

// UpdateAnimationCache re-takes an existing snapshot, typically after a
// resize changed what relative units resolve to.
func (c *Component) UpdateAnimationCache() {
	if c.interp != nil {
		c.snapshot(c.interp)
	}
}

func (c *Component) ClearAnimationCache() { c.interp = nil }

func (c *Component) snapshot(st *InterpolationState) {
	st.X, st.Y, st.Width, st.Height = c.X, c.Y, c.Width, c.Height
	st.Margin = [4]float32{c.MarginTop, c.MarginRight, c.MarginBottom, c.MarginLeft}
	st.Padding = [4]float32{c.PaddingTop, c.PaddingRight, c.PaddingBottom, c.PaddingLeft}
	st.Fill = c.Fill
}
