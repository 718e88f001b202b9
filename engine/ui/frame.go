package ui

import "slices"

// Frame hosts child elements. With ClipContent set, children live in a local
// space starting at the frame's content corner and are scissored to it.
type Frame struct {
	Component
	elements []Element
}

func NewFrame(ctx *Context, styleID string) (*Frame, error) {
	f := &Frame{}
	if err := f.Init(ctx, styleID, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Add appends children and makes f their parent. A child hosted by another
// frame moves to f; one already in f moves to the end.
func (f *Frame) Add(children ...Element) {
	for _, ch := range children {
		f.adopt(ch)
		ch.Node().SetParent(&f.Component)
	}
}

// Attach hosts child in f while its geometry resolves against parent. parent
// must be updated before child, so it has to come earlier in f.
func (f *Frame) Attach(child, parent Element) {
	f.adopt(child)
	child.Node().SetParent(parent.Node())
}

func (f *Frame) adopt(ch Element) {
	n := ch.Node()
	if n.host != nil {
		n.host.unhost(n)
	}
	n.host = f
	f.elements = append(f.elements, ch)
}

func (f *Frame) unhost(n *Component) bool {
	i := slices.IndexFunc(f.elements, func(e Element) bool { return e.Node() == n })
	if i < 0 {
		return false
	}
	f.elements = slices.Delete(f.elements, i, i+1)
	n.host = nil
	return true
}

// Remove detaches child. It reports whether child was hosted by f.
func (f *Frame) Remove(child Element) bool {
	n := child.Node()
	if !f.unhost(n) {
		return false
	}
	if foc := f.ctx.focused; foc != nil && foc.Node() == n {
		f.ctx.focus(nil)
	}
	n.SetParent(nil)
	n.StopAnimation()
	n.ClearAnimationCache()
	return true
}

func (f *Frame) Elements() []Element { return f.elements }

func (f *Frame) UpdateLayout() {
	for _, e := range f.elements {
		e.Node().Update()
	}
}

func (f *Frame) RenderContent(r Renderer) {
	if f.Clips() {
		r.PushClip(f.X, f.Y, f.Width, f.Height)
		defer r.PopClip()
	}
	for _, e := range f.elements {
		n := e.Node()
		chain := n.clipChain(&f.Component)
		for _, p := range chain {
			r.PushClip(p.X, p.Y, p.Width, p.Height)
		}
		n.Render()
		for range chain {
			r.PopClip()
		}
	}
}
