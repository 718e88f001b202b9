package ui

// Box is a styled rectangle without content.
type Box struct {
	Component
}

func NewBox(ctx *Context, styleID string) (*Box, error) {
	b := &Box{}
	if err := b.Init(ctx, styleID, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Label draws a string with its sheet's font at the content corner.
type Label struct {
	Component
	text string
}

func NewLabel(ctx *Context, styleID, s string) (*Label, error) {
	l := &Label{text: s}
	if err := l.Init(ctx, styleID, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) Text() string { return l.text }

// SetText changes the string. Auto-sized labels pick up the new extent on the
// next Update.
func (l *Label) SetText(s string) { l.text = s }

func (l *Label) RenderContent(r Renderer) {
	f := l.style.Font
	if l.text == "" || f == nil || f.Face == nil || f.Color[3] <= 0 {
		return
	}
	r.Text(l.X, l.Y, l.text, f.Face, f.Size, f.Color)
}
