package ui

// Render draws the background and then the owner's content.
func (c *Component) Render() {
	r := c.ctx.Renderer
	if r == nil {
		return
	}
	c.renderBackground(r)
	if cr, ok := c.owner.(ContentRenderer); ok {
		cr.RenderContent(r)
	}
}

func (c *Component) renderBackground(r Renderer) {
	f := &c.Fill
	if c.RelWidth <= 0 || c.RelHeight <= 0 {
		return
	}
	if f.Gradient {
		r.LinearGradient(c.RelX, c.RelY, c.RelWidth, c.RelHeight, f.Radius,
			c.RelX+f.GX, c.RelY+f.GY, f.GW, f.GH, f.Start, f.End)
		return
	}
	if f.Color[3] > 0 {
		r.Rect(c.RelX, c.RelY, c.RelWidth, c.RelHeight, f.Radius, f.Color)
	}
}

// clipChain lists the clipping ancestors of c below stop, outermost first.
func (c *Component) clipChain(stop *Component) []*Component {
	var chain []*Component
	for p := c.parent; p != nil && p != stop; p = p.parent {
		if p.Clips() {
			chain = append(chain, p)
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
