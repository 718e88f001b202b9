package ui

type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

type Order int

const (
	Forward Order = iota
	Backward
)

// ListLayout stacks its direct children one after another along Direction,
// each separated by its own margins.
type ListLayout struct {
	Frame
	Direction Direction
	Order     Order
}

func NewListLayout(ctx *Context, styleID string, dir Direction, order Order) (*ListLayout, error) {
	l := &ListLayout{Direction: dir, Order: order}
	if err := l.Init(ctx, styleID, l); err != nil {
		return nil, err
	}
	return l, nil
}

// UpdateLayout places direct children with a running offset and then updates
// every hosted element. Elements attached to another parent keep their own
// placement.
func (l *ListLayout) UpdateLayout() {
	var offset float32
	if !l.Clips() {
		if l.Direction == Horizontal {
			offset = l.X
		} else {
			offset = l.Y
		}
	}

	n := len(l.elements)
	for i := range n {
		idx := i
		if l.Order == Backward {
			idx = n - 1 - i
		}
		ch := l.elements[idx].Node()
		if ch.parent != &l.Component {
			continue
		}
		// Measure first; the margins and extent below come from this pass.
		ch.Update()
		if l.Direction == Horizontal {
			ch.X = offset + ch.MarginLeft
			ch.overrideX = true
			offset += ch.RelWidth + ch.MarginLeft + ch.MarginRight
		} else {
			ch.Y = offset + ch.MarginTop
			ch.overrideY = true
			offset += ch.RelHeight + ch.MarginTop + ch.MarginBottom
		}
	}

	l.Frame.UpdateLayout()
}
