package core

import "slices"

// Layer is one slice of the frame: layers update and render bottom to top and
// receive events top to bottom.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true stops propagation
}

type LayerStack struct{ layers []Layer }

func (ls *LayerStack) Push(l Layer) { ls.layers = append(ls.layers, l) }
func (ls *LayerStack) Len() int     { return len(ls.layers) }

// Pop removes the top layer without detaching it.
func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.layers)
	if n == 0 {
		return nil, false
	}
	top := ls.layers[n-1]
	ls.layers[n-1] = nil
	ls.layers = ls.layers[:n-1]
	return top, true
}

// Remove drops l from anywhere in the stack.
func (ls *LayerStack) Remove(l Layer) bool {
	i := slices.Index(ls.layers, l)
	if i < 0 {
		return false
	}
	ls.layers = slices.Delete(ls.layers, i, i+1)
	return true
}

// ForEach visits bottom to top.
func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.layers {
		f(l)
	}
}

// ForEachReverse visits top to bottom until f returns true. It reports
// whether a layer stopped the walk.
func (ls *LayerStack) ForEachReverse(f func(Layer) bool) bool {
	for _, l := range slices.Backward(ls.layers) {
		if f(l) {
			return true
		}
	}
	return false
}
