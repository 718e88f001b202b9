package ui

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

var (
	ErrIndexOutOfRange = errors.New("ui: index out of range")
	ErrNotRegistered   = errors.New("ui: component not registered")
)

// CastError reports a component used as a type it does not implement.
type CastError struct {
	Component *Component
	Expected  string
}

func (e *CastError) Error() string {
	name := "<unstyled>"
	if e.Component != nil && e.Component.style != nil && e.Component.style.Name != "" {
		name = e.Component.style.Name
	}
	return fmt.Sprintf("ui: component %q is not a %s", name, e.Expected)
}

// Controller keeps an ordered list of components handled together.
type Controller[T Element] struct {
	items []T
}

func (c *Controller[T]) Add(items ...T) { c.items = append(c.items, items...) }

func (c *Controller[T]) Remove(item T) bool {
	i := c.indexOf(item.Node())
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

func (c *Controller[T]) Components() []T { return c.items }
func (c *Controller[T]) Len() int        { return len(c.items) }

func (c *Controller[T]) indexOf(n *Component) int {
	return slices.IndexFunc(c.items, func(it T) bool { return it.Node() == n })
}

// UpdateAll recomputes every registered component.
func (c *Controller[T]) UpdateAll() {
	for _, it := range c.items {
		it.Node().Update()
	}
}

// SelectableController keeps at most one registered component selected.
type SelectableController[T Element] struct {
	Controller[T]
	OnSelect   func(T)
	OnDeselect func(T)
	selected   int
}

func NewSelectableController[T Element](items ...T) *SelectableController[T] {
	s := &SelectableController[T]{selected: -1}
	s.Add(items...)
	return s
}

// Select selects e, which may be a T or the component embedded in one. It
// fails with a *CastError when neither is a T and with ErrNotRegistered when
// e was never added.
func (s *SelectableController[T]) Select(e Element) error {
	if !isA[T](e) {
		return &CastError{Component: e.Node(), Expected: reflect.TypeFor[T]().String()}
	}
	i := s.indexOf(e.Node())
	if i < 0 {
		return ErrNotRegistered
	}
	return s.SelectIndex(i)
}

func (s *SelectableController[T]) SelectIndex(i int) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.items))
	}
	if i != s.selected {
		s.deselect()
		s.selected = i
		if s.OnSelect != nil {
			s.OnSelect(s.items[i])
		}
	}
	s.UpdateAll()
	return nil
}

func (s *SelectableController[T]) Deselect() {
	s.deselect()
	s.UpdateAll()
}

func (s *SelectableController[T]) deselect() {
	if s.selected < 0 || s.selected >= len(s.items) {
		s.selected = -1
		return
	}
	if s.OnDeselect != nil {
		s.OnDeselect(s.items[s.selected])
	}
	s.selected = -1
}

func (s *SelectableController[T]) Selected() (T, bool) {
	if s.selected < 0 || s.selected >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[s.selected], true
}

func (s *SelectableController[T]) SelectedIndex() int { return s.selected }

// Remove unregisters item, deselecting it first when selected.
func (s *SelectableController[T]) Remove(item T) bool {
	i := s.indexOf(item.Node())
	if i < 0 {
		return false
	}
	if i == s.selected {
		s.deselect()
	} else if i < s.selected {
		s.selected--
	}
	return s.Controller.Remove(item)
}

func isA[T Element](e Element) bool {
	if _, ok := e.(T); ok {
		return true
	}
	_, ok := e.Node().Owner().(T)
	return ok
}
