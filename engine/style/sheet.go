package style

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hubastard/aether/engine/unit"
)

var (
	ErrStyleNotFound  = errors.New("style not found")
	ErrDuplicateStyle = errors.New("style already registered")
)

// Sheet is the declarative description of a component class. Sheets are
// shared by every component using them and must be treated as read-only once
// registered.
type Sheet struct {
	Name string

	X, Y          *unit.Unit
	Width, Height *unit.Unit

	Anchor     *Anchor
	Padding    *Padding
	Margin     *Margin
	Background *Background
	Font       *Font

	// ClipContent gives children a local coordinate space starting at (0,0)
	// and scissors their drawing to the component's bounds.
	ClipContent bool
}

func (s *Sheet) Copy() *Sheet {
	if s == nil {
		return nil
	}
	return &Sheet{
		Name:        s.Name,
		X:           s.X.Copy(),
		Y:           s.Y.Copy(),
		Width:       s.Width.Copy(),
		Height:      s.Height.Copy(),
		Anchor:      s.Anchor.Copy(),
		Padding:     s.Padding.Copy(),
		Margin:      s.Margin.Copy(),
		Background:  s.Background.Copy(),
		Font:        s.Font.Copy(),
		ClipContent: s.ClipContent,
	}
}

// Store holds registered sheets by identifier. It is passed explicitly to
// whatever builds components.
type Store struct {
	sheets map[string]*Sheet
}

func NewStore() *Store {
	return &Store{sheets: make(map[string]*Sheet)}
}

// Register adds sheet under id. The sheet's Name is set to id.
func (s *Store) Register(id string, sheet *Sheet) error {
	if _, ok := s.sheets[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStyle, id)
	}
	if sheet == nil {
		sheet = &Sheet{}
	}
	sheet.Name = id
	s.sheets[id] = sheet
	return nil
}

// Derive registers a copy of base under id after applying edit to it.
func (s *Store) Derive(id, base string, edit func(*Sheet)) error {
	b, err := s.Lookup(base)
	if err != nil {
		return err
	}
	c := b.Copy()
	if edit != nil {
		edit(c)
	}
	return s.Register(id, c)
}

func (s *Store) Lookup(id string) (*Sheet, error) {
	sh, ok := s.sheets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, id)
	}
	return sh, nil
}

// MustLookup is Lookup for wiring code where a missing style is a bug.
func (s *Store) MustLookup(id string) *Sheet {
	sh, err := s.Lookup(id)
	if err != nil {
		panic(err)
	}
	return sh
}

// IDs lists registered identifiers in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.sheets))
	for id := range s.sheets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
