package ui

import (
	"testing"

	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listSheets(margin *style.Margin) map[string]*style.Sheet {
	row := func(h float32) *style.Sheet {
		return &style.Sheet{Width: unit.Rel(1), Height: unit.Px(h), Margin: margin.Copy()}
	}
	return map[string]*style.Sheet{
		"list":     {Width: unit.Rel(1), Height: unit.Rel(1)},
		"list@100": {X: unit.Px(50), Y: unit.Px(100), Width: unit.Px(200), Height: unit.Px(300)},
		"clip@100": {X: unit.Px(50), Y: unit.Px(100), Width: unit.Px(200), Height: unit.Px(300), ClipContent: true},
		"row10":    row(10),
		"row20":    row(20),
		"row30":    row(30),
		"attached": {Y: unit.Px(5), Width: unit.Px(4), Height: unit.Px(4)},
	}
}

func buildList(t *testing.T, ctx *Context, id string, dir Direction, order Order) (*ListLayout, []*Box) {
	t.Helper()
	var (
		list *ListLayout
		rows []*Box
	)
	buildScreen(t, ctx, func(s *Screen) {
		var err error
		list, err = NewListLayout(ctx, id, dir, order)
		require.NoError(t, err)
		for _, r := range []string{"row10", "row20", "row30"} {
			b := mustBox(t, ctx, r)
			rows = append(rows, b)
			list.Add(b)
		}
		s.Add(list)
	})
	return list, rows
}

func ys(rows []*Box) []float32 {
	out := make([]float32, len(rows))
	for i, r := range rows {
		out[i] = r.Y
	}
	return out
}

func TestListLayout_Vertical(t *testing.T) {
	tests := []struct {
		name   string
		list   string
		order  Order
		margin *style.Margin
		want   []float32
	}{
		{"forward", "list", Forward, nil, []float32{0, 10, 30}},
		{"backward", "list", Backward, nil, []float32{50, 30, 0}},
		{"margins", "list", Forward, style.MarginAll(unit.Px(5)), []float32{5, 25, 55}},
		{"non-clipping offset", "list@100", Forward, nil, []float32{100, 110, 130}},
		{"clipping offset", "clip@100", Forward, nil, []float32{0, 10, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := newTestContext(t, listSheets(tt.margin))
			_, rows := buildList(t, ctx, tt.list, Vertical, tt.order)
			assert.Equal(t, tt.want, ys(rows))
			for _, r := range rows {
				ox, oy := r.Overridden()
				assert.False(t, ox)
				assert.True(t, oy)
				assert.Equal(t, r.Y, r.RelY)
			}
		})
	}
}

func TestListLayout_Horizontal(t *testing.T) {
	sheets := map[string]*style.Sheet{
		"list": {X: unit.Px(7), Width: unit.Px(300), Height: unit.Px(40)},
		"a":    {Width: unit.Px(10), Height: unit.Rel(1), Padding: style.Paddings(nil, unit.Px(2), nil, unit.Px(3))},
		"b":    {Width: unit.Px(20), Height: unit.Rel(1), Margin: style.Margins(nil, unit.Px(1), nil, unit.Px(4))},
	}
	ctx, _ := newTestContext(t, sheets)
	var a, b *Box
	buildScreen(t, ctx, func(s *Screen) {
		list, err := NewListLayout(ctx, "list", Horizontal, Forward)
		require.NoError(t, err)
		a, b = mustBox(t, ctx, "a"), mustBox(t, ctx, "b")
		list.Add(a, b)
		s.Add(list)
	})

	assert.Equal(t, float32(7), a.X)
	// a spans 15 including padding, b leads with a 4px margin
	assert.Equal(t, float32(7+15+4), b.X)
	assert.Equal(t, float32(40), b.Height)
	assert.Zero(t, b.Y)
}

func TestListLayout_SkipsForeignChildren(t *testing.T) {
	ctx, _ := newTestContext(t, listSheets(nil))
	var (
		rows  []*Box
		extra *Box
	)
	buildScreen(t, ctx, func(s *Screen) {
		list, err := NewListLayout(ctx, "list", Vertical, Forward)
		require.NoError(t, err)
		for _, r := range []string{"row10", "row20"} {
			b := mustBox(t, ctx, r)
			rows = append(rows, b)
			list.Add(b)
		}
		extra = mustBox(t, ctx, "attached")
		list.Attach(extra, rows[1])
		s.Add(list)
	})

	assert.Equal(t, []float32{0, 10}, ys(rows))
	_, oy := extra.Overridden()
	assert.False(t, oy)
	assert.Equal(t, float32(15), extra.Y, "positioned by its own parent")
}

func TestListLayout_RemoveReleasesChild(t *testing.T) {
	ctx, _ := newTestContext(t, listSheets(nil))
	var (
		list *ListLayout
		rows []*Box
	)
	s := buildScreen(t, ctx, func(s *Screen) {
		var err error
		list, err = NewListLayout(ctx, "list", Vertical, Forward)
		require.NoError(t, err)
		for _, r := range []string{"row10", "row20", "row30"} {
			b := mustBox(t, ctx, r)
			rows = append(rows, b)
			list.Add(b)
		}
		s.Add(list)
	})

	require.True(t, list.Remove(rows[0]))
	assert.False(t, list.Remove(rows[0]))
	s.Update()
	assert.Equal(t, float32(0), rows[1].Y)
	assert.Equal(t, float32(20), rows[2].Y)
	assert.Nil(t, rows[0].Parent())
	_, oy := rows[0].Overridden()
	assert.False(t, oy)
}
