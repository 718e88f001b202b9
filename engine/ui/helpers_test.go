package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/text"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	ops []string
}

func (r *recorder) Rect(x, y, w, h float32, radius [4]float32, c colors.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %g,%g %gx%g r=%g", x, y, w, h, radius[0]))
}

func (r *recorder) LinearGradient(x, y, w, h float32, _ [4]float32, gx, gy, gw, gh float32, _, _ colors.Color) {
	r.ops = append(r.ops, fmt.Sprintf("gradient %g,%g %gx%g from %g,%g to %g,%g", x, y, w, h, gx, gy, gx+gw, gy+gh))
}

func (r *recorder) Text(x, y float32, s string, _ *text.Face, size float32, _ colors.Color) {
	r.ops = append(r.ops, fmt.Sprintf("text %q %g,%g", s, x, y))
}

func (r *recorder) PushClip(x, y, w, h float32) {
	r.ops = append(r.ops, fmt.Sprintf("clip %g,%g %gx%g", x, y, w, h))
}

func (r *recorder) PopClip() { r.ops = append(r.ops, "pop") }

func newTestContext(t *testing.T, sheets map[string]*style.Sheet) (*Context, *recorder) {
	t.Helper()
	st := style.NewStore()
	for id, sh := range sheets {
		require.NoError(t, st.Register(id, sh))
	}
	rec := &recorder{}
	return NewContext(st, rec, 800, 600), rec
}

func mustBox(t *testing.T, ctx *Context, id string) *Box {
	t.Helper()
	b, err := NewBox(ctx, id)
	require.NoError(t, err)
	return b
}

func buildScreen(t *testing.T, ctx *Context, fn func(s *Screen)) *Screen {
	t.Helper()
	s, err := NewScreen(ctx, BuilderFunc(func(s *Screen) error {
		fn(s)
		return nil
	}))
	require.NoError(t, err)
	return s
}

type fakeAnimator struct {
	elapsed        time.Duration
	ticks, cancels int
	done           bool
}

func (a *fakeAnimator) Advance(dt time.Duration) { a.elapsed += dt }
func (a *fakeAnimator) Tick()                    { a.ticks++ }
func (a *fakeAnimator) Done() bool               { return a.done }
func (a *fakeAnimator) Cancel() bool {
	if a.done {
		return false
	}
	a.cancels++
	a.done = true
	return true
}
