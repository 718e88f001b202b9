package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFace(t *testing.T) *Face {
	t.Helper()
	f, err := Default(16)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestParseFace_RejectsGarbage(t *testing.T) {
	_, err := ParseFace([]byte("not a font"), 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse font")
}

func TestMeasure(t *testing.T) {
	f := newFace(t)

	w0, h0 := f.Measure("", 16)
	assert.Zero(t, w0)
	assert.Zero(t, h0)

	w1, h1 := f.Measure("Hello", 16)
	assert.Greater(t, w1, float32(0))
	assert.InDelta(t, f.LineHeight(), h1, 1e-4)

	w2, _ := f.Measure("Hello, world", 16)
	assert.Greater(t, w2, w1)

	// doubling the size doubles the extent
	w3, h3 := f.Measure("Hello", 32)
	assert.InDelta(t, w1*2, w3, 1e-3)
	assert.InDelta(t, h1*2, h3, 1e-3)

	_, hm := f.Measure("a\nb\nc", 0)
	assert.InDelta(t, f.LineHeight()*3, hm, 1e-4)
}

func TestAtlas_LayoutMatchesMeasure(t *testing.T) {
	f := newFace(t)
	a, err := BuildAtlas(f)
	require.NoError(t, err)

	sz := a.Image.Bounds().Dx()
	assert.Equal(t, sz, a.Image.Bounds().Dy())
	assert.Equal(t, uint8(255), a.Image.Pix[3], "white texel reserved")

	var quads []Quad
	a.Layout("AB", 10, 20, 16, func(q Quad) { quads = append(quads, q) })
	require.Len(t, quads, 2)
	assert.Greater(t, quads[1].X, quads[0].X)
	for _, q := range quads {
		assert.GreaterOrEqual(t, q.Y, float32(20)-1)
		assert.Less(t, q.U0, q.U1)
		assert.Less(t, q.V0, q.V1)
	}

	// spaces advance the pen but emit nothing
	var n int
	a.Layout(" ", 0, 0, 16, func(Quad) { n++ })
	assert.Zero(t, n)
}
