package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/aether/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "menu.png")
	require.NoError(t, run(options{
		config:   filepath.Join(dir, "missing.yaml"),
		out:      out,
		width:    640,
		height:   480,
		selected: 1,
	}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())

	want := colors.DarkGray.NRGBA()
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, [3]uint8{want.R, want.G, want.B}, [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, "background is the clear colour")
}

func TestRun_RejectsUnknownEntry(t *testing.T) {
	dir := t.TempDir()
	err := run(options{
		config:   filepath.Join(dir, "missing.yaml"),
		out:      filepath.Join(dir, "menu.png"),
		width:    320,
		height:   240,
		selected: 99,
	})
	assert.ErrorContains(t, err, "select 99")
	assert.NoFileExists(t, filepath.Join(dir, "menu.png"))
}
