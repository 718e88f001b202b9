package assets

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/hubastard/aether/engine/text"
)

// LoadFont reads a TrueType/OpenType file and builds a face of sizePx pixels.
// An empty path selects the built-in Go Regular face.
func LoadFont(path string, sizePx float32) (*text.Face, error) {
	if path == "" {
		return text.Default(sizePx)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	f, err := text.ParseFace(b, sizePx)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	return f, nil
}

// LoadFontFS is LoadFont over an fs.FS, e.g. an embedded asset directory.
func LoadFontFS(fsys fs.FS, name string, sizePx float32) (*text.Face, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	f, err := text.ParseFace(b, sizePx)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", name, err)
	}
	return f, nil
}
