// Command snapshot renders the demo menu without a window and writes it as a
// PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/aether/engine/assets"
	"github.com/hubastard/aether/engine/colors"
	"github.com/hubastard/aether/engine/config"
	"github.com/hubastard/aether/engine/gfx/raster"
	"github.com/hubastard/aether/engine/ui"
	"github.com/hubastard/aether/internal/demo"
)

type options struct {
	config   string
	out      string
	width    int
	height   int
	selected int
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "aether.yaml", "path to the YAML config file")
	flag.StringVar(&opts.out, "out", "snapshot.png", "output PNG path")
	flag.IntVar(&opts.width, "width", 0, "image width (defaults to the configured window width)")
	flag.IntVar(&opts.height, "height", 0, "image height (defaults to the configured window height)")
	flag.IntVar(&opts.selected, "select", -1, "index of the entry to show selected")
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	w, h := opts.width, opts.height
	if w <= 0 {
		w = cfg.Window.Width
	}
	if h <= 0 {
		h = cfg.Window.Height
	}

	face, err := assets.LoadFont(cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		return err
	}
	defer face.Close()
	styles, err := demo.Styles(face, cfg.Font.Size)
	if err != nil {
		return err
	}

	surf := raster.New(w, h)
	ctx := ui.NewContext(styles, surf, float32(w), float32(h))
	ctx.Logger = logger.With("component", "ui")

	var menu *demo.Menu
	scr, err := ui.NewScreen(ctx, ui.BuilderFunc(func(s *ui.Screen) error {
		var err error
		if menu, err = demo.NewMenu(ctx, cfg.Window.Title, demo.Entries); err != nil {
			return err
		}
		s.Add(menu)
		return nil
	}))
	if err != nil {
		return err
	}
	defer scr.Close()

	if opts.selected >= 0 {
		if opts.selected >= len(menu.Entries()) {
			return fmt.Errorf("select %d: menu has %d entries", opts.selected, len(menu.Entries()))
		}
		x, y := menu.X+menu.Entries()[opts.selected].X, menu.Y+menu.Entries()[opts.selected].Y
		scr.MouseClicked(x, y)
		// Let the selection fade finish.
		scr.Advance(time.Second)
	}

	surf.Clear(colors.Color(cfg.Window.ClearColor))
	scr.Render()
	if err := surf.SavePNG(opts.out); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	slog.Info("snapshot written", "path", opts.out, "width", w, "height", h)
	return nil
}
