package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/aether/engine/assets"
	"github.com/hubastard/aether/engine/config"
	"github.com/hubastard/aether/engine/core"
	glbackend "github.com/hubastard/aether/engine/gfx/gl"
	"github.com/hubastard/aether/engine/gfx/renderer2d"
	"github.com/hubastard/aether/engine/platform"
	"github.com/hubastard/aether/engine/profiler"
	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/text"
	"github.com/hubastard/aether/internal/demo"
)

type App struct {
	cfg    *config.Config
	face   *text.Face
	styles *style.Store

	window *platform.GLFWWindow
	device *glbackend.Device
	r2d    *renderer2d.Renderer2D

	lastFrame  time.Time
	tick       int
	stats      renderer2d.Statistics
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	var err error
	a.r2d, err = renderer2d.New(a.device, 10000)
	if err != nil {
		e.Logger.Error("create 2D renderer", "err", err)
		e.Window.RequestClose()
		return
	}

	e.PushLayer(&LayerUI{app: a})
	a.debugLayer = &LayerDebug{app: a}
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

// OnEvent sees what no layer handled. Escape quits unless the UI took it.
func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.cfg.Profiler.Enabled {
		if path, err := profiler.Dump(a.cfg.Profiler.Output); err != nil {
			e.Logger.Warn("dump profile", "err", err)
		} else {
			e.Logger.Info("profile written", "path", path)
		}
	}
	if err := a.face.Close(); err != nil {
		e.Logger.Warn("close font", "err", err)
	}
}

func main() {
	configPath := flag.String("config", "aether.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		slog.Error("create logger", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	if cfg.Profiler.Enabled {
		profiler.Init(cfg.Profiler.Capacity)
	}

	face, err := assets.LoadFont(cfg.Font.Path, cfg.Font.Size)
	if err != nil {
		slog.Error("load font", "err", err)
		os.Exit(1)
	}
	styles, err := demo.Styles(face, cfg.Font.Size)
	if err != nil {
		slog.Error("register styles", "err", err)
		os.Exit(1)
	}

	app := &App{cfg: cfg, face: face, styles: styles}

	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		app.window = w
		return w, nil
	}
	newDevice := func(win core.Window, cfg core.Config) (core.Device, error) {
		d, err := glbackend.New(win, cfg)
		if err != nil {
			return nil, err
		}
		app.device = d
		return d, nil
	}

	err = core.Run(app, cfg.Window.Engine(), newWindow, newDevice)
	if app.window != nil {
		app.window.Destroy()
	}
	if err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
