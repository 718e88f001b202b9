package main

import (
	"fmt"

	"github.com/hubastard/aether/engine/core"
	"github.com/hubastard/aether/engine/profiler"
	"github.com/hubastard/aether/engine/ui"
	"github.com/hubastard/aether/internal/demo"
)

// ------- Debug overlay layer -------
type LayerDebug struct {
	app           *App
	screen        *ui.Screen
	lines         map[string]*ui.Label
	frameDuration float32
	tick          int
	gpu           [3]string
}

// debugRows lists the overlay content; rows without a key are headers.
var debugRows = []struct{ key, header string }{
	{header: "Frame"},
	{key: "frame"},
	{key: "time"},
	{header: "2D Renderer"},
	{key: "draws"},
	{key: "quads"},
	{key: "shapes"},
	{key: "vertices"},
	{key: "textures"},
	{header: "Memory"},
	{key: "usage"},
	{key: "allocs"},
	{key: "goroutines"},
	{header: "GPU"},
	{key: "vendor"},
	{key: "renderer"},
	{key: "version"},
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	if d := l.app.device; d != nil {
		l.gpu[0], l.gpu[1], l.gpu[2] = d.GPUInfo()
	}

	w, h := e.Window.FramebufferSize()
	ctx := ui.NewContext(l.app.styles, l.app.r2d, float32(w), float32(h))
	ctx.Logger = e.Logger.With("component", "debug")
	l.lines = make(map[string]*ui.Label)

	var err error
	l.screen, err = ui.NewScreen(ctx, ui.BuilderFunc(func(s *ui.Screen) error {
		panel, err := ui.NewListLayout(ctx, demo.StyleDebugPanel, ui.Vertical, ui.Forward)
		if err != nil {
			return err
		}
		for _, row := range debugRows {
			id, txt := demo.StyleDebugLine, ""
			if row.key == "" {
				id, txt = demo.StyleDebugHeader, row.header
			}
			lbl, err := ui.NewLabel(ctx, id, txt)
			if err != nil {
				return err
			}
			if row.key != "" {
				l.lines[row.key] = lbl
			}
			panel.Add(lbl)
		}
		s.Add(panel)
		return nil
	}))
	if err != nil {
		e.Logger.Error("build debug overlay", "err", err)
	}
}

func (l *LayerDebug) OnDetach(e *core.Engine) {
	if l.screen != nil {
		l.screen.Close()
	}
}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if l.screen == nil {
		return
	}
	defer profiler.Begin("LayerDebug.OnRender")()

	st := l.app.stats
	l.set("frame", "%d", l.tick)
	l.set("time", "%2.3f ms (%.2f FPS)", l.frameDuration, 1000.0/max(l.frameDuration, 1e-3))
	l.set("draws", "Draw calls: %d", st.DrawCalls)
	l.set("quads", "Quads: %d", st.QuadCount)
	l.set("shapes", "Shapes: %d", st.ShapeCount)
	l.set("vertices", "Vertices: %d", st.VertexCount)
	l.set("textures", "Textures: %d", st.TextureCount)
	l.set("usage", "Usage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20))
	l.set("allocs", "Allocs: %d", profiler.MemoryAllocs())
	l.set("goroutines", "Goroutines: %d (%d CPUs)", profiler.NumGoroutine(), profiler.NumCPU())
	l.set("vendor", "%s", l.gpu[0])
	l.set("renderer", "%s", l.gpu[1])
	l.set("version", "%s", l.gpu[2])
	l.screen.Update()

	w, h := e.Window.FramebufferSize()
	l.app.r2d.Begin(w, h)
	l.screen.Render()
	if err := l.app.r2d.End(); err != nil {
		e.Logger.Warn("render debug overlay", "err", err)
	}
}

func (l *LayerDebug) set(key, format string, args ...any) {
	if lbl, ok := l.lines[key]; ok {
		lbl.SetText(fmt.Sprintf(format, args...))
	}
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0 {
			if path, err := profiler.Open(l.app.cfg.Profiler.Output); err == nil {
				e.Logger.Info("speedscope dump", "path", path)
			} else {
				e.Logger.Warn("profiler dump", "err", err)
			}
			return true
		}
	case core.EventResize:
		if l.screen != nil && v.W >= 1 && v.H >= 1 {
			l.screen.Resize(float32(v.W), float32(v.H))
		}
	}
	return false
}
