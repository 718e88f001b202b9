package main

import (
	"time"

	"github.com/hubastard/aether/engine/core"
	"github.com/hubastard/aether/engine/profiler"
	"github.com/hubastard/aether/engine/ui"
	"github.com/hubastard/aether/internal/demo"
)

// ------- Menu screen layer -------
type LayerUI struct {
	app    *App
	screen *ui.Screen
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	ctx := ui.NewContext(l.app.styles, l.app.r2d, float32(w), float32(h))
	ctx.Logger = e.Logger.With("component", "ui")

	var err error
	l.screen, err = ui.NewScreen(ctx, demo.Builder(l.app.cfg.Window.Title, demo.Entries))
	if err != nil {
		e.Logger.Error("build menu screen", "err", err)
		e.Window.RequestClose()
	}
}

func (l *LayerUI) OnDetach(e *core.Engine) {
	if l.screen != nil {
		l.screen.Close()
	}
}

func (l *LayerUI) OnUpdate(e *core.Engine, dt float64) {
	if l.screen != nil {
		l.screen.Advance(time.Duration(dt * float64(time.Second)))
	}
}

func (l *LayerUI) OnRender(e *core.Engine, alpha float64) {
	if l.screen == nil {
		return
	}
	defer profiler.Begin("LayerUI.OnRender")()

	w, h := e.Window.FramebufferSize()
	l.app.r2d.Begin(w, h)
	l.screen.Render()
	if err := l.app.r2d.End(); err != nil {
		e.Logger.Warn("render menu", "err", err)
	}
	l.app.stats = l.app.r2d.Stats()
}

// OnEvent forwards input to the screen. The window reports the cursor in
// framebuffer pixels, the space the screen lays out in.
func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	if l.screen == nil {
		return false
	}
	return l.screen.HandleEvent(ev)
}
