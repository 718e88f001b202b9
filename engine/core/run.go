package core

import (
	"log/slog"
	"runtime"
	"time"
)

// Run wires the platform window + device and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window, Config) (Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	dev, err := newDevice(win, cfg)
	if err != nil {
		return err
	}
	defer dev.Shutdown()

	w, h := win.FramebufferSize()
	dev.Resize(w, h)

	eng := &Engine{
		Window: win,
		Device: dev,
		Layers: &LayerStack{},
		Input:  NewInput(),
		Logger: slog.Default().With("component", "engine"),
		start:  time.Now(),
	}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		switch e := ev.(type) {
		case EventResize:
			if e.W >= 1 && e.H >= 1 {
				dev.Resize(e.W, e.H)
			}
		case EventCloseRequested:
			win.RequestClose()
		}
		handled := eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
		if !handled {
			app.OnEvent(eng, ev)
		}
	})

	app.OnStart(eng)
	eng.Logger.Info("engine started", "title", cfg.Title, "width", w, "height", h)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
		frames  int
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}
		alpha := float64(accum) / float64(tick)

		dev.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		win.SwapBuffers()
		frames++
	}

	for eng.Layers.Len() > 0 {
		eng.PopLayer()
	}
	app.OnShutdown(eng)
	eng.Logger.Info("engine exit", "frames", frames, "uptime", eng.Uptime())
	return nil
}
