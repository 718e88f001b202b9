package core

// Input tracks the latest key, button and cursor state from events.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mods           Mod
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
		in.mods = e.Mods
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mods() Mod                       { return in.mods }
func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }

// ScaleCursor converts a cursor position from window coordinates to
// framebuffer pixels. They differ by the content scale on HiDPI displays.
// A minimised window has a zero size and leaves the position unchanged.
func ScaleCursor(x, y float64, winW, winH, fbW, fbH int) (float64, float64) {
	if winW > 0 && fbW > 0 {
		x *= float64(fbW) / float64(winW)
	}
	if winH > 0 && fbH > 0 {
		y *= float64(fbH) / float64(winH)
	}
	return x, y
}
