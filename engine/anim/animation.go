package anim

import (
	"time"

	"github.com/hubastard/aether/engine/style"
	"github.com/hubastard/aether/engine/ui"
)

// Keyframe is one stop of an animation. Duration is the time taken to reach
// it from the previous stop; unset aggregates are not animated by this stop.
type Keyframe struct {
	Duration time.Duration
	Ease     Ease

	Margin     *style.Margin
	Padding    *style.Padding
	Background *style.Background
	Bounds     *Bounds
}

func (k Keyframe) copy() Keyframe {
	k.Margin = k.Margin.Copy()
	k.Padding = k.Padding.Copy()
	k.Background = k.Background.Copy()
	k.Bounds = k.Bounds.Copy()
	return k
}

type State int

const (
	Running State = iota
	Held
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Held:
		return "held"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// track binds an Animatable to one keyframe field.
type track[T any] struct {
	impl  Animatable[*T]
	field func(*Keyframe) **T
}

func (tr track[T]) used(frames []Keyframe) bool {
	for i := range frames {
		if *tr.field(&frames[i]) != nil {
			return true
		}
	}
	return false
}

func (tr track[T]) apply(prev, curr *Keyframe, t float32, c *ui.Component, st *ui.InterpolationState) {
	var p *T
	if prev != nil {
		p = *tr.field(prev)
	}
	tr.impl.Animate(p, *tr.field(curr), t, c, st)
}

func (tr track[T]) save(c *ui.Component, kf *Keyframe, retain bool) {
	f := tr.field(kf)
	if retain && *f == nil {
		*f = new(T)
	}
	tr.impl.SaveState(c, *f, retain)
}

type applier interface {
	used(frames []Keyframe) bool
	apply(prev, curr *Keyframe, t float32, c *ui.Component, st *ui.InterpolationState)
	save(c *ui.Component, kf *Keyframe, retain bool)
}

var allTracks = []applier{
	track[Bounds]{BoundsInterpolator{}, func(k *Keyframe) **Bounds { return &k.Bounds }},
	track[style.Padding]{PaddingInterpolator{}, func(k *Keyframe) **style.Padding { return &k.Padding }},
	track[style.Margin]{MarginInterpolator{}, func(k *Keyframe) **style.Margin { return &k.Margin }},
	track[style.Background]{BackgroundInterpolator{}, func(k *Keyframe) **style.Background { return &k.Background }},
}

// Animation plays keyframes on one component. Time is supplied through
// Advance; Tick writes the frame for the current time. The first keyframe
// animates from the component's values at the first Tick.
type Animation struct {
	target  *ui.Component
	frames  []Keyframe
	tracks  []applier
	elapsed time.Duration
	total   time.Duration
	state   State
	retain  bool
	onEnd   []func(State)
}

type Option func(*Animation)

// Retain keeps the final frame applied after the animation ends.
func Retain() Option { return func(a *Animation) { a.retain = true } }

// OnEnd registers fn to run once when the animation finishes or is cancelled.
func OnEnd(fn func(State)) Option {
	return func(a *Animation) { a.onEnd = append(a.onEnd, fn) }
}

// New creates an animation of e. Keyframes are copied.
func New(e ui.Element, frames []Keyframe, opts ...Option) *Animation {
	a := &Animation{target: e.Node()}
	for _, f := range frames {
		f = f.copy()
		if f.Ease == nil {
			f.Ease = Linear
		}
		a.total += f.Duration
		a.frames = append(a.frames, f)
	}
	for _, tr := range allTracks {
		if tr.used(a.frames) {
			a.tracks = append(a.tracks, tr)
		}
	}
	for _, o := range opts {
		o(a)
	}
	if len(a.frames) == 0 {
		a.state = Finished
	}
	return a
}

// Play creates an animation and installs it on e, replacing any running one.
func Play(e ui.Element, frames []Keyframe, opts ...Option) *Animation {
	a := New(e, frames, opts...)
	e.Node().Animate(a)
	return a
}

func (a *Animation) State() State            { return a.state }
func (a *Animation) Elapsed() time.Duration  { return a.elapsed }
func (a *Animation) Duration() time.Duration { return a.total }
func (a *Animation) Target() *ui.Component   { return a.target }

func (a *Animation) Advance(dt time.Duration) {
	if a.state == Running && dt > 0 {
		a.elapsed = min(a.elapsed+dt, a.total)
	}
}

// Seek jumps to an absolute time.
func (a *Animation) Seek(at time.Duration) {
	if a.state == Running {
		a.elapsed = max(0, min(at, a.total))
	}
}

// segment returns the keyframe being approached and the eased progress
// towards it.
func (a *Animation) segment() (int, float32) {
	var start time.Duration
	for i, f := range a.frames {
		end := start + f.Duration
		if a.elapsed < end {
			t := float32(a.elapsed-start) / float32(f.Duration)
			return i, f.Ease(t)
		}
		start = end
	}
	last := len(a.frames) - 1
	return last, a.frames[last].Ease(1)
}

func (a *Animation) Tick() {
	switch a.state {
	case Held:
		last := &a.frames[len(a.frames)-1]
		for _, tr := range a.tracks {
			tr.apply(last, last, 1, a.target, nil)
		}
	case Running:
		i, t := a.segment()
		var prev *Keyframe
		if i > 0 {
			prev = &a.frames[i-1]
		}
		st := a.target.InterpolationState()
		for _, tr := range a.tracks {
			tr.apply(prev, &a.frames[i], t, a.target, st)
		}
		if a.elapsed >= a.total {
			a.finish()
		}
	}
}

func (a *Animation) finish() {
	last := &a.frames[len(a.frames)-1]
	for _, tr := range a.tracks {
		tr.save(a.target, last, a.retain)
	}
	if a.retain {
		a.state = Held
	} else {
		a.state = Finished
	}
	a.end(a.state)
}

// end is the single exit from Running; it owns clearing the snapshot.
func (a *Animation) end(s State) {
	a.target.ClearAnimationCache()
	for _, fn := range a.onEnd {
		fn(s)
	}
}

func (a *Animation) Done() bool { return a.state == Finished || a.state == Cancelled }

// Cancel stops a running or held animation. Live values stay where the last
// Tick left them.
func (a *Animation) Cancel() bool {
	switch a.state {
	case Running:
		a.state = Cancelled
		a.end(Cancelled)
		return true
	case Held:
		a.state = Cancelled
		return true
	}
	return false
}

// Driver steps animations that are not owned by a screen.
type Driver struct {
	anims []*Animation
}

func (d *Driver) Add(a *Animation) { d.anims = append(d.anims, a) }
func (d *Driver) Len() int         { return len(d.anims) }

// Step advances and applies every animation, dropping those that ended.
func (d *Driver) Step(dt time.Duration) {
	live := d.anims[:0]
	for _, a := range d.anims {
		a.Advance(dt)
		a.Tick()
		if !a.Done() {
			live = append(live, a)
		}
	}
	clear(d.anims[len(live):])
	d.anims = live
}

// CancelAll cancels and drops every animation.
func (d *Driver) CancelAll() {
	for _, a := range d.anims {
		a.Cancel()
	}
	d.anims = nil
}
