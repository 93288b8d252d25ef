package input

import (
	"image"
)

const (
	DefaultMinOpacity  float32 = 0.4
	DefaultOpacityStep float32 = 0.08
	DefaultQuitKey     Key     = "Q"
)

type Options struct {
	MinOpacity  float32
	OpacityStep float32
	QuitKey     Key
}

func DefaultOptions() Options {
	return Options{
		MinOpacity:  DefaultMinOpacity,
		OpacityStep: DefaultOpacityStep,
		QuitKey:     DefaultQuitKey,
	}
}

// State
// Everything the overlay remembers between ticks.
type State struct {
	Cursor   image.Point
	Input    InputState
	Hovering bool
	Opacity  float32

	initialized bool
}

func NewState() State {
	return State{Opacity: 1}
}

// Normalized divides the last cursor position by the monitor size.
func (s State) Normalized(screen Screen) Cursor {
	var c Cursor
	if screen.Width > 0 {
		c.X = float64(s.Cursor.X) / float64(screen.Width)
	}
	if screen.Height > 0 {
		c.Y = float64(s.Cursor.Y) / float64(screen.Height)
	}
	return c
}

type Decision struct {
	Redraw bool
	Quit   bool
}

// Step
// Advances the state by one tick. The previous state is never modified.
// On quit the returned state equals prev.
func Step(prev State, sample Sample, screen Screen, opts Options) (State, Decision) {
	if sample.Focused && opts.QuitKey != "" && sample.Pressed(opts.QuitKey) {
		return prev, Decision{Quit: true}
	}

	next := prev
	redraw := !prev.initialized
	next.initialized = true

	if sample.Cursor != prev.Cursor {
		next.Cursor = sample.Cursor
		redraw = true
	}

	if in := StateOf(sample); in != prev.Input {
		next.Input = in
		redraw = true
	}

	// opacity follows the hover flag of the previous tick
	next.Opacity = StepOpacity(prev.Opacity, prev.Hovering, opts)
	if next.Opacity != prev.Opacity {
		redraw = true
	}

	next.Hovering = sample.Cursor.In(screen.Window)
	if next.Hovering != prev.Hovering {
		redraw = true
	}

	return next, Decision{Redraw: redraw}
}

// StepOpacity moves opacity one step toward MinOpacity while hovering and toward 1 otherwise.
func StepOpacity(opacity float32, hovering bool, opts Options) float32 {
	if hovering {
		return max(opacity-opts.OpacityStep, opts.MinOpacity)
	}
	return min(opacity+opts.OpacityStep, 1)
}
