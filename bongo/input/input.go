package input

import (
	"errors"
	"image"
	"slices"
)

var ErrNoMonitor = errors.New("no monitor detected")

type Key string

type Buttons struct {
	Left   bool
	Right  bool
	Middle bool
}

// Sample
// Point-in-time snapshot of the input layer. Cursor is in absolute screen pixels.
type Sample struct {
	Cursor  image.Point
	Buttons Buttons
	Keys    []Key
	Focused bool
}

func (s Sample) Pressed(k Key) bool {
	return slices.Contains(s.Keys, k)
}

// Screen
// Monitor size and the overlay window rectangle, both in screen pixels.
type Screen struct {
	Width  int
	Height int
	Window image.Rectangle
}

// Device is the input layer. Both calls must be cheap and non-blocking.
type Device interface {
	Screen() (Screen, error)
	Sample() (Sample, error)
}

// Cursor is the cursor position as a fraction of the monitor size.
// It is not clamped, a cursor on another monitor yields values outside [0, 1].
type Cursor struct {
	X, Y float64
}

type InputState struct {
	Left   bool
	Right  bool
	Middle bool
	// Key is set while any keyboard key is down, which one is deliberately dropped.
	Key bool
}

func StateOf(s Sample) InputState {
	return InputState{
		Left:   s.Buttons.Left,
		Right:  s.Buttons.Right,
		Middle: s.Buttons.Middle,
		Key:    len(s.Keys) > 0,
	}
}

// BottomRight places a window of the given size offset pixels away from the
// bottom right corner of the monitor.
func BottomRight(monitorWidth, monitorHeight, width, height, offset int) Screen {
	x := monitorWidth - (width + offset)
	y := monitorHeight - (height + offset)
	return Screen{
		Width:  monitorWidth,
		Height: monitorHeight,
		Window: image.Rect(x, y, x+width, y+height),
	}
}
