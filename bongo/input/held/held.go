package held

import (
	"fmt"
	"slices"
	"sync"

	"github.com/allape/bongocat/bongo/input"
)

type Kind uint8

const (
	KeyPress Kind = iota + 1
	KeyRelease
	ButtonPress
	ButtonRelease
	// Reset forgets everything held, e.g. when the hook goes away.
	Reset
)

type Button uint16

const (
	ButtonLeft   Button = 1
	ButtonRight  Button = 2
	ButtonMiddle Button = 3
)

type Event struct {
	Kind   Kind
	Code   uint16
	Button Button
}

// Tracker
// Folds global press and release events into what is held down right now.
// Apply runs on the hook goroutine while Keys and Buttons are read from the tick loop.
type Tracker struct {
	mu      sync.Mutex
	keys    map[uint16]struct{}
	buttons map[Button]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		keys:    map[uint16]struct{}{},
		buttons: map[Button]struct{}{},
	}
}

func (t *Tracker) Apply(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Kind {
	case KeyPress:
		t.keys[ev.Code] = struct{}{}
	case KeyRelease:
		delete(t.keys, ev.Code)
	case ButtonPress:
		t.buttons[ev.Button] = struct{}{}
	case ButtonRelease:
		delete(t.buttons, ev.Button)
	case Reset:
		clear(t.keys)
		clear(t.buttons)
	}
}

// Keys lists the held keys by raw code. They are named by code only, the
// overlay never needs to know which key it was.
func (t *Tracker) Keys() []input.Key {
	t.mu.Lock()
	codes := make([]uint16, 0, len(t.keys))
	for code := range t.keys {
		codes = append(codes, code)
	}
	t.mu.Unlock()

	slices.Sort(codes)

	keys := make([]input.Key, len(codes))
	for i, code := range codes {
		keys[i] = input.Key(fmt.Sprintf("raw:%d", code))
	}
	return keys
}

func (t *Tracker) Buttons() input.Buttons {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, left := t.buttons[ButtonLeft]
	_, right := t.buttons[ButtonRight]
	_, middle := t.buttons[ButtonMiddle]

	return input.Buttons{Left: left, Right: right, Middle: middle}
}

// Merge adds what the tracker holds to a sample taken from the focused window.
func (t *Tracker) Merge(s input.Sample) input.Sample {
	b := t.Buttons()
	s.Buttons.Left = s.Buttons.Left || b.Left
	s.Buttons.Right = s.Buttons.Right || b.Right
	s.Buttons.Middle = s.Buttons.Middle || b.Middle

	held := t.Keys()
	if len(held) > 0 {
		s.Keys = append(slices.Clone(s.Keys), held...)
	}
	return s
}
