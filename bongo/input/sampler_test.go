package input

import (
	"image"
	"math/rand"
	"testing"
)

var testScreen = Screen{
	Width:  1920,
	Height: 1080,
	Window: image.Rect(1510, 790, 1870, 1030),
}

func TestFirstStepRedraws(t *testing.T) {
	_, d := Step(NewState(), Sample{}, testScreen, DefaultOptions())
	if !d.Redraw {
		t.Fatal("expected first tick to redraw")
	}
}

func TestStepIdleDoesNotRedraw(t *testing.T) {
	opts := DefaultOptions()
	s := Sample{Cursor: image.Pt(100, 100)}

	state := NewState()
	for range 3 {
		state, _ = Step(state, s, testScreen, opts)
	}

	_, d := Step(state, s, testScreen, opts)
	if d.Redraw || d.Quit {
		t.Fatalf("expected no redraw, got %+v", d)
	}
}

func TestStepRedrawsOnChange(t *testing.T) {
	opts := DefaultOptions()
	base := Sample{Cursor: image.Pt(100, 100)}

	state := NewState()
	state, _ = Step(state, base, testScreen, opts)

	cases := map[string]Sample{
		"cursor": {Cursor: image.Pt(101, 100)},
		"left":   {Cursor: base.Cursor, Buttons: Buttons{Left: true}},
		"right":  {Cursor: base.Cursor, Buttons: Buttons{Right: true}},
		"middle": {Cursor: base.Cursor, Buttons: Buttons{Middle: true}},
		"key":    {Cursor: base.Cursor, Keys: []Key{"A"}},
		"hover":  {Cursor: image.Pt(1600, 900)},
	}
	for name, s := range cases {
		_, d := Step(state, s, testScreen, opts)
		if !d.Redraw {
			t.Fatalf("%s: expected redraw", name)
		}
	}
}

func TestStepQuit(t *testing.T) {
	opts := DefaultOptions()
	state, _ := Step(NewState(), Sample{Cursor: image.Pt(5, 5)}, testScreen, opts)

	next, d := Step(state, Sample{Keys: []Key{"Q"}, Focused: true}, testScreen, opts)
	if !d.Quit {
		t.Fatal("expected quit")
	}
	if next != state {
		t.Fatalf("expected state to be unchanged on quit, got %+v", next)
	}

	_, d = Step(state, Sample{Keys: []Key{"Q"}, Focused: false}, testScreen, opts)
	if d.Quit {
		t.Fatal("unfocused window must not quit")
	}
}

func TestStepKeyStateDropsIdentity(t *testing.T) {
	state, _ := Step(NewState(), Sample{Keys: []Key{"A", "LeftShift"}}, testScreen, DefaultOptions())
	if state.Input != (InputState{Key: true}) {
		t.Fatalf("expected only the Key flag, got %+v", state.Input)
	}
}

func TestOpacityBoundedAndMonotonic(t *testing.T) {
	opts := DefaultOptions()
	inside := Sample{Cursor: image.Pt(1600, 900)}
	outside := Sample{Cursor: image.Pt(10, 10)}

	state := NewState()
	for range 50 + rand.Intn(50) {
		next, _ := Step(state, inside, testScreen, opts)
		if state.Hovering && next.Opacity > state.Opacity {
			t.Fatalf("opacity increased while hovering: %v -> %v", state.Opacity, next.Opacity)
		}
		if next.Opacity < opts.MinOpacity || next.Opacity > 1 {
			t.Fatalf("opacity out of bounds: %v", next.Opacity)
		}
		state = next
	}
	if state.Opacity != opts.MinOpacity {
		t.Fatalf("expected opacity to settle at %v, got %v", opts.MinOpacity, state.Opacity)
	}

	for range 50 + rand.Intn(50) {
		next, _ := Step(state, outside, testScreen, opts)
		if !state.Hovering && next.Opacity < state.Opacity {
			t.Fatalf("opacity decreased while not hovering: %v -> %v", state.Opacity, next.Opacity)
		}
		if next.Opacity < opts.MinOpacity || next.Opacity > 1 {
			t.Fatalf("opacity out of bounds: %v", next.Opacity)
		}
		state = next
	}
	if state.Opacity != 1 {
		t.Fatalf("expected opacity to settle at 1, got %v", state.Opacity)
	}
}

func TestOpacityRandomWalkStaysInRange(t *testing.T) {
	opts := DefaultOptions()
	opacity := float32(1)
	for range 100_000 {
		opacity = StepOpacity(opacity, rand.Intn(2) == 0, opts)
		if opacity < opts.MinOpacity || opacity > 1 {
			t.Fatalf("opacity out of bounds: %v", opacity)
		}
	}
}

func TestHoverUsesHalfOpenWindow(t *testing.T) {
	opts := DefaultOptions()
	w := testScreen.Window

	state, _ := Step(NewState(), Sample{Cursor: w.Min}, testScreen, opts)
	if !state.Hovering {
		t.Fatal("expected top-left corner to hover")
	}
	state, _ = Step(NewState(), Sample{Cursor: w.Max}, testScreen, opts)
	if state.Hovering {
		t.Fatal("expected bottom-right corner to be outside")
	}
}

func TestNormalized(t *testing.T) {
	s := State{Cursor: image.Pt(960, 1080)}
	c := s.Normalized(testScreen)
	if c.X != 0.5 || c.Y != 1 {
		t.Fatalf("expected (0.5, 1), got %+v", c)
	}

	s = State{Cursor: image.Pt(-960, 2160)}
	c = s.Normalized(testScreen)
	if c.X != -0.5 || c.Y != 2 {
		t.Fatalf("expected unclamped (-0.5, 2), got %+v", c)
	}

	if c := s.Normalized(Screen{}); c != (Cursor{}) {
		t.Fatalf("expected zero cursor without a monitor, got %+v", c)
	}
}
