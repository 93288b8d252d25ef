package held

import (
	"sync"
	"testing"

	"github.com/allape/bongocat/bongo/input"
)

func TestKeysFollowPressAndRelease(t *testing.T) {
	tr := NewTracker()

	tr.Apply(Event{Kind: KeyPress, Code: 38})
	tr.Apply(Event{Kind: KeyPress, Code: 12})
	tr.Apply(Event{Kind: KeyPress, Code: 38})

	keys := tr.Keys()
	if len(keys) != 2 || keys[0] != "raw:12" || keys[1] != "raw:38" {
		t.Fatalf("expected [raw:12 raw:38], got %v", keys)
	}

	tr.Apply(Event{Kind: KeyRelease, Code: 12})
	tr.Apply(Event{Kind: KeyRelease, Code: 99})
	if keys := tr.Keys(); len(keys) != 1 || keys[0] != "raw:38" {
		t.Fatalf("expected [raw:38], got %v", keys)
	}
}

func TestButtons(t *testing.T) {
	tr := NewTracker()

	tr.Apply(Event{Kind: ButtonPress, Button: ButtonLeft})
	tr.Apply(Event{Kind: ButtonPress, Button: ButtonMiddle})
	if b := tr.Buttons(); b != (input.Buttons{Left: true, Middle: true}) {
		t.Fatalf("expected left and middle, got %+v", b)
	}

	tr.Apply(Event{Kind: ButtonRelease, Button: ButtonLeft})
	tr.Apply(Event{Kind: ButtonPress, Button: ButtonRight})
	if b := tr.Buttons(); b != (input.Buttons{Right: true, Middle: true}) {
		t.Fatalf("expected right and middle, got %+v", b)
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.Apply(Event{Kind: KeyPress, Code: 1})
	tr.Apply(Event{Kind: ButtonPress, Button: ButtonRight})
	tr.Apply(Event{Kind: Reset})

	if len(tr.Keys()) != 0 || tr.Buttons() != (input.Buttons{}) {
		t.Fatalf("expected nothing held after reset, got %v %+v", tr.Keys(), tr.Buttons())
	}
}

// A key typed into another application reaches the sample even though the
// overlay window saw nothing.
func TestMergeUnfocusedInput(t *testing.T) {
	tr := NewTracker()
	tr.Apply(Event{Kind: KeyPress, Code: 30})
	tr.Apply(Event{Kind: ButtonPress, Button: ButtonRight})

	s := tr.Merge(input.Sample{Focused: false})
	in := input.StateOf(s)
	if !in.Key || !in.Right || in.Left || in.Middle {
		t.Fatalf("expected key and right button, got %+v", in)
	}
	if s.Pressed(input.DefaultQuitKey) {
		t.Fatal("held keys must not be reported by name")
	}
}

func TestMergeKeepsWindowInput(t *testing.T) {
	tr := NewTracker()

	window := input.Sample{
		Keys:    []input.Key{"Q"},
		Buttons: input.Buttons{Left: true},
		Focused: true,
	}
	s := tr.Merge(window)
	if !s.Pressed("Q") || !s.Buttons.Left || len(s.Keys) != 1 {
		t.Fatalf("expected window input untouched, got %+v", s)
	}

	tr.Apply(Event{Kind: KeyPress, Code: 16})
	s = tr.Merge(window)
	if len(s.Keys) != 2 || len(window.Keys) != 1 {
		t.Fatalf("expected merged keys without touching the original, got %v and %v", s.Keys, window.Keys)
	}
}

func TestConcurrentApply(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			tr.Apply(Event{Kind: KeyPress, Code: uint16(i % 7)})
			tr.Apply(Event{Kind: KeyRelease, Code: uint16(i % 7)})
		}
	}()
	for range 1000 {
		_ = tr.Merge(input.Sample{})
	}
	wg.Wait()

	if len(tr.Keys()) != 0 {
		t.Fatalf("expected every key released, got %v", tr.Keys())
	}
}
