package desktop

import (
	"github.com/allape/bongocat/bongo/input/held"
	"github.com/allape/gogger"
	hook "github.com/robotn/gohook"
)

var l = gogger.New("bongo.input.desktop")

// event maps a gohook event onto the tracker. gohook keeps libuiohook's
// numbering: KeyHold and MouseHold are presses, MouseDown is the release.
func event(ev hook.Event) (held.Event, bool) {
	switch ev.Kind {
	case hook.KeyDown, hook.KeyHold:
		return held.Event{Kind: held.KeyPress, Code: ev.Rawcode}, true
	case hook.KeyUp:
		return held.Event{Kind: held.KeyRelease, Code: ev.Rawcode}, true
	case hook.MouseHold:
		return held.Event{Kind: held.ButtonPress, Button: held.Button(ev.Button)}, true
	case hook.MouseDown, hook.MouseUp:
		return held.Event{Kind: held.ButtonRelease, Button: held.Button(ev.Button)}, true
	case hook.HookDisabled:
		return held.Event{Kind: held.Reset}, true
	}
	return held.Event{}, false
}

// Listen starts the global hook so keys and buttons pressed in other
// applications reach the overlay.
func (d *Device) Listen() {
	if d.hooked {
		return
	}
	d.hooked = true

	events := hook.Start()
	l.Info().Println("global input hook started")

	go func() {
		for ev := range events {
			if e, ok := event(ev); ok {
				d.held.Apply(e)
			}
		}
		d.held.Apply(held.Event{Kind: held.Reset})
		l.Verbose().Println("global input hook stopped")
	}()
}

func (d *Device) Close() error {
	if !d.hooked {
		return nil
	}
	d.hooked = false
	hook.End()
	return nil
}
