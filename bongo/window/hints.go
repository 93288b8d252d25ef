package window

import (
	"github.com/allape/gogger"
)

var l = gogger.New("bongo.window")

type Hint string

const (
	SkipTaskbar            Hint = "skip_taskbar"
	HideTitlebar           Hint = "hide_titlebar"
	VisibleOnAllWorkspaces Hint = "visible_on_all_workspaces"
	Shadow                 Hint = "shadow"
)

var AllHints = []Hint{SkipTaskbar, HideTitlebar, VisibleOnAllWorkspaces, Shadow}

// Hints
// Optional window styling. A requested hint is only honored where the
// platform and the host both support it, everything else is dropped.
type Hints struct {
	SkipTaskbar            bool
	HideTitlebar           bool
	VisibleOnAllWorkspaces bool
	Shadow                 bool
}

// DefaultHints keeps the overlay out of the taskbar. The remaining hints are
// opt-in since most hosts cannot apply them.
func DefaultHints() Hints {
	return Hints{
		SkipTaskbar: true,
	}
}

func (h Hints) Get(hint Hint) bool {
	switch hint {
	case SkipTaskbar:
		return h.SkipTaskbar
	case HideTitlebar:
		return h.HideTitlebar
	case VisibleOnAllWorkspaces:
		return h.VisibleOnAllWorkspaces
	case Shadow:
		return h.Shadow
	}
	return false
}

func (h *Hints) Set(hint Hint, value bool) {
	switch hint {
	case SkipTaskbar:
		h.SkipTaskbar = value
	case HideTitlebar:
		h.HideTitlebar = value
	case VisibleOnAllWorkspaces:
		h.VisibleOnAllWorkspaces = value
	case Shadow:
		h.Shadow = value
	}
}

type Capabilities map[Hint]bool

func (c Capabilities) Supports(hint Hint) bool {
	return c[hint]
}

// Intersect keeps the hints supported by both.
func (c Capabilities) Intersect(other Capabilities) Capabilities {
	out := Capabilities{}
	for hint, ok := range c {
		if ok && other[hint] {
			out[hint] = true
		}
	}
	return out
}

// Platform returns the hints the current OS can express.
func Platform() Capabilities {
	return platformCapabilities()
}

// Negotiate
// Splits requested into the hints an adapter can apply and the ones it
// cannot. Unsupported hints fall back to the zero value in applied.
func Negotiate(requested Hints, caps Capabilities) (applied Hints, dropped []Hint) {
	for _, hint := range AllHints {
		if caps.Supports(hint) {
			applied.Set(hint, requested.Get(hint))
			continue
		}
		if requested.Get(hint) {
			dropped = append(dropped, hint)
		}
	}

	if len(dropped) > 0 {
		l.Verbose().Println("unsupported window hints dropped:", dropped)
	}

	return applied, dropped
}

// Explicit filters dropped down to the hints requested beyond DefaultHints.
func Explicit(dropped []Hint) []Hint {
	defaults := DefaultHints()
	var out []Hint
	for _, hint := range dropped {
		if !defaults.Get(hint) {
			out = append(out, hint)
		}
	}
	return out
}
