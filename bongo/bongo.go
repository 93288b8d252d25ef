package bongo

import (
	"fmt"
	"image"

	"github.com/allape/bongocat/bongo/input"
	"github.com/allape/bongocat/bongo/render"
	"github.com/allape/bongocat/bongo/surface"
	"github.com/allape/gogger"
)

var l = gogger.New("bongo")

// Host drives an overlay: it ticks it at a fixed rate and presents its frames.
type Host interface {
	Run(o *Overlay) error
}

type Options struct {
	Input input.Options
	// Label stamps cursor and opacity onto every frame.
	Label bool
}

// Overlay
// Owns the animation state and connects the input device, the state step
// and the compositor. Not safe for concurrent use.
type Overlay struct {
	Device     input.Device
	Compositor *render.Compositor
	Options    Options

	screen     input.Screen
	state      input.State
	lastSample input.Sample
	frames     int
}

func New(device input.Device, compositor *render.Compositor, options Options) (*Overlay, error) {
	screen, err := device.Screen()
	if err != nil {
		return nil, fmt.Errorf("read screen: %w", err)
	}

	l.Info().Printf("monitor %dx%d, window at %v", screen.Width, screen.Height, screen.Window)

	return &Overlay{
		Device:     device,
		Compositor: compositor,
		Options:    options,
		screen:     screen,
		state:      input.NewState(),
	}, nil
}

func (o *Overlay) Screen() input.Screen {
	return o.screen
}

func (o *Overlay) State() input.State {
	return o.state
}

// Frames is the number of frames presented so far.
func (o *Overlay) Frames() int {
	return o.frames
}

// Tick samples the device once and advances the state.
// A failing device is treated as unchanged input.
func (o *Overlay) Tick() input.Decision {
	sample, err := o.Device.Sample()
	if err != nil {
		l.Verbose().Println("sample input:", err)
		sample = o.lastSample
	} else {
		o.lastSample = sample
	}

	next, decision := input.Step(o.state, sample, o.screen, o.Options.Input)
	o.state = next
	return decision
}

// Redraw renders the current state into s, sized to the overlay window, and presents it.
func (o *Overlay) Redraw(s surface.Surface) error {
	size := o.screen.Window.Size()

	err := s.Resize(size.X, size.Y)
	if err != nil {
		return err
	}

	buf, err := s.Buffer()
	if err != nil {
		return err
	}

	img, err := o.Render(size)
	if err != nil {
		return err
	}

	err = render.Pack(img, s.Format(), buf)
	if err != nil {
		return err
	}

	err = s.Present()
	if err != nil {
		return err
	}

	o.frames++
	return nil
}

// Render produces the current frame as an image of the given size.
func (o *Overlay) Render(size image.Point) (*image.RGBA, error) {
	cursor := o.state.Normalized(o.screen)

	img, _, err := o.Compositor.Render(cursor, o.state.Input, o.state.Opacity, size.X, size.Y)
	if err != nil {
		return nil, err
	}

	if o.Options.Label {
		err = render.Label(img, fmt.Sprintf("%.2f %.2f %.2f", cursor.X, cursor.Y, o.state.Opacity))
		if err != nil {
			return nil, err
		}
	}

	return img, nil
}
