package dummy

import (
	"errors"
	"image"
	"math"

	"github.com/allape/bongocat/bongo/input"
)

var errUnavailable = errors.New("dummy input unavailable")

// Device
// Scripted input. The cursor sweeps the monitor on a Lissajous curve and
// buttons and keys are pressed on a fixed schedule, all driven by the number
// of samples taken so runs are reproducible.
type Device struct {
	input.Device

	ticks int

	Bounds input.Screen
	// Period is the number of samples for one horizontal sweep.
	Period int
	// KeyEvery and ClickEvery are press intervals in samples, 0 disables them.
	KeyEvery   int
	ClickEvery int
	// FailEvery makes every n-th Sample fail, 0 disables it.
	FailEvery int
}

type Options struct {
	MonitorWidth  int
	MonitorHeight int
	WindowWidth   int
	WindowHeight  int
	Offset        int
	Period        int
	KeyEvery      int
	ClickEvery    int
	FailEvery     int
}

func NewDevice(options *Options) *Device {
	if options == nil {
		options = &Options{}
	}

	if options.MonitorWidth == 0 {
		options.MonitorWidth = 1920
	}
	if options.MonitorHeight == 0 {
		options.MonitorHeight = 1080
	}
	if options.WindowWidth == 0 {
		options.WindowWidth = 360
	}
	if options.WindowHeight == 0 {
		options.WindowHeight = 240
	}
	if options.Period == 0 {
		options.Period = 240
	}

	return &Device{
		Bounds:     input.BottomRight(options.MonitorWidth, options.MonitorHeight, options.WindowWidth, options.WindowHeight, options.Offset),
		Period:     options.Period,
		KeyEvery:   options.KeyEvery,
		ClickEvery: options.ClickEvery,
		FailEvery:  options.FailEvery,
	}
}

func (d *Device) Screen() (input.Screen, error) {
	if d.Bounds.Width <= 0 || d.Bounds.Height <= 0 {
		return input.Screen{}, input.ErrNoMonitor
	}
	return d.Bounds, nil
}

func (d *Device) Sample() (input.Sample, error) {
	tick := d.ticks
	d.ticks++

	if d.FailEvery > 0 && tick%d.FailEvery == d.FailEvery-1 {
		return input.Sample{}, errUnavailable
	}

	phase := 2 * math.Pi * float64(tick) / float64(d.Period)
	x := (math.Sin(phase) + 1) / 2
	y := (math.Sin(phase*1.5) + 1) / 2

	s := input.Sample{
		Cursor: image.Pt(
			int(x*float64(d.Bounds.Width-1)),
			int(y*float64(d.Bounds.Height-1)),
		),
		Focused: true,
	}

	if d.ClickEvery > 0 {
		switch (tick / d.ClickEvery) % 4 {
		case 1:
			s.Buttons.Left = true
		case 2:
			s.Buttons.Right = true
		case 3:
			s.Buttons.Middle = true
		}
	}

	if d.KeyEvery > 0 && (tick/d.KeyEvery)%2 == 1 {
		s.Keys = []input.Key{"Space"}
	}

	return s, nil
}
