package desktop

import (
	"image"

	"github.com/allape/bongocat/bongo/input"
	"github.com/allape/bongocat/bongo/input/held"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Device
// Reads the cursor, focus and focused-window input through ebiten, and keys
// and buttons pressed anywhere through the global hook once Listen was
// called. Sample must be called from the ebiten update loop, Screen may be
// called before the game runs.
type Device struct {
	input.Device

	keys   []ebiten.Key
	held   *held.Tracker
	hooked bool

	WindowWidth  int
	WindowHeight int
	Offset       int
}

type Options struct {
	WindowWidth  int
	WindowHeight int
	Offset       int
}

func NewDevice(options *Options) *Device {
	if options == nil {
		options = &Options{}
	}

	if options.WindowWidth == 0 {
		options.WindowWidth = 360
	}
	if options.WindowHeight == 0 {
		options.WindowHeight = 240
	}

	return &Device{
		held:         held.NewTracker(),
		WindowWidth:  options.WindowWidth,
		WindowHeight: options.WindowHeight,
		Offset:       options.Offset,
	}
}

func (d *Device) Screen() (input.Screen, error) {
	monitor := ebiten.Monitor()
	if monitor == nil {
		return input.Screen{}, input.ErrNoMonitor
	}

	width, height := monitor.Size()
	if width <= 0 || height <= 0 {
		return input.Screen{}, input.ErrNoMonitor
	}

	return input.BottomRight(width, height, d.WindowWidth, d.WindowHeight, d.Offset), nil
}

func (d *Device) Sample() (input.Sample, error) {
	// the cursor is reported relative to the window, also outside of it
	wx, wy := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()

	d.keys = inpututil.AppendPressedKeys(d.keys[:0])
	keys := make([]input.Key, len(d.keys))
	for i, k := range d.keys {
		keys[i] = input.Key(k.String())
	}

	return d.held.Merge(input.Sample{
		Cursor: image.Pt(wx+cx, wy+cy),
		Buttons: input.Buttons{
			Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
			Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		},
		Keys:    keys,
		Focused: ebiten.IsFocused(),
	}), nil
}
