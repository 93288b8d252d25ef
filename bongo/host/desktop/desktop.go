package desktop

import (
	"errors"
	"fmt"

	"github.com/allape/bongocat/bongo"
	"github.com/allape/bongocat/bongo/render"
	"github.com/allape/bongocat/bongo/window"
	"github.com/allape/gogger"
	"github.com/hajimehoshi/ebiten/v2"
)

var l = gogger.New("bongo.host.desktop")

// Capabilities are the optional hints ebiten can express. Every overlay
// window is undecorated already, so hide_titlebar has nothing left to do.
var Capabilities = window.Capabilities{
	window.SkipTaskbar: true,
}

// Surface
// Holds the last presented frame until ebiten asks for a draw.
type Surface struct {
	width   int
	height  int
	buf     []byte
	pending bool
}

func (s *Surface) Format() render.PixelFormat {
	// WritePixels takes premultiplied RGBA bytes
	return render.FormatRGBA8
}

func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	if width != s.width || height != s.height || s.buf == nil {
		s.width, s.height = width, height
		s.buf = make([]byte, width*height*4)
	}
	return nil
}

func (s *Surface) Buffer() ([]byte, error) {
	if s.buf == nil {
		return nil, errors.New("surface not sized")
	}
	return s.buf, nil
}

func (s *Surface) Present() error {
	if s.buf == nil {
		return errors.New("surface not sized")
	}
	s.pending = true
	return nil
}

type Options struct {
	TPS   int
	Hints window.Hints
}

// Host
// Runs the overlay in a transparent, undecorated, always-on-top ebiten window.
type Host struct {
	Surface *Surface
	TPS     int
	Hints   window.Hints
}

func NewHost(options *Options) *Host {
	if options == nil {
		options = &Options{Hints: window.DefaultHints()}
	}
	if options.TPS == 0 {
		options.TPS = 60
	}

	return &Host{
		Surface: &Surface{},
		TPS:     options.TPS,
		Hints:   options.Hints,
	}
}

type game struct {
	overlay *bongo.Overlay
	surface *Surface
}

func (g *game) Update() error {
	decision := g.overlay.Tick()
	if decision.Quit {
		return ebiten.Termination
	}
	if !decision.Redraw {
		return nil
	}

	return g.overlay.Redraw(g.surface)
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.surface.pending {
		return
	}
	screen.WritePixels(g.surface.buf)
	g.surface.pending = false
}

func (g *game) Layout(_, _ int) (int, int) {
	size := g.overlay.Screen().Window.Size()
	return size.X, size.Y
}

func (h *Host) Run(o *bongo.Overlay) error {
	hints, dropped := window.Negotiate(h.Hints, window.Platform().Intersect(Capabilities))
	for _, hint := range window.Explicit(dropped) {
		l.Warn().Println("window hint not supported here:", hint)
	}

	rect := o.Screen().Window

	ebiten.SetWindowTitle("bongocat")
	ebiten.SetWindowSize(rect.Dx(), rect.Dy())
	ebiten.SetWindowPosition(rect.Min.X, rect.Min.Y)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	// close requests are swallowed, only the quit key ends the overlay
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(h.TPS)

	l.Info().Printf("window %v, hints %+v", rect, hints)

	err := ebiten.RunGameWithOptions(&game{overlay: o, surface: h.Surface}, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       hints.SkipTaskbar,
		InitUnfocused:     true,
	})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
