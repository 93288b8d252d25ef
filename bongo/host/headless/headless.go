package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/allape/bongocat/bongo"
	"github.com/allape/bongocat/bongo/render"
	"github.com/allape/bongocat/helper"
	"github.com/allape/gogger"
)

var l = gogger.New("bongo.host.headless")

const SliceCount = 4

// Surface
// Writes every presented frame that differs from the previous one as a PNG
// file into Dir. An empty Dir keeps frames in memory only.
type Surface struct {
	Dir string

	width   int
	height  int
	buf     []byte
	last    *image.RGBA
	written int
}

func (s *Surface) Format() render.PixelFormat {
	return render.FormatRGBA8
}

func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.buf = make([]byte, width*height*4)
		s.last = nil
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

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.buf)

	rects, err := helper.ChangedRects(s.last, img, SliceCount)
	if err != nil {
		return err
	}
	if len(rects) == 0 {
		return nil
	}
	l.Verbose().Printf("frame %d: %d of %d tiles changed", s.written, len(rects), SliceCount*SliceCount)

	s.last = img
	s.written++

	if s.Dir == "" {
		return nil
	}

	file, err := os.Create(path.Join(s.Dir, fmt.Sprintf("frame.%04d.png", s.written-1)))
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return png.Encode(file, img)
}

// Written is the number of distinct frames presented.
func (s *Surface) Written() int {
	return s.written
}

// Last is the most recent distinct frame, nil before the first one.
func (s *Surface) Last() *image.RGBA {
	return s.last
}

// Host
// Ticks the overlay on a timer without a window. It stops once Frames frames
// were presented or Ticks ticks passed (0 disables either limit), on quit or
// on SIGINT/SIGTERM.
type Host struct {
	Surface  *Surface
	Interval time.Duration
	Frames   int
	Ticks    int
}

type Options struct {
	Dir     string
	TPS     int
	Frames  int
	Ticks   int
	NoDelay bool
}

func NewHost(options *Options) *Host {
	if options == nil {
		options = &Options{}
	}
	if options.TPS == 0 {
		options.TPS = 60
	}

	interval := time.Second / time.Duration(options.TPS)
	if options.NoDelay {
		interval = 0
	}

	return &Host{
		Surface:  &Surface{Dir: options.Dir},
		Interval: interval,
		Frames:   options.Frames,
		Ticks:    options.Ticks,
	}
}

func (h *Host) Run(o *bongo.Overlay) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return h.RunContext(ctx, o)
}

func (h *Host) RunContext(ctx context.Context, o *bongo.Overlay) error {
	if h.Surface.Dir != "" {
		err := os.MkdirAll(h.Surface.Dir, 0755)
		if err != nil {
			return err
		}
	}

	var tick <-chan time.Time
	if h.Interval > 0 {
		ticker := time.NewTicker(h.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for i := 0; h.Ticks == 0 || i < h.Ticks; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				l.Info().Println("interrupted after", i, "ticks")
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		decision := o.Tick()
		if decision.Quit {
			l.Info().Println("quit requested")
			return nil
		}
		if !decision.Redraw {
			continue
		}

		err := o.Redraw(h.Surface)
		if err != nil {
			return fmt.Errorf("redraw: %w", err)
		}

		if h.Frames > 0 && o.Frames() >= h.Frames {
			break
		}
	}

	l.Info().Println("recorded", h.Surface.Written(), "frames")

	return nil
}
