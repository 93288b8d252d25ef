package surface

import (
	"errors"
	"fmt"

	"github.com/allape/bongocat/bongo/render"
)

// Memory
// Surface backed by a plain byte slice. Presented holds a copy of the last
// presented buffer, Presents counts them.
type Memory struct {
	PixelFormat render.PixelFormat

	Width     int
	Height    int
	Presented []byte
	Presents  int

	buf []byte
}

func (m *Memory) Format() render.PixelFormat {
	return m.PixelFormat
}

func (m *Memory) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, width, height)
	}
	if width == m.Width && height == m.Height && m.buf != nil {
		return nil
	}
	m.Width, m.Height = width, height
	m.buf = make([]byte, width*height*4)
	return nil
}

func (m *Memory) Buffer() ([]byte, error) {
	if m.buf == nil {
		return nil, errors.New("surface not sized")
	}
	return m.buf, nil
}

func (m *Memory) Present() error {
	if m.buf == nil {
		return errors.New("surface not sized")
	}
	m.Presented = append(m.Presented[:0], m.buf...)
	m.Presents++
	return nil
}
