package surface

import (
	"github.com/allape/bongocat/bongo/render"
)

// Surface
// A presentable pixel sink. Buffer returns the mapped region for the current
// size, exactly width*height*4 bytes in Format order, valid until the next
// Resize or Present.
type Surface interface {
	Format() render.PixelFormat
	Resize(width, height int) error
	Buffer() ([]byte, error)
	Present() error
}
