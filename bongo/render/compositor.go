package render

import (
	"image"

	"github.com/allape/bongocat/bongo/anim"
	"github.com/allape/bongocat/bongo/input"
)

// Compositor turns cursor and input state into finished frames.
// It is not safe for concurrent use, the random source is shared.
type Compositor struct {
	Rand anim.RandomSource
}

func NewCompositor(rng anim.RandomSource) *Compositor {
	return &Compositor{Rand: rng}
}

// Render computes the frame geometry, rasterizes it and applies opacity.
func (c *Compositor) Render(cursor input.Cursor, in input.InputState, opacity float32, width, height int) (*image.RGBA, anim.Frame, error) {
	frame := anim.Compute(cursor, in, c.Rand)
	img, err := RenderFrame(frame, opacity, width, height)
	return img, frame, err
}

func RenderFrame(frame anim.Frame, opacity float32, width, height int) (*image.RGBA, error) {
	v := Fit(width, height)

	img, err := Rasterize(Scene(frame, v), v)
	if err != nil {
		return nil, err
	}

	Composite(img, opacity)

	return img, nil
}
