package render

import (
	"github.com/allape/bongocat/bongo/geom"
	"github.com/allape/bongocat/bongo/paths"
)

// StrokeWidth is the outline width in design units before scaling.
const StrokeWidth = 0.01

// Viewport
// Fits the design space into a target size without cropping, centered.
type Viewport struct {
	Width   int
	Height  int
	Scale   float64
	OffsetX float64
	OffsetY float64
}

func Fit(width, height int) Viewport {
	scaleX := float64(width) / paths.DesignWidth
	scaleY := float64(height) / paths.DesignHeight
	scale := min(scaleX, scaleY)

	return Viewport{
		Width:   width,
		Height:  height,
		Scale:   scale,
		OffsetX: max((float64(width)-paths.DesignWidth*scale)/2, 0),
		OffsetY: max((float64(height)-paths.DesignHeight*scale)/2, 0),
	}
}

// Transform maps design space to pixels: translate to the design origin, scale, letterbox.
func (v Viewport) Transform() geom.Transform {
	return geom.Identity().
		PreTranslate(paths.OriginX, paths.OriginY).
		PostScale(v.Scale).
		PostTranslate(v.OffsetX, v.OffsetY)
}

// LineWidth is the stroke width in pixels. The design width is scaled by the
// viewport once as a stroke setting and once more by the transform.
func (v Viewport) LineWidth() float64 {
	return StrokeWidth * v.Scale * v.Scale
}
