package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/allape/bongocat/bongo/geom"
	"github.com/fogleman/gg"
)

var ErrInvalidSize = errors.New("invalid frame size")

// Rasterize draws the layers in order into a new premultiplied RGBA image.
func Rasterize(layers []Layer, v Viewport) (*image.RGBA, error) {
	if v.Width <= 0 || v.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, v.Width, v.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, v.Width, v.Height))
	dc := gg.NewContextForRGBA(img)
	dc.SetFillRule(gg.FillRuleWinding)
	dc.SetLineCap(gg.LineCapButt)
	// gg only offers round and bevel joins, no miter
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineWidth(v.LineWidth())

	for _, layer := range layers {
		drawLayer(dc, layer)
	}

	return img, nil
}

func drawLayer(dc *gg.Context, layer Layer) {
	tracePath(dc, layer.Transform.ApplyPath(layer.Path))

	if layer.Fill != nil {
		dc.SetColor(*layer.Fill)
		dc.FillPreserve()
	}
	if layer.Stroke != nil {
		dc.SetColor(*layer.Stroke)
		dc.StrokePreserve()
	}

	dc.ClearPath()
}

func tracePath(dc *gg.Context, p geom.Path) {
	for _, s := range p {
		switch s.Op {
		case geom.OpMoveTo:
			dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		case geom.OpLineTo:
			dc.LineTo(s.Points[0].X, s.Points[0].Y)
		case geom.OpCubicTo:
			dc.CubicTo(
				s.Points[0].X, s.Points[0].Y,
				s.Points[1].X, s.Points[1].Y,
				s.Points[2].X, s.Points[2].Y,
			)
		case geom.OpClose:
			dc.ClosePath()
		}
	}
}
