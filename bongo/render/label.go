package render

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var Font *truetype.Font

// Label
// Draws text at the bottom right corner of img, used to annotate recorded frames.
func Label(img *image.RGBA, text string) error {
	if Font == nil {
		var err error
		Font, err = truetype.Parse(goregular.TTF)
		if err != nil {
			return err
		}
	}

	size := img.Bounds().Size()
	margin := float64(size.Y) / 40

	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(truetype.NewFace(Font, &truetype.Options{Size: max(float64(size.Y)/20, 6)}))

	// shadow
	dc.SetColor(Black)
	dc.DrawStringAnchored(text, float64(size.X)-margin+1, float64(size.Y)-margin+1, 1, 0)
	dc.SetColor(DarkBlue)
	dc.DrawStringAnchored(text, float64(size.X)-margin, float64(size.Y)-margin, 1, 0)

	return nil
}
