package render

import (
	"image/color"
)

var (
	White          = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black          = color.NRGBA{A: 255}
	Blue           = color.NRGBA{R: 56, G: 143, B: 255, A: 150}
	DarkBlue       = color.NRGBA{R: 56, G: 143, B: 255, A: 255}
	Pink           = color.NRGBA{R: 255, G: 138, B: 202, A: 255}
	PinkStroke     = color.NRGBA{R: 223, G: 65, B: 143, A: 255}
	MousepadFill   = color.NRGBA{R: 169, G: 168, B: 170, A: 255}
	MousepadStroke = color.NRGBA{R: 108, G: 108, B: 110, A: 255}
)
