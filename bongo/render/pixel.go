package render

import (
	"encoding/binary"
	"fmt"
	"image"
)

type PixelFormat int

const (
	// FormatRGBA8 stores bytes in R, G, B, A order.
	FormatRGBA8 PixelFormat = iota
	// FormatARGB32 stores little-endian 0xAARRGGBB words, bytes in B, G, R, A order.
	FormatARGB32
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "rgba8"
	case FormatARGB32:
		return "argb32"
	}
	return fmt.Sprintf("PixelFormat(%d)", int(f))
}

// Composite
// Multiplies every channel, alpha included, by opacity in place.
// Results are truncated, not rounded.
func Composite(img *image.RGBA, opacity float32) {
	if opacity == 1 {
		return
	}
	for i, c := range img.Pix {
		img.Pix[i] = uint8(float32(c) * opacity)
	}
}

// Pack writes img into dst in the given format. dst must hold exactly width*height*4 bytes.
func Pack(img *image.RGBA, format PixelFormat, dst []byte) error {
	size := img.Bounds().Size()
	if want := size.X * size.Y * 4; len(dst) != want {
		return fmt.Errorf("destination holds %d bytes, expected %d", len(dst), want)
	}

	i := 0
	for y := 0; y < size.Y; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+size.X*4]
		switch format {
		case FormatRGBA8:
			copy(dst[i:], row)
		case FormatARGB32:
			for x := 0; x < len(row); x += 4 {
				r, g, b, a := uint32(row[x]), uint32(row[x+1]), uint32(row[x+2]), uint32(row[x+3])
				binary.LittleEndian.PutUint32(dst[i+x:], b|g<<8|r<<16|a<<24)
			}
		default:
			return fmt.Errorf("unsupported pixel format: %s", format)
		}
		i += size.X * 4
	}

	return nil
}
