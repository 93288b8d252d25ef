package helper

import (
	"errors"
	"fmt"
	"image"
)

// ImageChanged reports whether any pixel inside the given rect differs, alpha included.
func ImageChanged(img1, img2 image.Image, size image.Point, offsetX, offsetY, width, height int) bool {
	rectMaxWidth := min(offsetX+width, size.X)
	rectMaxHeight := min(offsetY+height, size.Y)

	for x := offsetX; x < rectMaxWidth; x++ {
		for y := offsetY; y < rectMaxHeight; y++ {
			r1, g1, b1, a1 := img1.At(x, y).RGBA()
			r2, g2, b2, a2 := img2.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return true
			}
		}
	}

	return false
}

// ChangedRects
// Cuts the image into sliceCount x sliceCount tiles and returns the tiles that
// differ between previous and next. A nil previous image marks every tile.
func ChangedRects(previous, next image.Image, sliceCount int) ([]image.Rectangle, error) {
	if next == nil {
		return nil, errors.New("next image is nil")
	}
	if sliceCount <= 0 {
		return nil, fmt.Errorf("invalid slice count: %d", sliceCount)
	}

	imageSize := next.Bounds().Size()
	if previous != nil && previous.Bounds().Size() != imageSize {
		return nil, fmt.Errorf("image size changed: %v != %v", previous.Bounds().Size(), imageSize)
	}

	// ceil so the last row and column cover the remainder
	rectSize := image.Point{
		X: (imageSize.X + sliceCount - 1) / sliceCount,
		Y: (imageSize.Y + sliceCount - 1) / sliceCount,
	}
	if rectSize.X == 0 || rectSize.Y == 0 {
		return nil, nil
	}

	rects := make([]image.Rectangle, 0)
	for x := 0; x < imageSize.X; x += rectSize.X {
		for y := 0; y < imageSize.Y; y += rectSize.Y {
			if previous != nil && !ImageChanged(previous, next, imageSize, x, y, rectSize.X, rectSize.Y) {
				continue
			}
			rects = append(rects, image.Rect(x, y, min(x+rectSize.X, imageSize.X), min(y+rectSize.Y, imageSize.Y)))
		}
	}

	return rects, nil
}
